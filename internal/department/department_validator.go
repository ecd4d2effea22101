package department

import (
	"context"
	"net/http"

	"company-services/internal/shared/apperror"
	"company-services/internal/shared/lookup"
	"company-services/internal/validation"
)

var insertSchema = validation.NewSchema(
	validation.Field{Name: "compName", Kind: validation.String, Max: 25},
	validation.Field{Name: "deptName", Kind: validation.String, Max: 255},
	validation.Field{Name: "deptNum", Kind: validation.String, Max: 20},
	validation.Field{Name: "deptLoc", Kind: validation.String, Max: 255},
)

// Validator runs the department field pipeline. Fields are evaluated in a
// fixed canonical order (id first, then schema declaration order) and the
// first offense wins; absent fields are skipped, which is what makes
// partial updates work.
type Validator struct {
	lookup lookup.Checker
}

func NewValidator(l lookup.Checker) *Validator {
	return &Validator{lookup: l}
}

// alterState carries values already validated earlier in the pipeline to
// the rules that depend on them.
type alterState struct {
	deptID any
}

type fieldRule struct {
	name  string
	check func(ctx context.Context, st *alterState, value any) error
}

func (v *Validator) rules() []fieldRule {
	return []fieldRule{
		{name: "deptID", check: v.checkDeptID},
		{name: "compName", check: v.checkCompName},
		{name: "deptName", check: v.checkDeptName},
		{name: "deptNum", check: v.checkDeptNum},
		{name: "deptLoc", check: v.checkDeptLoc},
	}
}

// ValidateInsert checks the payload shape against the schema and then runs
// the field pipeline.
func (v *Validator) ValidateInsert(ctx context.Context, payload map[string]any) error {
	if reason := insertSchema.Check(payload); reason != "" {
		return validation.ErrSchema(reason)
	}
	return v.validateFields(ctx, payload)
}

// ValidateUpdate requires the record id and runs the pipeline over the
// supplied fields only.
func (v *Validator) ValidateUpdate(ctx context.Context, payload map[string]any) error {
	if _, ok := payload["deptID"]; !ok {
		return validation.ErrDoesNotExist("deptID")
	}
	return v.validateFields(ctx, payload)
}

func (v *Validator) validateFields(ctx context.Context, payload map[string]any) error {
	st := &alterState{}
	for _, rule := range v.rules() {
		value, ok := payload[rule.name]
		if !ok {
			continue
		}
		if validation.IsEmpty(value) {
			return validation.ErrEmpty(rule.name)
		}
		if err := rule.check(ctx, st, value); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) checkDeptID(ctx context.Context, st *alterState, value any) error {
	exists, err := v.lookup.Exists(ctx, "department", "deptID", value)
	if err != nil {
		return lookupFailure(err)
	}
	if !exists {
		return validation.ErrDoesNotExist("deptID")
	}
	st.deptID = value
	return nil
}

func (v *Validator) checkCompName(ctx context.Context, st *alterState, value any) error {
	if validation.ViolatesCharClass(validation.AlnumAndSpaces, value) {
		return validation.ErrWrongFormat("compName")
	}
	return nil
}

func (v *Validator) checkDeptName(ctx context.Context, st *alterState, value any) error {
	if validation.ViolatesCharClass(validation.LettersAndSpaces, value) {
		return validation.ErrWrongFormat("deptName")
	}
	return nil
}

func (v *Validator) checkDeptNum(ctx context.Context, st *alterState, value any) error {
	if validation.ViolatesCharClass(validation.AlnumAndSpaces, value) {
		return validation.ErrWrongFormat("deptNum")
	}

	unique, err := v.lookup.Unique(ctx, "department", "deptID", "deptNum", st.deptID, value)
	if err != nil {
		return lookupFailure(err)
	}
	if !unique {
		return validation.ErrNotUnique("deptNum")
	}
	return nil
}

func (v *Validator) checkDeptLoc(ctx context.Context, st *alterState, value any) error {
	if validation.ViolatesCharClass(validation.LettersAndSpaces, value) {
		return validation.ErrWrongFormat("deptLoc")
	}
	return nil
}

// lookupFailure keeps store outages distinct from a clean "does not exist"
// answer.
func lookupFailure(err error) error {
	return apperror.Wrap(err, apperror.CodeInternalError,
		"An unexpected error occurred", http.StatusInternalServerError)
}
