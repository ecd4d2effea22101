package employee

import (
	"context"
	"net/http"
	"time"

	"company-services/internal/shared/apperror"
	"company-services/internal/shared/lookup"
	"company-services/internal/validation"
)

var insertSchema = validation.NewSchema(
	validation.Field{Name: "deptID", Kind: validation.Number},
	validation.Field{Name: "empName", Kind: validation.String, Max: 50},
	validation.Field{Name: "empNum", Kind: validation.String, Max: 20},
	validation.Field{Name: "hireDate", Kind: validation.String, Max: 10},
	validation.Field{Name: "jobPos", Kind: validation.String, Max: 30},
	validation.Field{Name: "salary", Kind: validation.Number},
	validation.Field{Name: "mngID", Kind: validation.Number},
)

// Validator runs the employee field pipeline in canonical order: empID
// first, then the schema declaration order. The first offense wins and
// absent fields are skipped.
type Validator struct {
	lookup lookup.Checker
	now    func() time.Time
}

func NewValidator(l lookup.Checker, clock ...func() time.Time) *Validator {
	now := time.Now
	if len(clock) > 0 && clock[0] != nil {
		now = clock[0]
	}
	return &Validator{lookup: l, now: now}
}

type alterState struct {
	empID any
}

type fieldRule struct {
	name  string
	check func(ctx context.Context, st *alterState, value any) error
}

func (v *Validator) rules() []fieldRule {
	return []fieldRule{
		{name: "empID", check: v.checkEmpID},
		{name: "deptID", check: v.checkDeptID},
		{name: "empName", check: v.checkEmpName},
		{name: "empNum", check: v.checkEmpNum},
		{name: "hireDate", check: v.checkHireDate},
		{name: "jobPos", check: v.checkJobPos},
		{name: "salary", check: v.checkSalary},
		{name: "mngID", check: v.checkMngID},
	}
}

func (v *Validator) ValidateInsert(ctx context.Context, payload map[string]any) error {
	if reason := insertSchema.Check(payload); reason != "" {
		return validation.ErrSchema(reason)
	}
	return v.validateFields(ctx, payload)
}

func (v *Validator) ValidateUpdate(ctx context.Context, payload map[string]any) error {
	if _, ok := payload["empID"]; !ok {
		return validation.ErrDoesNotExist("empID")
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

func (v *Validator) checkEmpID(ctx context.Context, st *alterState, value any) error {
	exists, err := v.lookup.Exists(ctx, "employee", "empID", value)
	if err != nil {
		return lookupFailure(err)
	}
	if !exists {
		return validation.ErrDoesNotExist("empID")
	}
	st.empID = value
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
	return nil
}

func (v *Validator) checkEmpName(ctx context.Context, st *alterState, value any) error {
	if validation.ViolatesCharClass(validation.LettersAndSpaces, value) {
		return validation.ErrWrongFormat("empName")
	}
	return nil
}

func (v *Validator) checkEmpNum(ctx context.Context, st *alterState, value any) error {
	if validation.ViolatesCharClass(validation.AlnumAndSpaces, value) {
		return validation.ErrWrongFormat("empNum")
	}

	unique, err := v.lookup.Unique(ctx, "employee", "empID", "empNum", st.empID, value)
	if err != nil {
		return lookupFailure(err)
	}
	if !unique {
		return validation.ErrNotUnique("empNum")
	}
	return nil
}

// checkHireDate separates shape from meaning: a malformed string is a format
// offense, a well-formed date in the future or on a weekend is a validity
// offense.
func (v *Validator) checkHireDate(ctx context.Context, st *alterState, value any) error {
	if !validation.MatchesDatePattern(value) {
		return validation.ErrWrongFormat("hireDate")
	}
	if !validation.IsHireDateValid(validation.Stringify(value), v.now()) {
		return validation.ErrNotValid("hireDate")
	}
	return nil
}

func (v *Validator) checkJobPos(ctx context.Context, st *alterState, value any) error {
	if validation.ViolatesCharClass(validation.LettersAndSpaces, value) {
		return validation.ErrWrongFormat("jobPos")
	}
	return nil
}

func (v *Validator) checkSalary(ctx context.Context, st *alterState, value any) error {
	if !validation.IsPositive(value) {
		return validation.ErrNotPositive("salary")
	}
	return nil
}

// checkMngID scans employee ids; the message still cites mngID so the
// caller knows which field failed.
func (v *Validator) checkMngID(ctx context.Context, st *alterState, value any) error {
	exists, err := v.lookup.Exists(ctx, "employee", "empID", value)
	if err != nil {
		return lookupFailure(err)
	}
	if !exists {
		return validation.ErrDoesNotExist("mngID")
	}
	return nil
}

func lookupFailure(err error) error {
	return apperror.Wrap(err, apperror.CodeInternalError,
		"An unexpected error occurred", http.StatusInternalServerError)
}
