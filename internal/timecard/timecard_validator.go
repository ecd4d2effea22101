package timecard

import (
	"context"
	"errors"
	"net/http"
	"time"

	"company-services/internal/shared/apperror"
	"company-services/internal/shared/lookup"
	"company-services/internal/validation"

	"gorm.io/gorm"
)

var insertSchema = validation.NewSchema(
	validation.Field{Name: "empID", Kind: validation.Number},
	validation.Field{Name: "startTime", Kind: validation.String, Max: 19},
	validation.Field{Name: "endTime", Kind: validation.String, Max: 19},
)

// Validator runs the timecard field pipeline in canonical order: cardID
// first, then the schema declaration order. startTime's one-card-per-day
// check and endTime's shift check both depend on values validated earlier
// in the same pass.
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
	cardID    any
	empID     any
	startTime string
}

type fieldRule struct {
	name  string
	check func(ctx context.Context, st *alterState, value any) error
}

func (v *Validator) rules() []fieldRule {
	return []fieldRule{
		{name: "cardID", check: v.checkCardID},
		{name: "empID", check: v.checkEmpID},
		{name: "startTime", check: v.checkStartTime},
		{name: "endTime", check: v.checkEndTime},
	}
}

func (v *Validator) ValidateInsert(ctx context.Context, payload map[string]any) error {
	if reason := insertSchema.Check(payload); reason != "" {
		return validation.ErrSchema(reason)
	}
	return v.validateFields(ctx, payload)
}

func (v *Validator) ValidateUpdate(ctx context.Context, payload map[string]any) error {
	if _, ok := payload["cardID"]; !ok {
		return validation.ErrDoesNotExist("cardID")
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

func (v *Validator) checkCardID(ctx context.Context, st *alterState, value any) error {
	exists, err := v.lookup.Exists(ctx, "timecard", "cardID", value)
	if err != nil {
		return lookupFailure(err)
	}
	if !exists {
		return validation.ErrDoesNotExist("cardID")
	}
	st.cardID = value
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

func (v *Validator) checkStartTime(ctx context.Context, st *alterState, value any) error {
	if !validation.MatchesTimestampPattern(value) {
		return validation.ErrWrongFormat("startTime")
	}

	// An update may move the start time without restating the employee;
	// resolve the owner from the card itself.
	empID := st.empID
	if empID == nil && st.cardID != nil {
		owner, err := v.lookup.ColumnValue(ctx, "timecard", "empID", "cardID", st.cardID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return validation.ErrDoesNotExist("cardID")
			}
			return lookupFailure(err)
		}
		empID = owner
	}

	free, err := v.lookup.TimeSlotFree(ctx, empID, validation.Stringify(value), st.cardID)
	if err != nil {
		return lookupFailure(err)
	}
	if !free {
		return validation.ErrNotUnique("startTime")
	}

	st.startTime = validation.Stringify(value)
	return nil
}

// checkEndTime evaluates the whole shift, so its failure cites both
// endpoints. A supplied endTime without a startTime in the same payload
// cannot form a shift and fails the same way.
func (v *Validator) checkEndTime(ctx context.Context, st *alterState, value any) error {
	if !validation.MatchesTimestampPattern(value) {
		return validation.ErrWrongFormat("endTime")
	}
	if !validation.IsShiftValid(st.startTime, validation.Stringify(value), v.now()) {
		return validation.ErrNotValid("startTime|endTime")
	}
	return nil
}

func lookupFailure(err error) error {
	return apperror.Wrap(err, apperror.CodeInternalError,
		"An unexpected error occurred", http.StatusInternalServerError)
}
