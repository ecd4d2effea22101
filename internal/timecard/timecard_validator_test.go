package timecard_test

import (
	"context"
	"testing"
	"time"

	"company-services/internal/timecard"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeChecker struct {
	ExistsFn       func(ctx context.Context, table, column string, value any) (bool, error)
	UniqueFn       func(ctx context.Context, table, idColumn, valueColumn string, selfID, value any) (bool, error)
	TimeSlotFreeFn func(ctx context.Context, empID any, startTime string, selfCardID any) (bool, error)
	ColumnValueFn  func(ctx context.Context, table, column, whereColumn string, whereValue any) (any, error)
}

func (f *fakeChecker) Exists(ctx context.Context, table, column string, value any) (bool, error) {
	if f.ExistsFn != nil {
		return f.ExistsFn(ctx, table, column, value)
	}
	return true, nil
}

func (f *fakeChecker) Unique(ctx context.Context, table, idColumn, valueColumn string, selfID, value any) (bool, error) {
	if f.UniqueFn != nil {
		return f.UniqueFn(ctx, table, idColumn, valueColumn, selfID, value)
	}
	return true, nil
}

func (f *fakeChecker) TimeSlotFree(ctx context.Context, empID any, startTime string, selfCardID any) (bool, error) {
	if f.TimeSlotFreeFn != nil {
		return f.TimeSlotFreeFn(ctx, empID, startTime, selfCardID)
	}
	return true, nil
}

func (f *fakeChecker) ColumnValue(ctx context.Context, table, column, whereColumn string, whereValue any) (any, error) {
	if f.ColumnValueFn != nil {
		return f.ColumnValueFn(ctx, table, column, whereColumn, whereValue)
	}
	return nil, gorm.ErrRecordNotFound
}

// 2024-06-12 is a Wednesday.
func fixedClock() time.Time {
	return time.Date(2024, 6, 12, 12, 0, 0, 0, time.Local)
}

func validInsertPayload() map[string]any {
	return map[string]any{
		"empID":     float64(5),
		"startTime": "2024-06-10 09:00:00",
		"endTime":   "2024-06-10 17:00:00",
	}
}

func TestTimecardValidator_Insert(t *testing.T) {
	ctx := context.Background()

	t.Run("valid payload", func(t *testing.T) {
		v := timecard.NewValidator(&fakeChecker{}, fixedClock)
		assert.NoError(t, v.ValidateInsert(ctx, validInsertPayload()))
	})

	t.Run("missing field cites schema", func(t *testing.T) {
		v := timecard.NewValidator(&fakeChecker{}, fixedClock)
		payload := validInsertPayload()
		delete(payload, "endTime")

		err := v.ValidateInsert(ctx, payload)
		assert.EqualError(t, err, "Value for 'endTime' is required.")
	})

	t.Run("unknown employee", func(t *testing.T) {
		checker := &fakeChecker{
			ExistsFn: func(ctx context.Context, table, column string, value any) (bool, error) {
				return false, nil
			},
		}
		v := timecard.NewValidator(checker, fixedClock)

		err := v.ValidateInsert(ctx, validInsertPayload())
		assert.EqualError(t, err, "Value for 'empID' does not exist.")
	})

	t.Run("start time shape offense", func(t *testing.T) {
		v := timecard.NewValidator(&fakeChecker{}, fixedClock)
		payload := validInsertPayload()
		payload["startTime"] = "2024-06-10T09:00:00"

		err := v.ValidateInsert(ctx, payload)
		assert.EqualError(t, err, "Value for 'startTime' is of the wrong format.")
	})

	t.Run("occupied day", func(t *testing.T) {
		checker := &fakeChecker{
			TimeSlotFreeFn: func(ctx context.Context, empID any, startTime string, selfCardID any) (bool, error) {
				assert.Equal(t, float64(5), empID)
				assert.Equal(t, "2024-06-10 09:00:00", startTime)
				assert.Nil(t, selfCardID, "insert has no record to exclude")
				return false, nil
			},
		}
		v := timecard.NewValidator(checker, fixedClock)

		err := v.ValidateInsert(ctx, validInsertPayload())
		assert.EqualError(t, err, "Value for 'startTime' is not unique.")
	})

	t.Run("shift offense cites both endpoints", func(t *testing.T) {
		v := timecard.NewValidator(&fakeChecker{}, fixedClock)
		payload := validInsertPayload()
		payload["endTime"] = "2024-06-10 09:30:00" // under the one-hour minimum

		err := v.ValidateInsert(ctx, payload)
		assert.EqualError(t, err, "Value for 'startTime|endTime' is not valid.")
	})

	t.Run("weekend shift", func(t *testing.T) {
		v := timecard.NewValidator(&fakeChecker{}, fixedClock)
		payload := validInsertPayload()
		payload["startTime"] = "2024-06-08 09:00:00"
		payload["endTime"] = "2024-06-08 17:00:00"

		err := v.ValidateInsert(ctx, payload)
		assert.EqualError(t, err, "Value for 'startTime|endTime' is not valid.")
	})
}

func TestTimecardValidator_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("missing id", func(t *testing.T) {
		v := timecard.NewValidator(&fakeChecker{}, fixedClock)

		err := v.ValidateUpdate(ctx, map[string]any{"endTime": "2024-06-10 17:00:00"})
		assert.EqualError(t, err, "Value for 'cardID' does not exist.")
	})

	t.Run("moving the start time without restating the employee", func(t *testing.T) {
		resolved := false
		checker := &fakeChecker{
			ColumnValueFn: func(ctx context.Context, table, column, whereColumn string, whereValue any) (any, error) {
				assert.Equal(t, "timecard", table)
				assert.Equal(t, "empID", column)
				assert.Equal(t, "cardID", whereColumn)
				resolved = true
				return int64(5), nil
			},
			TimeSlotFreeFn: func(ctx context.Context, empID any, startTime string, selfCardID any) (bool, error) {
				assert.Equal(t, int64(5), empID)
				assert.Equal(t, float64(3), selfCardID)
				return true, nil
			},
		}
		v := timecard.NewValidator(checker, fixedClock)

		err := v.ValidateUpdate(ctx, map[string]any{
			"cardID":    float64(3),
			"startTime": "2024-06-11 09:00:00",
		})

		assert.NoError(t, err)
		assert.True(t, resolved, "the card's owner must be resolved from the store")
	})

	t.Run("end time without start time in the same payload", func(t *testing.T) {
		v := timecard.NewValidator(&fakeChecker{}, fixedClock)

		err := v.ValidateUpdate(ctx, map[string]any{
			"cardID":  float64(3),
			"endTime": "2024-06-10 17:00:00",
		})
		assert.EqualError(t, err, "Value for 'startTime|endTime' is not valid.")
	})

	t.Run("slot check excludes the card itself", func(t *testing.T) {
		checker := &fakeChecker{
			TimeSlotFreeFn: func(ctx context.Context, empID any, startTime string, selfCardID any) (bool, error) {
				assert.Equal(t, float64(3), selfCardID)
				return true, nil
			},
		}
		v := timecard.NewValidator(checker, fixedClock)

		err := v.ValidateUpdate(ctx, map[string]any{
			"cardID":    float64(3),
			"empID":     float64(5),
			"startTime": "2024-06-11 09:00:00",
		})
		assert.NoError(t, err)
	})
}
