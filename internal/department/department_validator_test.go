package department_test

import (
	"context"
	"testing"

	"company-services/internal/department"

	"github.com/stretchr/testify/assert"
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
	return nil, nil
}

func validInsertPayload() map[string]any {
	return map[string]any{
		"compName": "Acme",
		"deptName": "Research",
		"deptNum":  "d10",
		"deptLoc":  "New York",
	}
}

func TestDepartmentValidator_Insert(t *testing.T) {
	ctx := context.Background()

	t.Run("valid payload", func(t *testing.T) {
		v := department.NewValidator(&fakeChecker{})
		assert.NoError(t, v.ValidateInsert(ctx, validInsertPayload()))
	})

	t.Run("missing field cites schema", func(t *testing.T) {
		v := department.NewValidator(&fakeChecker{})
		payload := validInsertPayload()
		delete(payload, "deptNum")

		err := v.ValidateInsert(ctx, payload)
		assert.EqualError(t, err, "Value for 'deptNum' is required.")
	})

	t.Run("empty value", func(t *testing.T) {
		v := department.NewValidator(&fakeChecker{})
		payload := validInsertPayload()
		payload["compName"] = "   "

		err := v.ValidateInsert(ctx, payload)
		assert.EqualError(t, err, "Value for 'compName' cannot be empty.")
	})

	t.Run("department name rejects digits", func(t *testing.T) {
		v := department.NewValidator(&fakeChecker{})
		payload := validInsertPayload()
		payload["deptName"] = "Research2"

		err := v.ValidateInsert(ctx, payload)
		assert.EqualError(t, err, "Value for 'deptName' is of the wrong format.")
	})

	t.Run("duplicate department number", func(t *testing.T) {
		checker := &fakeChecker{
			UniqueFn: func(ctx context.Context, table, idColumn, valueColumn string, selfID, value any) (bool, error) {
				assert.Equal(t, "department", table)
				assert.Equal(t, "deptNum", valueColumn)
				assert.Nil(t, selfID, "insert has no record to exclude")
				return false, nil
			},
		}
		v := department.NewValidator(checker)

		err := v.ValidateInsert(ctx, validInsertPayload())
		assert.EqualError(t, err, "Value for 'deptNum' is not unique.")
	})

	t.Run("first offense wins over later ones", func(t *testing.T) {
		v := department.NewValidator(&fakeChecker{
			UniqueFn: func(context.Context, string, string, string, any, any) (bool, error) {
				return false, nil
			},
		})
		payload := validInsertPayload()
		payload["compName"] = "Acme & Co"

		// compName's format offense comes before deptNum's uniqueness one.
		err := v.ValidateInsert(ctx, payload)
		assert.EqualError(t, err, "Value for 'compName' is of the wrong format.")
	})
}

func TestDepartmentValidator_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("missing id", func(t *testing.T) {
		v := department.NewValidator(&fakeChecker{})

		err := v.ValidateUpdate(ctx, map[string]any{"deptName": "Research"})
		assert.EqualError(t, err, "Value for 'deptID' does not exist.")
	})

	t.Run("unknown id", func(t *testing.T) {
		checker := &fakeChecker{
			ExistsFn: func(ctx context.Context, table, column string, value any) (bool, error) {
				return false, nil
			},
		}
		v := department.NewValidator(checker)

		err := v.ValidateUpdate(ctx, map[string]any{"deptID": float64(9999)})
		assert.EqualError(t, err, "Value for 'deptID' does not exist.")
	})

	t.Run("uniqueness excludes the record itself", func(t *testing.T) {
		checker := &fakeChecker{
			UniqueFn: func(ctx context.Context, table, idColumn, valueColumn string, selfID, value any) (bool, error) {
				assert.Equal(t, float64(7), selfID)
				assert.Equal(t, "d10", value)
				return true, nil
			},
		}
		v := department.NewValidator(checker)

		err := v.ValidateUpdate(ctx, map[string]any{
			"deptID":  float64(7),
			"deptNum": "d10",
		})
		assert.NoError(t, err)
	})

	t.Run("partial update skips absent fields", func(t *testing.T) {
		v := department.NewValidator(&fakeChecker{})

		err := v.ValidateUpdate(ctx, map[string]any{
			"deptID":  float64(7),
			"deptLoc": "Boston",
		})
		assert.NoError(t, err)
	})

	t.Run("re-validating an applied update still passes", func(t *testing.T) {
		checker := &fakeChecker{
			UniqueFn: func(ctx context.Context, table, idColumn, valueColumn string, selfID, value any) (bool, error) {
				// The stored value belongs to the record itself now.
				return selfID != nil, nil
			},
		}
		v := department.NewValidator(checker)

		payload := map[string]any{"deptID": float64(7), "deptNum": "d10"}
		assert.NoError(t, v.ValidateUpdate(ctx, payload))
		assert.NoError(t, v.ValidateUpdate(ctx, payload))
	})
}
