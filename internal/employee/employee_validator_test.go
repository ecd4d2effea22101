package employee_test

import (
	"context"
	"testing"
	"time"

	"company-services/internal/employee"

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

// 2024-06-12 is a Wednesday.
func fixedClock() time.Time {
	return time.Date(2024, 6, 12, 12, 0, 0, 0, time.Local)
}

func validInsertPayload() map[string]any {
	return map[string]any{
		"deptID":   float64(1),
		"empName":  "Jane Doe",
		"empNum":   "e100",
		"hireDate": "2024-06-10",
		"jobPos":   "Engineer",
		"salary":   float64(75000),
		"mngID":    float64(2),
	}
}

func TestEmployeeValidator_Insert(t *testing.T) {
	ctx := context.Background()

	t.Run("valid payload", func(t *testing.T) {
		v := employee.NewValidator(&fakeChecker{}, fixedClock)
		assert.NoError(t, v.ValidateInsert(ctx, validInsertPayload()))
	})

	t.Run("missing field cites schema", func(t *testing.T) {
		v := employee.NewValidator(&fakeChecker{}, fixedClock)
		payload := validInsertPayload()
		delete(payload, "salary")

		err := v.ValidateInsert(ctx, payload)
		assert.EqualError(t, err, "Value for 'salary' is required.")
	})

	t.Run("unknown department", func(t *testing.T) {
		checker := &fakeChecker{
			ExistsFn: func(ctx context.Context, table, column string, value any) (bool, error) {
				return table != "department", nil
			},
		}
		v := employee.NewValidator(checker, fixedClock)

		err := v.ValidateInsert(ctx, validInsertPayload())
		assert.EqualError(t, err, "Value for 'deptID' does not exist.")
	})

	t.Run("employee name rejects digits", func(t *testing.T) {
		v := employee.NewValidator(&fakeChecker{}, fixedClock)
		payload := validInsertPayload()
		payload["empName"] = "Jane 2"

		err := v.ValidateInsert(ctx, payload)
		assert.EqualError(t, err, "Value for 'empName' is of the wrong format.")
	})

	t.Run("duplicate employee number", func(t *testing.T) {
		checker := &fakeChecker{
			UniqueFn: func(ctx context.Context, table, idColumn, valueColumn string, selfID, value any) (bool, error) {
				assert.Equal(t, "employee", table)
				assert.Equal(t, "empNum", valueColumn)
				return false, nil
			},
		}
		v := employee.NewValidator(checker, fixedClock)

		err := v.ValidateInsert(ctx, validInsertPayload())
		assert.EqualError(t, err, "Value for 'empNum' is not unique.")
	})

	t.Run("hire date shape offense", func(t *testing.T) {
		v := employee.NewValidator(&fakeChecker{}, fixedClock)
		payload := validInsertPayload()
		payload["hireDate"] = "10/06/2024"

		err := v.ValidateInsert(ctx, payload)
		assert.EqualError(t, err, "Value for 'hireDate' is of the wrong format.")
	})

	t.Run("hire date on a weekend", func(t *testing.T) {
		v := employee.NewValidator(&fakeChecker{}, fixedClock)
		payload := validInsertPayload()
		payload["hireDate"] = "2024-06-08"

		err := v.ValidateInsert(ctx, payload)
		assert.EqualError(t, err, "Value for 'hireDate' is not valid.")
	})

	t.Run("hire date in the future", func(t *testing.T) {
		v := employee.NewValidator(&fakeChecker{}, fixedClock)
		payload := validInsertPayload()
		payload["hireDate"] = "2024-06-14"

		err := v.ValidateInsert(ctx, payload)
		assert.EqualError(t, err, "Value for 'hireDate' is not valid.")
	})

	t.Run("non-positive salary", func(t *testing.T) {
		v := employee.NewValidator(&fakeChecker{}, fixedClock)
		payload := validInsertPayload()
		payload["salary"] = float64(0)

		err := v.ValidateInsert(ctx, payload)
		assert.EqualError(t, err, "Value for 'salary' cannot be lower, nor equal to zero.")
	})

	t.Run("unknown manager cites mngID", func(t *testing.T) {
		checker := &fakeChecker{
			ExistsFn: func(ctx context.Context, table, column string, value any) (bool, error) {
				// The manager check scans employee ids; the hiring department
				// and the manager's own id are looked up against empID.
				if table == "employee" && value == float64(2) {
					return false, nil
				}
				return true, nil
			},
		}
		v := employee.NewValidator(checker, fixedClock)

		err := v.ValidateInsert(ctx, validInsertPayload())
		assert.EqualError(t, err, "Value for 'mngID' does not exist.")
	})
}

func TestEmployeeValidator_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("missing id", func(t *testing.T) {
		v := employee.NewValidator(&fakeChecker{}, fixedClock)

		err := v.ValidateUpdate(ctx, map[string]any{"salary": float64(80000)})
		assert.EqualError(t, err, "Value for 'empID' does not exist.")
	})

	t.Run("uniqueness excludes the record itself", func(t *testing.T) {
		checker := &fakeChecker{
			UniqueFn: func(ctx context.Context, table, idColumn, valueColumn string, selfID, value any) (bool, error) {
				assert.Equal(t, float64(5), selfID)
				return true, nil
			},
		}
		v := employee.NewValidator(checker, fixedClock)

		err := v.ValidateUpdate(ctx, map[string]any{
			"empID":  float64(5),
			"empNum": "e100",
		})
		assert.NoError(t, err)
	})

	t.Run("partial update skips absent fields", func(t *testing.T) {
		v := employee.NewValidator(&fakeChecker{}, fixedClock)

		err := v.ValidateUpdate(ctx, map[string]any{
			"empID":  float64(5),
			"salary": float64(90000),
		})
		assert.NoError(t, err)
	})
}
