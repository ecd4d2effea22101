package company_test

import (
	"context"
	"database/sql"
	"testing"

	"company-services/internal/company"
	"company-services/internal/department"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

type fakeDeptRepository struct {
	FindIDsByCompanyFn   func(ctx context.Context, compName string) ([]int64, error)
	DeleteAllByCompanyFn func(ctx context.Context, compName string) (int64, error)
	ReassignEmployeesFn  func(ctx context.Context, deptID int64) error
}

func (f *fakeDeptRepository) WithTx(tx *sql.Tx) department.Repository { return f }

func (f *fakeDeptRepository) Create(ctx context.Context, dept *department.Department) error {
	panic("not expected")
}

func (f *fakeDeptRepository) FindByID(ctx context.Context, deptID int64) (*department.Department, error) {
	panic("not expected")
}

func (f *fakeDeptRepository) FindByIDAndCompany(ctx context.Context, deptID int64, compName string) (*department.Department, error) {
	panic("not expected")
}

func (f *fakeDeptRepository) FindAllByCompany(ctx context.Context, compName string) ([]department.Department, error) {
	panic("not expected")
}

func (f *fakeDeptRepository) FindIDsByCompany(ctx context.Context, compName string) ([]int64, error) {
	return f.FindIDsByCompanyFn(ctx, compName)
}

func (f *fakeDeptRepository) UpdateFields(ctx context.Context, deptID int64, fields map[string]any) error {
	panic("not expected")
}

func (f *fakeDeptRepository) Delete(ctx context.Context, deptID int64, compName string) (int64, error) {
	panic("not expected")
}

func (f *fakeDeptRepository) DeleteAllByCompany(ctx context.Context, compName string) (int64, error) {
	return f.DeleteAllByCompanyFn(ctx, compName)
}

func (f *fakeDeptRepository) ReassignEmployees(ctx context.Context, deptID int64) error {
	return f.ReassignEmployeesFn(ctx, deptID)
}

func TestCompanyService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes every department and re-parents their employees", func(t *testing.T) {
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		var deleted bool
		var reassigned []int64
		depts := &fakeDeptRepository{
			FindIDsByCompanyFn: func(ctx context.Context, compName string) ([]int64, error) {
				assert.Equal(t, "Acme", compName)
				assert.False(t, deleted, "the ids must be collected before the rows go away")
				return []int64{3, 7}, nil
			},
			DeleteAllByCompanyFn: func(ctx context.Context, compName string) (int64, error) {
				deleted = true
				return 2, nil
			},
			ReassignEmployeesFn: func(ctx context.Context, deptID int64) error {
				assert.True(t, deleted)
				reassigned = append(reassigned, deptID)
				return nil
			},
		}
		svc := company.NewService(db, depts, nil)

		message, err := svc.Delete(ctx, "Acme")

		assert.NoError(t, err)
		assert.Equal(t, "Company Acme's information deleted.", message)
		assert.Equal(t, []int64{3, 7}, reassigned)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown company rolls back", func(t *testing.T) {
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		depts := &fakeDeptRepository{
			FindIDsByCompanyFn: func(ctx context.Context, compName string) ([]int64, error) {
				return nil, nil
			},
		}
		svc := company.NewService(db, depts, nil)

		_, err := svc.Delete(ctx, "Nowhere")

		assert.EqualError(t, err, "Value for 'compName' does not exist.")
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}
