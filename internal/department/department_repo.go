package department

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindByID(ctx context.Context, deptID int64) (*Department, error)
	FindByIDAndCompany(ctx context.Context, deptID int64, compName string) (*Department, error)
	FindAllByCompany(ctx context.Context, compName string) ([]Department, error)
	FindIDsByCompany(ctx context.Context, compName string) ([]int64, error)
	UpdateFields(ctx context.Context, deptID int64, fields map[string]any) error
	Delete(ctx context.Context, deptID int64, compName string) (int64, error)
	DeleteAllByCompany(ctx context.Context, compName string) (int64, error)
	ReassignEmployees(ctx context.Context, deptID int64) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) FindByID(ctx context.Context, deptID int64) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Where(map[string]any{"deptID": deptID}).
		First(&dept).Error
	return &dept, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, deptID int64, compName string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Where(map[string]any{"deptID": deptID, "compName": compName}).
		First(&dept).Error
	return &dept, err
}

func (r *repository) FindAllByCompany(ctx context.Context, compName string) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Where(map[string]any{"compName": compName}).
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindIDsByCompany(ctx context.Context, compName string) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&Department{}).
		Where(map[string]any{"compName": compName}).
		Pluck("deptID", &ids).Error
	return ids, err
}

func (r *repository) UpdateFields(ctx context.Context, deptID int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&Department{}).
		Where(map[string]any{"deptID": deptID}).
		Updates(fields).Error
}

func (r *repository) Delete(ctx context.Context, deptID int64, compName string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where(map[string]any{"deptID": deptID, "compName": compName}).
		Delete(&Department{})
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteAllByCompany(ctx context.Context, compName string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where(map[string]any{"compName": compName}).
		Delete(&Department{})
	return res.RowsAffected, res.Error
}

// ReassignEmployees re-parents the department's employees to the sentinel
// "unassigned" department.
func (r *repository) ReassignEmployees(ctx context.Context, deptID int64) error {
	return r.db.WithContext(ctx).
		Exec(`UPDATE employee SET "deptID" = 0 WHERE "deptID" = ?`, deptID).Error
}
