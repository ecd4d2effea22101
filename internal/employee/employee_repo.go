package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, empID int64) (*Employee, error)
	FindAllByCompany(ctx context.Context, compName string) ([]Employee, error)
	UpdateFields(ctx context.Context, empID int64, fields map[string]any) error
	Delete(ctx context.Context, empID int64) (int64, error)
	DeleteTimecards(ctx context.Context, empID int64) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindByID(ctx context.Context, empID int64) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Where(map[string]any{"empID": empID}).
		First(&empl).Error
	return &empl, err
}

// FindAllByCompany resolves company membership through the department table;
// employees have no company column of their own.
func (r *repository) FindAllByCompany(ctx context.Context, compName string) ([]Employee, error) {
	var empls []Employee
	sub := r.db.Table("department").
		Select(`"deptID"`).
		Where(`"compName" = ?`, compName)
	err := r.db.WithContext(ctx).
		Where(`"deptID" IN (?)`, sub).
		Find(&empls).Error
	return empls, err
}

func (r *repository) UpdateFields(ctx context.Context, empID int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Where(map[string]any{"empID": empID}).
		Updates(fields).Error
}

func (r *repository) Delete(ctx context.Context, empID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where(map[string]any{"empID": empID}).
		Delete(&Employee{})
	return res.RowsAffected, res.Error
}

// DeleteTimecards removes the employee's timecards in the same transaction
// as the employee row, so no orphan cards survive a delete.
func (r *repository) DeleteTimecards(ctx context.Context, empID int64) error {
	return r.db.WithContext(ctx).
		Exec(`DELETE FROM timecard WHERE "empID" = ?`, empID).Error
}
