package timecard

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, card *Timecard) error
	FindByID(ctx context.Context, cardID int64) (*Timecard, error)
	FindAllByEmployee(ctx context.Context, empID int64) ([]Timecard, error)
	UpdateFields(ctx context.Context, cardID int64, fields map[string]any) error
	Delete(ctx context.Context, cardID int64) (int64, error)
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

func (r *repository) Create(ctx context.Context, card *Timecard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *repository) FindByID(ctx context.Context, cardID int64) (*Timecard, error) {
	var card Timecard
	err := r.db.WithContext(ctx).
		Where(map[string]any{"cardID": cardID}).
		First(&card).Error
	return &card, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, empID int64) ([]Timecard, error) {
	var cards []Timecard
	err := r.db.WithContext(ctx).
		Where(map[string]any{"empID": empID}).
		Find(&cards).Error
	return cards, err
}

func (r *repository) UpdateFields(ctx context.Context, cardID int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&Timecard{}).
		Where(map[string]any{"cardID": cardID}).
		Updates(fields).Error
}

func (r *repository) Delete(ctx context.Context, cardID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where(map[string]any{"cardID": cardID}).
		Delete(&Timecard{})
	return res.RowsAffected, res.Error
}
