// Package lookup answers the existence, uniqueness and time-slot questions
// the validation pipeline asks of the record store. Every answer comes from
// a fresh read; nothing is cached between calls.
package lookup

import (
	"context"
	"fmt"

	"company-services/internal/validation"

	"gorm.io/gorm"
)

type Checker interface {
	// Exists reports whether any row of table holds value in column.
	Exists(ctx context.Context, table, column string, value any) (bool, error)
	// Unique reports whether value can be stored in valueColumn. A non-nil
	// selfID excludes the record being updated from the collision scan.
	Unique(ctx context.Context, table, idColumn, valueColumn string, selfID, value any) (bool, error)
	// TimeSlotFree reports whether the employee has no timecard on the same
	// calendar day as startTime, excluding selfCardID when non-nil.
	TimeSlotFree(ctx context.Context, empID any, startTime string, selfCardID any) (bool, error)
	// ColumnValue returns column of the first row where whereColumn equals
	// whereValue, or gorm.ErrRecordNotFound.
	ColumnValue(ctx context.Context, table, column, whereColumn string, whereValue any) (any, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Checker {
	return &repository{db: db}
}

// The scans deliberately fetch the whole column and filter in memory: the
// store does no filtering for these checks, and value comparison follows
// the wire normalization in validation.SameValue.

func (r *repository) Exists(ctx context.Context, table, column string, value any) (bool, error) {
	var rows []map[string]any
	err := r.db.WithContext(ctx).
		Table(table).
		Select(quote(column)).
		Find(&rows).Error
	if err != nil {
		return false, err
	}

	for _, row := range rows {
		if validation.SameValue(row[column], value) {
			return true, nil
		}
	}

	return false, nil
}

func (r *repository) Unique(ctx context.Context, table, idColumn, valueColumn string, selfID, value any) (bool, error) {
	var rows []map[string]any
	err := r.db.WithContext(ctx).
		Table(table).
		Select(quote(idColumn) + ", " + quote(valueColumn)).
		Find(&rows).Error
	if err != nil {
		return false, err
	}

	for _, row := range rows {
		if selfID != nil && validation.SameValue(row[idColumn], selfID) {
			continue
		}
		if validation.SameValue(row[valueColumn], value) {
			return false, nil
		}
	}

	return true, nil
}

func (r *repository) TimeSlotFree(ctx context.Context, empID any, startTime string, selfCardID any) (bool, error) {
	var rows []map[string]any
	err := r.db.WithContext(ctx).
		Table("timecard").
		Select(quote("cardID") + ", " + quote("startTime")).
		Where(quote("empID")+" = ?", empID).
		Find(&rows).Error
	if err != nil {
		return false, err
	}

	candidate := validation.DatePart(startTime)
	for _, row := range rows {
		if selfCardID != nil && validation.SameValue(row["cardID"], selfCardID) {
			continue
		}
		if validation.DatePart(validation.Stringify(row["startTime"])) == candidate {
			return false, nil
		}
	}

	return true, nil
}

func (r *repository) ColumnValue(ctx context.Context, table, column, whereColumn string, whereValue any) (any, error) {
	var rows []map[string]any
	err := r.db.WithContext(ctx).
		Table(table).
		Select(quote(column)).
		Where(quote(whereColumn)+" = ?", whereValue).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return rows[0][column], nil
}

// quote protects the camelCase column names against postgres lowercasing.
func quote(ident string) string {
	return fmt.Sprintf("%q", ident)
}
