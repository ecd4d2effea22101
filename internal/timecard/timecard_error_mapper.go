package timecard

import (
	"errors"
	"strings"

	"company-services/internal/validation"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError translates store-level failures into the pipeline's
// vocabulary; the composite slot index backs up the one-card-per-day
// pre-check.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_timecard_slot" {
			return validation.ErrNotUnique("startTime")
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_timecard_slot") {
		return validation.ErrNotUnique("startTime")
	}

	return err
}
