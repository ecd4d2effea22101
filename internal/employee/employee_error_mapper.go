package employee

import (
	"errors"
	"strings"

	"company-services/internal/validation"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError translates store-level failures into the pipeline's
// vocabulary; the unique index on empNum backs up the pre-check.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employee_emp_num" {
			return validation.ErrNotUnique("empNum")
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_emp_num") {
		return validation.ErrNotUnique("empNum")
	}

	return err
}
