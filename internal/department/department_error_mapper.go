package department

import (
	"errors"
	"strings"

	"company-services/internal/validation"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError translates store-level failures into the pipeline's
// vocabulary. The unique index is the authoritative backstop: a constraint
// violation that slipped past the pre-check reports the same message.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_department_dept_num" {
			return validation.ErrNotUnique("deptNum")
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_department_dept_num") {
		return validation.ErrNotUnique("deptNum")
	}

	return err
}
