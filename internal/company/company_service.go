package company

import (
	"context"
	"database/sql"

	"company-services/internal/department"
	"company-services/internal/shared/contextutil"
	"company-services/internal/shared/messages"
	"company-services/internal/validation"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Service interface {
	Delete(ctx context.Context, compName string) (string, error)
}

// service removes every trace of a company. It works through the department
// repository: the company has no table of its own, it only exists as the
// compName column on departments.
type service struct {
	db     *sql.DB
	depts  department.Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	depts department.Repository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{db: db, depts: depts, rdb: rdb, logger: l}
}

func (s *service) Delete(ctx context.Context, compName string) (string, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete company requested",
		zap.String("request_id", rid),
		zap.String("comp_name", compName),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete company begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return "", err
	}
	defer tx.Rollback()

	qtx := s.depts.WithTx(tx)

	// Collect the department ids before deleting their rows; the employees
	// they carried still need to be re-parented afterwards.
	deptIDs, err := qtx.FindIDsByCompany(ctx, compName)
	if err != nil {
		s.logger.Error("delete company list departments failed", zap.Error(err))
		return "", err
	}
	if len(deptIDs) == 0 {
		return "", validation.ErrDoesNotExist("compName")
	}

	if _, err := qtx.DeleteAllByCompany(ctx, compName); err != nil {
		s.logger.Error("delete company departments failed", zap.Error(err))
		return "", err
	}

	for _, deptID := range deptIDs {
		if err := qtx.ReassignEmployees(ctx, deptID); err != nil {
			s.logger.Error("delete company reassign employees failed",
				zap.Int64("dept_id", deptID),
				zap.Error(err),
			)
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete company commit failed", zap.String("request_id", rid), zap.Error(err))
		return "", err
	}

	if s.rdb != nil {
		cacheKey := department.GetDepartmentListKey(compName)
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			s.logger.Error("failed to invalidate department list cache",
				zap.Error(err),
				zap.String("key", cacheKey),
			)
		}
	}

	s.logger.Info("delete company success",
		zap.String("request_id", rid),
		zap.String("comp_name", compName),
		zap.Int("departments_removed", len(deptIDs)),
	)

	return messages.CompanyDeleted(compName), nil
}
