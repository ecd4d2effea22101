package department

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"company-services/internal/shared/apperror"
	"company-services/internal/shared/contextutil"
	"company-services/internal/shared/lookup"
	"company-services/internal/shared/messages"
	"company-services/internal/validation"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const DepartmentListKeyPrefix = "departments:all:"

const departmentListTTL = 30 * time.Minute

func GetDepartmentListKey(compName string) string {
	return DepartmentListKeyPrefix + compName
}

type Service interface {
	Get(ctx context.Context, deptID int64, compName string) (DepartmentResponse, error)
	GetAll(ctx context.Context, compName string) ([]DepartmentResponse, error)
	Insert(ctx context.Context, payload map[string]any) (DepartmentResponse, error)
	Update(ctx context.Context, payload map[string]any) (DepartmentResponse, error)
	Delete(ctx context.Context, deptID int64, compName string) (string, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	lookup    lookup.Checker
	validator *Validator
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	checker lookup.Checker,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		lookup:    checker,
		validator: NewValidator(checker),
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) Get(
	ctx context.Context,
	deptID int64,
	compName string,
) (DepartmentResponse, error) {
	s.logger.Debug("get department requested",
		zap.Int64("dept_id", deptID),
		zap.String("comp_name", compName),
	)

	checks := []struct {
		column string
		value  any
	}{
		{"deptID", deptID},
		{"compName", compName},
	}
	for _, check := range checks {
		exists, err := s.lookup.Exists(ctx, "department", check.column, check.value)
		if err != nil {
			s.logger.Error("get department existence check failed", zap.Error(err))
			return DepartmentResponse{}, lookupFailure(err)
		}
		if !exists {
			return DepartmentResponse{}, validation.ErrDoesNotExist(check.column)
		}
	}

	dept, err := s.repo.FindByIDAndCompany(ctx, deptID, compName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentResponse{}, errDeptSearch(deptID, compName)
		}
		s.logger.Error("get department failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	return mapToResponse(*dept), nil
}

func (s *service) GetAll(
	ctx context.Context,
	compName string,
) ([]DepartmentResponse, error) {
	s.logger.Debug("get all departments requested", zap.String("comp_name", compName))

	exists, err := s.lookup.Exists(ctx, "department", "compName", compName)
	if err != nil {
		s.logger.Error("get all departments existence check failed", zap.Error(err))
		return nil, lookupFailure(err)
	}
	if !exists {
		return nil, validation.ErrDoesNotExist("compName")
	}

	cacheKey := GetDepartmentListKey(compName)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []DepartmentResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		depts, err := s.repo.FindAllByCompany(ctx, compName)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(depts)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				// The fill is shared by every caller collapsed into this
				// flight; the first caller cancelling must not abort it.
				s.rdb.Set(context.WithoutCancel(ctx), cacheKey, jsonData, departmentListTTL)
			}
		}

		return resp, nil
	})

	if err != nil {
		s.logger.Error("get all departments failed", zap.Error(err))
		return nil, err
	}

	return v.([]DepartmentResponse), nil
}

func (s *service) Insert(
	ctx context.Context,
	payload map[string]any,
) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("insert department requested", zap.String("request_id", rid))

	if err := s.validator.ValidateInsert(ctx, payload); err != nil {
		return DepartmentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("insert department begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept := &Department{
		CompName: validation.Stringify(payload["compName"]),
		DeptName: validation.Stringify(payload["deptName"]),
		DeptNum:  validation.Stringify(payload["deptNum"]),
		DeptLoc:  validation.Stringify(payload["deptLoc"]),
	}

	if err := qtx.Create(ctx, dept); err != nil {
		s.logger.Error("insert department persist failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("insert department commit failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, err
	}

	s.invalidateList(ctx, dept.CompName)

	s.logger.Info("insert department success",
		zap.String("request_id", rid),
		zap.Int64("dept_id", dept.DeptID),
	)

	return mapToResponse(*dept), nil
}

func (s *service) Update(
	ctx context.Context,
	payload map[string]any,
) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update department requested", zap.String("request_id", rid))

	if err := s.validator.ValidateUpdate(ctx, payload); err != nil {
		return DepartmentResponse{}, err
	}

	id, _ := validation.NumberValue(payload["deptID"])
	deptID := int64(id)

	fields := make(map[string]any)
	for _, column := range insertSchema.FieldNames() {
		if value, ok := payload[column]; ok {
			fields[column] = validation.Stringify(value)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update department begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// The pre-update record must be read before the write: a moved
	// department leaves a stale listing behind in its old company.
	current, err := qtx.FindByID(ctx, deptID)
	if err != nil {
		s.logger.Error("update department fetch failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	prevCompName := current.CompName

	if err := qtx.UpdateFields(ctx, deptID, fields); err != nil {
		s.logger.Error("update department persist failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	dept, err := qtx.FindByID(ctx, deptID)
	if err != nil {
		s.logger.Error("update department fetch failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update department commit failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, err
	}

	s.invalidateList(ctx, prevCompName)
	if dept.CompName != prevCompName {
		s.invalidateList(ctx, dept.CompName)
	}

	s.logger.Info("update department success",
		zap.String("request_id", rid),
		zap.Int64("dept_id", deptID),
	)

	return mapToResponse(*dept), nil
}

func (s *service) Delete(
	ctx context.Context,
	deptID int64,
	compName string,
) (string, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete department requested",
		zap.String("request_id", rid),
		zap.Int64("dept_id", deptID),
		zap.String("comp_name", compName),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete department begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return "", err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	affected, err := qtx.Delete(ctx, deptID, compName)
	if err != nil {
		s.logger.Error("delete department failed", zap.Error(err))
		return "", err
	}
	if affected == 0 {
		return "", errDeptSearch(deptID, compName)
	}

	if err := qtx.ReassignEmployees(ctx, deptID); err != nil {
		s.logger.Error("delete department reassign employees failed", zap.Error(err))
		return "", err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete department commit failed", zap.String("request_id", rid), zap.Error(err))
		return "", err
	}

	s.invalidateList(ctx, compName)

	s.logger.Info("delete department success",
		zap.String("request_id", rid),
		zap.Int64("dept_id", deptID),
	)

	return messages.DepartmentSearchResult(deptID, compName, "deleted"), nil
}

func (s *service) invalidateList(ctx context.Context, compName string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetDepartmentListKey(compName)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate department list cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func errDeptSearch(deptID int64, compName string) error {
	return apperror.New(
		apperror.CodeNotFound,
		messages.DepartmentSearchResult(deptID, compName, "not found"),
		http.StatusNotFound,
	)
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		DeptID:   dept.DeptID,
		CompName: dept.CompName,
		DeptName: dept.DeptName,
		DeptNum:  dept.DeptNum,
		DeptLoc:  dept.DeptLoc,
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
