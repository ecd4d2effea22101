package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"company-services/internal/events"
	"company-services/internal/messaging/kafka"
	"company-services/internal/shared/apperror"
	"company-services/internal/shared/contextutil"
	"company-services/internal/shared/lookup"
	"company-services/internal/shared/messages"
	"company-services/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Get(ctx context.Context, empID int64) (EmployeeResponse, error)
	GetAll(ctx context.Context, compName string) ([]EmployeeResponse, error)
	Insert(ctx context.Context, payload map[string]any) (EmployeeResponse, error)
	Update(ctx context.Context, payload map[string]any) (EmployeeResponse, error)
	Delete(ctx context.Context, empID int64) (string, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	lookup    lookup.Checker
	validator *Validator
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	checker lookup.Checker,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, checker, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	checker lookup.Checker,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		lookup:    checker,
		validator: NewValidator(checker),
		outbox:    outboxRepo,
		logger:    l,
	}
}

func (s *service) Get(ctx context.Context, empID int64) (EmployeeResponse, error) {
	s.logger.Debug("get employee requested", zap.Int64("emp_id", empID))

	exists, err := s.lookup.Exists(ctx, "employee", "empID", empID)
	if err != nil {
		s.logger.Error("get employee existence check failed", zap.Error(err))
		return EmployeeResponse{}, lookupFailure(err)
	}
	if !exists {
		return EmployeeResponse{}, validation.ErrDoesNotExist("empID")
	}

	empl, err := s.repo.FindByID(ctx, empID)
	if err != nil {
		s.logger.Error("get employee failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, compName string) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("comp_name", compName))

	exists, err := s.lookup.Exists(ctx, "department", "compName", compName)
	if err != nil {
		s.logger.Error("get all employees existence check failed", zap.Error(err))
		return nil, lookupFailure(err)
	}
	if !exists {
		return nil, validation.ErrDoesNotExist("compName")
	}

	empls, err := s.repo.FindAllByCompany(ctx, compName)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, err
	}
	if len(empls) == 0 {
		return nil, apperror.New(
			apperror.CodeNotFound,
			messages.NoEmployeesFound(compName),
			http.StatusNotFound,
		)
	}

	return mapToListResponse(empls), nil
}

func (s *service) Insert(
	ctx context.Context,
	payload map[string]any,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("insert employee requested", zap.String("request_id", rid))

	if err := s.validator.ValidateInsert(ctx, payload); err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("insert employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	deptID, _ := validation.NumberValue(payload["deptID"])
	salary, _ := validation.NumberValue(payload["salary"])
	mngID, _ := validation.NumberValue(payload["mngID"])

	empl := &Employee{
		DeptID:   int64(deptID),
		EmpName:  validation.Stringify(payload["empName"]),
		EmpNum:   validation.Stringify(payload["empNum"]),
		HireDate: validation.Stringify(payload["hireDate"]),
		JobPos:   validation.Stringify(payload["jobPos"]),
		Salary:   salary,
		MngID:    int64(mngID),
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("insert employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: empl.EmpID,
			DeptID:     empl.DeptID,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.queueEvent(ctx, tx, events.EmployeeCreatedTopic, event.EventType, event, empl.EmpID); err != nil {
			s.logger.Error("insert employee outbox persist failed",
				zap.Int64("emp_id", empl.EmpID),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("insert employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("insert employee success",
		zap.String("request_id", rid),
		zap.Int64("emp_id", empl.EmpID),
	)

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	payload map[string]any,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested", zap.String("request_id", rid))

	if err := s.validator.ValidateUpdate(ctx, payload); err != nil {
		return EmployeeResponse{}, err
	}

	id, _ := validation.NumberValue(payload["empID"])
	empID := int64(id)

	fields := make(map[string]any)
	for _, column := range insertSchema.FieldNames() {
		value, ok := payload[column]
		if !ok {
			continue
		}
		fields[column] = normalizeField(column, value)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.UpdateFields(ctx, empID, fields); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl, err := qtx.FindByID(ctx, empID)
	if err != nil {
		s.logger.Error("update employee fetch failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.Int64("emp_id", empID),
	)

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, empID int64) (string, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.Int64("emp_id", empID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return "", err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	affected, err := qtx.Delete(ctx, empID)
	if err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return "", err
	}
	if affected == 0 {
		return "", validation.ErrDoesNotExist("empID")
	}

	if err := qtx.DeleteTimecards(ctx, empID); err != nil {
		s.logger.Error("delete employee timecards failed", zap.Error(err))
		return "", err
	}

	if s.outbox != nil {
		event := events.EmployeeDeletedEvent{
			EventType:  "employee_deleted",
			RequestID:  rid,
			EmployeeID: empID,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.queueEvent(ctx, tx, events.EmployeeDeletedTopic, event.EventType, event, empID); err != nil {
			s.logger.Error("delete employee outbox persist failed",
				zap.Int64("emp_id", empID),
				zap.Error(err),
			)
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return "", err
	}

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.Int64("emp_id", empID),
	)

	return messages.RecordDeleted("employee", empID), nil
}

func (s *service) queueEvent(
	ctx context.Context,
	tx *sql.Tx,
	topic, eventType string,
	event any,
	empID int64,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "employee",
		AggregateID:   strconv.FormatInt(empID, 10),
		EventType:     eventType,
		Topic:         topic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// normalizeField shapes a wire value for the update statement: numeric
// columns keep their numeric type, everything else is stored as the string
// the client sent.
func normalizeField(column string, value any) any {
	switch column {
	case "deptID", "mngID":
		n, _ := validation.NumberValue(value)
		return int64(n)
	case "salary":
		n, _ := validation.NumberValue(value)
		return n
	default:
		return validation.Stringify(value)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		EmpID:    empl.EmpID,
		DeptID:   empl.DeptID,
		EmpName:  empl.EmpName,
		EmpNum:   empl.EmpNum,
		HireDate: empl.HireDate,
		JobPos:   empl.JobPos,
		Salary:   empl.Salary,
		MngID:    empl.MngID,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
