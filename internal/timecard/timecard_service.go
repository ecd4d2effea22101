package timecard

import (
	"context"
	"database/sql"
	"net/http"

	"company-services/internal/shared/apperror"
	"company-services/internal/shared/contextutil"
	"company-services/internal/shared/lookup"
	"company-services/internal/shared/messages"
	"company-services/internal/validation"

	"go.uber.org/zap"
)

type Service interface {
	Get(ctx context.Context, cardID int64) (TimecardResponse, error)
	GetAll(ctx context.Context, empID int64) ([]TimecardResponse, error)
	Insert(ctx context.Context, payload map[string]any) (TimecardResponse, error)
	Update(ctx context.Context, payload map[string]any) (TimecardResponse, error)
	Delete(ctx context.Context, cardID int64) (string, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	lookup    lookup.Checker
	validator *Validator
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	checker lookup.Checker,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("timecard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timecard.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		lookup:    checker,
		validator: NewValidator(checker),
		logger:    l,
	}
}

func (s *service) Get(ctx context.Context, cardID int64) (TimecardResponse, error) {
	s.logger.Debug("get timecard requested", zap.Int64("card_id", cardID))

	exists, err := s.lookup.Exists(ctx, "timecard", "cardID", cardID)
	if err != nil {
		s.logger.Error("get timecard existence check failed", zap.Error(err))
		return TimecardResponse{}, lookupFailure(err)
	}
	if !exists {
		return TimecardResponse{}, validation.ErrDoesNotExist("cardID")
	}

	card, err := s.repo.FindByID(ctx, cardID)
	if err != nil {
		s.logger.Error("get timecard failed", zap.Error(err))
		return TimecardResponse{}, err
	}

	return mapToResponse(*card), nil
}

func (s *service) GetAll(ctx context.Context, empID int64) ([]TimecardResponse, error) {
	s.logger.Debug("get all timecards requested", zap.Int64("emp_id", empID))

	exists, err := s.lookup.Exists(ctx, "employee", "empID", empID)
	if err != nil {
		s.logger.Error("get all timecards existence check failed", zap.Error(err))
		return nil, lookupFailure(err)
	}
	if !exists {
		return nil, validation.ErrDoesNotExist("empID")
	}

	cards, err := s.repo.FindAllByEmployee(ctx, empID)
	if err != nil {
		s.logger.Error("get all timecards failed", zap.Error(err))
		return nil, err
	}
	if len(cards) == 0 {
		return nil, apperror.New(
			apperror.CodeNotFound,
			messages.NoTimecardsFound(empID),
			http.StatusNotFound,
		)
	}

	return mapToListResponse(cards), nil
}

func (s *service) Insert(
	ctx context.Context,
	payload map[string]any,
) (TimecardResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("insert timecard requested", zap.String("request_id", rid))

	if err := s.validator.ValidateInsert(ctx, payload); err != nil {
		return TimecardResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("insert timecard begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return TimecardResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empID, _ := validation.NumberValue(payload["empID"])

	card := &Timecard{
		EmpID:     int64(empID),
		StartTime: validation.Stringify(payload["startTime"]),
		EndTime:   validation.Stringify(payload["endTime"]),
	}

	if err := qtx.Create(ctx, card); err != nil {
		s.logger.Error("insert timecard persist failed", zap.Error(err))
		return TimecardResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("insert timecard commit failed", zap.String("request_id", rid), zap.Error(err))
		return TimecardResponse{}, err
	}

	s.logger.Info("insert timecard success",
		zap.String("request_id", rid),
		zap.Int64("card_id", card.CardID),
	)

	return mapToResponse(*card), nil
}

func (s *service) Update(
	ctx context.Context,
	payload map[string]any,
) (TimecardResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update timecard requested", zap.String("request_id", rid))

	if err := s.validator.ValidateUpdate(ctx, payload); err != nil {
		return TimecardResponse{}, err
	}

	id, _ := validation.NumberValue(payload["cardID"])
	cardID := int64(id)

	fields := make(map[string]any)
	for _, column := range insertSchema.FieldNames() {
		value, ok := payload[column]
		if !ok {
			continue
		}
		if column == "empID" {
			n, _ := validation.NumberValue(value)
			fields[column] = int64(n)
			continue
		}
		fields[column] = validation.Stringify(value)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update timecard begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return TimecardResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.UpdateFields(ctx, cardID, fields); err != nil {
		s.logger.Error("update timecard persist failed", zap.Error(err))
		return TimecardResponse{}, mapRepositoryError(err)
	}

	card, err := qtx.FindByID(ctx, cardID)
	if err != nil {
		s.logger.Error("update timecard fetch failed", zap.Error(err))
		return TimecardResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update timecard commit failed", zap.String("request_id", rid), zap.Error(err))
		return TimecardResponse{}, err
	}

	s.logger.Info("update timecard success",
		zap.String("request_id", rid),
		zap.Int64("card_id", cardID),
	)

	return mapToResponse(*card), nil
}

func (s *service) Delete(ctx context.Context, cardID int64) (string, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete timecard requested",
		zap.String("request_id", rid),
		zap.Int64("card_id", cardID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete timecard begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return "", err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	affected, err := qtx.Delete(ctx, cardID)
	if err != nil {
		s.logger.Error("delete timecard failed", zap.Error(err))
		return "", err
	}
	if affected == 0 {
		return "", validation.ErrDoesNotExist("cardID")
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete timecard commit failed", zap.String("request_id", rid), zap.Error(err))
		return "", err
	}

	s.logger.Info("delete timecard success",
		zap.String("request_id", rid),
		zap.Int64("card_id", cardID),
	)

	return messages.RecordDeleted("timecard", cardID), nil
}

func mapToResponse(card Timecard) TimecardResponse {
	return TimecardResponse{
		CardID:    card.CardID,
		EmpID:     card.EmpID,
		StartTime: card.StartTime,
		EndTime:   card.EndTime,
	}
}

func mapToListResponse(cards []Timecard) []TimecardResponse {
	res := make([]TimecardResponse, len(cards))
	for i, c := range cards {
		res[i] = mapToResponse(c)
	}
	return res
}
