package timecard

import (
	"errors"
	"strconv"

	"company-services/internal/shared/apperror"
	"company-services/internal/shared/contextutil"
	"company-services/internal/shared/response"
	"company-services/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("timecard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timecard.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.ErrInternal
	}
	contextutil.GetLogger(c.Request.Context(), h.logger).Warn("timecard request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", appErr.HTTPStatus),
		zap.String("code", appErr.Code),
		zap.String("message", appErr.Message),
	)
	response.Error(c, appErr.Message)
}

func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	cardID, err := strconv.ParseInt(c.Query("cardID"), 10, 64)
	if err != nil {
		h.writeServiceError(c, validation.ErrDoesNotExist("cardID"))
		return
	}

	resp, err := h.service.Get(ctx, cardID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	empID, err := strconv.ParseInt(c.Query("empID"), 10, 64)
	if err != nil {
		h.writeServiceError(c, validation.ErrDoesNotExist("empID"))
		return
	}

	resp, err := h.service.GetAll(ctx, empID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, resp)
}

func (h *Handler) Insert(c *gin.Context) {
	ctx := c.Request.Context()

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("http insert timecard bind failed", zap.Error(err))
		response.Error(c, apperror.ErrInvalidInput.Message)
		return
	}

	resp, err := h.service.Insert(ctx, payload)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, resp)
}

func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req UpdateTimecardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update timecard bind failed", zap.Error(err))
		response.Error(c, apperror.ErrInvalidInput.Message)
		return
	}

	resp, err := h.service.Update(ctx, req.Card)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	cardID, err := strconv.ParseInt(c.Query("cardID"), 10, 64)
	if err != nil {
		h.writeServiceError(c, validation.ErrDoesNotExist("cardID"))
		return
	}

	message, err := h.service.Delete(ctx, cardID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, message)
}
