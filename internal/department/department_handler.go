package department

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
	l := zap.L().Named("department.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.ErrInternal
	}
	contextutil.GetLogger(c.Request.Context(), h.logger).Warn("department request failed",
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
	compName := c.Query("compName")

	deptID, err := strconv.ParseInt(c.Query("deptID"), 10, 64)
	if err != nil {
		h.writeServiceError(c, validation.ErrDoesNotExist("deptID"))
		return
	}

	resp, err := h.service.Get(ctx, deptID, compName)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	compName := c.Query("compName")

	resp, err := h.service.GetAll(ctx, compName)
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
		h.logger.Warn("http insert department bind failed", zap.Error(err))
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

	var req UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update department bind failed", zap.Error(err))
		response.Error(c, apperror.ErrInvalidInput.Message)
		return
	}

	resp, err := h.service.Update(ctx, req.Dept)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	compName := c.Query("compName")

	deptID, err := strconv.ParseInt(c.Query("deptID"), 10, 64)
	if err != nil {
		h.writeServiceError(c, validation.ErrDoesNotExist("deptID"))
		return
	}

	message, err := h.service.Delete(ctx, deptID, compName)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, message)
}
