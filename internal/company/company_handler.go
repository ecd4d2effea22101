package company

import (
	"errors"

	"company-services/internal/shared/apperror"
	"company-services/internal/shared/contextutil"
	"company-services/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("company.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	compName := c.Query("compName")

	message, err := h.service.Delete(ctx, compName)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.ErrInternal
		}
		contextutil.GetLogger(c.Request.Context(), h.logger).Warn("company request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", appErr.HTTPStatus),
			zap.String("code", appErr.Code),
			zap.String("message", appErr.Message),
		)
		response.Error(c, appErr.Message)
		return
	}

	response.Success(c, message)
}
