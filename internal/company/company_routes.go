package company

import (
	"company-services/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.DELETE("/company",
		middleware.RateLimitByIP(0.5, 1),
		handler.Delete,
	)
}
