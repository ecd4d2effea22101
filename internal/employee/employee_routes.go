package employee

import (
	"company-services/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/employee",
		middleware.RateLimitByIP(10, 20),
		handler.Get,
	)

	r.GET("/employees",
		middleware.RateLimitByIP(10, 20),
		handler.GetAll,
	)

	r.POST("/employee",
		middleware.RateLimitByIP(2, 5),
		handler.Insert,
	)

	r.PUT("/employee",
		middleware.RateLimitByIP(2, 5),
		handler.Update,
	)

	r.DELETE("/employee",
		middleware.RateLimitByIP(1, 2),
		handler.Delete,
	)
}
