package department

import (
	"company-services/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/department",
		middleware.RateLimitByIP(10, 20),
		handler.Get,
	)

	r.GET("/departments",
		middleware.RateLimitByIP(10, 20),
		handler.GetAll,
	)

	r.POST("/department",
		middleware.RateLimitByIP(2, 5),
		handler.Insert,
	)

	r.PUT("/department",
		middleware.RateLimitByIP(2, 5),
		handler.Update,
	)

	r.DELETE("/department",
		middleware.RateLimitByIP(1, 2),
		handler.Delete,
	)
}
