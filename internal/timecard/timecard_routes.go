package timecard

import (
	"company-services/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/timecard",
		middleware.RateLimitByIP(10, 20),
		handler.Get,
	)

	r.GET("/timecards",
		middleware.RateLimitByIP(10, 20),
		handler.GetAll,
	)

	r.POST("/timecard",
		middleware.RateLimitByIP(2, 5),
		handler.Insert,
	)

	r.PUT("/timecard",
		middleware.RateLimitByIP(2, 5),
		handler.Update,
	)

	r.DELETE("/timecard",
		middleware.RateLimitByIP(1, 2),
		handler.Delete,
	)
}
