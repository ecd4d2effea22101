package app

import (
	"os"

	"company-services/internal/middleware"
	"company-services/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers every module on the
// router. Redis is optional: when it is unreachable the service runs
// without the listing cache.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		zap.L().Warn("redis unavailable, running without listing cache", zap.Error(err))
		redisClient = nil
	}

	router.Use(middleware.RequestID())

	return registerModules(router, db, gormDB, redisClient)
}
