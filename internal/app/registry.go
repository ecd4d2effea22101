package app

import (
	"database/sql"

	"company-services/internal/company"
	"company-services/internal/department"
	"company-services/internal/employee"
	"company-services/internal/messaging/kafka"
	"company-services/internal/shared/lookup"
	"company-services/internal/timecard"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	lookupRepo := lookup.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	timecardRepo := timecard.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	departmentService := department.NewService(db, departmentRepo, lookupRepo, rdb)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, lookupRepo, outboxRepo)
	timecardService := timecard.NewService(db, timecardRepo, lookupRepo)
	companyService := company.NewService(db, departmentRepo, rdb)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	timecardHandler := timecard.NewHandler(timecardService)
	companyHandler := company.NewHandler(companyService)

	// --- Routes Registration ---
	api := router.Group("/CompanyServices")
	{
		company.RegisterRoutes(api, companyHandler)
		department.RegisterRoutes(api, departmentHandler)
		employee.RegisterRoutes(api, employeeHandler)
		timecard.RegisterRoutes(api, timecardHandler)
	}

	return nil
}
