package app

import (
	"database/sql"

	"go-hrpay/internal/attendance"
	"go-hrpay/internal/calendar"
	"go-hrpay/internal/employee"
	"go-hrpay/internal/leave"
	"go-hrpay/internal/messaging/kafka"
	"go-hrpay/internal/middleware"
	"go-hrpay/internal/payroll"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	attendancePolicyRepo := attendance.NewPolicyRepository(gormDB)
	balanceRepo := leave.NewBalanceRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	holidayRepo := calendar.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)

	// --- Services ---
	attendanceService := attendance.NewService(db, attendanceRepo, attendancePolicyRepo)
	holidayService := calendar.NewService(holidayRepo, rdb)
	leaveService := leave.NewService(leaveRepo, balanceRepo)
	payrollService := payroll.NewService(
		db,
		payrollRepo,
		employeeRepo,
		attendanceRepo,
		attendancePolicyRepo,
		leaveRepo,
		balanceRepo,
		holidayService,
		outboxRepo,
	)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	holidayHandler := calendar.NewHandler(holidayService)
	leaveHandler := leave.NewHandler(leaveService)
	payrollHandler := payroll.NewHandler(payrollService, rdb)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	api := router.Group("/api/v1")
	{
		attendance.RegisterRoutes(api, attendanceHandler)
		calendar.RegisterRoutes(api, holidayHandler)
		leave.RegisterRoutes(api, leaveHandler)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
	}

	return nil
}
