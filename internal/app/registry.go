package app

import (
	"context"
	"database/sql"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/auth"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/cycle"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/employee"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/feedback"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/kam"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/messaging/kafka"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/middleware"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/notify"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/rbac"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/report"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/review"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	mailer notify.Mailer,
) error {
	logger := zap.L()

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	cycleRepo := cycle.NewRepository(gormDB)
	feedbackRepo := feedback.NewRepository(gormDB)
	reviewRepo := review.NewRepository(gormDB)
	kamRepo := kam.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	otpStore := auth.NewOTPStore(rdb)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	roleLookup := func(ctx context.Context, userID string) (string, error) {
		empl, err := employeeRepo.FindByUserID(ctx, userID)
		if err != nil {
			return "", err
		}
		return empl.Role, nil
	}
	rbacService := rbac.NewService(enforcer, roleLookup, logger)

	// --- Services ---
	authService := auth.NewService(employeeRepo, otpStore, mailer, auth.NewLoginLimiter())
	employeeService := employee.NewService(db, employeeRepo, outboxRepo)
	cycleService := cycle.NewService(cycleRepo)
	feedbackService := feedback.NewService(db, feedbackRepo, employeeRepo, cycleRepo, mailer)
	reviewService := review.NewService(reviewRepo, employeeRepo, cycleRepo, feedbackRepo)
	kamService := kam.NewService(kamRepo, employeeRepo, cycleRepo)
	reportService := report.NewService(reportRepo, employeeRepo, cycleRepo, feedbackRepo, reviewRepo, kamRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	cycleHandler := cycle.NewHandler(cycleService)
	feedbackHandler := feedback.NewHandlerWithRedis(feedbackService, rdb)
	reviewHandler := review.NewHandler(reviewService)
	kamHandler := kam.NewHandler(kamService)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		cycle.RegisterRoutes(api, cycleHandler, rbacService, logger)
		feedback.RegisterRoutes(api, feedbackHandler, rbacService, rdb, logger)
		review.RegisterRoutes(api, reviewHandler, logger)
		kam.RegisterRoutes(api, kamHandler, logger)
		report.RegisterRoutes(api, reportHandler, logger)
	}

	return nil
}
