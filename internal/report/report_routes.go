package report

import (
	"github.com/sahil00000001/Employee-Appraisal-System/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	employeeRoutes := r.Group("")
	employeeRoutes.Use(middleware.EmployeeSession())
	employeeRoutes.Use(middleware.ContextLogger(logger))
	{
		employeeRoutes.GET("/dashboard", handler.Dashboard)
		employeeRoutes.GET("/reports", middleware.RateLimitByUser(2, 5), handler.OrgStats)
	}

	adminRoutes := r.Group("/admin")
	adminRoutes.Use(middleware.AdminSession())
	adminRoutes.Use(middleware.ContextLogger(logger))
	{
		adminRoutes.GET("/feedback-activity", handler.FeedbackActivity)
		adminRoutes.GET("/employee-report/:employeeId", handler.EmployeeReport)
	}
}
