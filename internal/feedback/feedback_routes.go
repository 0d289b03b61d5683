package feedback

import (
	"github.com/sahil00000001/Employee-Appraisal-System/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	employeeRoutes := r.Group("")
	employeeRoutes.Use(middleware.EmployeeSession())
	employeeRoutes.Use(middleware.ContextLogger(logger))
	{
		employeeRoutes.GET("/feedback-requests/my-tasks", handler.MyTasks)

		employeeRoutes.POST("/peer-feedback",
			middleware.RateLimitByUser(1, 3),
			middleware.ExtractUserID(),
			middleware.Idempotency(rdb),
			handler.Submit,
		)

		employeeRoutes.POST("/admin/feedback-requests",
			middleware.RateLimitByUser(0.5, 2),
			middleware.ExtractUserID(),
			middleware.RBACAuthorize(rbacService, "feedback_request", "create"),
			handler.CreateRequest,
		)
	}

	managerRoutes := r.Group("/manager")
	managerRoutes.Use(middleware.ManagerSession())
	managerRoutes.Use(middleware.ContextLogger(logger))
	{
		managerRoutes.POST("/assign-feedback", handler.Assign)
		managerRoutes.GET("/feedback-assignments", handler.Assignments)
	}
}
