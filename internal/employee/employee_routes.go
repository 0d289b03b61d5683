package employee

import (
	"github.com/sahil00000001/Employee-Appraisal-System/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	employeeRoutes := r.Group("")
	employeeRoutes.Use(middleware.EmployeeSession())
	employeeRoutes.Use(middleware.ContextLogger(logger))
	{
		employeeRoutes.GET("/me/employee", handler.Me)

		employeeRoutes.GET("/employees",
			middleware.RateLimitByUser(3, 10),
			handler.Directory,
		)

		employeeRoutes.POST("/admin/employees",
			middleware.RateLimitByUser(0.5, 2),
			middleware.ExtractUserID(),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			handler.Create,
		)
	}

	managerRoutes := r.Group("/manager")
	managerRoutes.Use(middleware.ManagerSession())
	managerRoutes.Use(middleware.ContextLogger(logger))
	{
		managerRoutes.GET("/all-employees", handler.AllEmployees)
	}

	adminRoutes := r.Group("/admin")
	adminRoutes.Use(middleware.AdminSession())
	adminRoutes.Use(middleware.ContextLogger(logger))
	{
		adminRoutes.GET("/employees-full", handler.EmployeesFull)
	}
}
