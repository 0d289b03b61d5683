package cycle

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
	cycles := r.Group("")
	cycles.Use(middleware.EmployeeSession())
	cycles.Use(middleware.ContextLogger(logger))
	{
		cycles.GET("/appraisal-cycles", handler.GetAll)
		cycles.GET("/appraisal-cycles/active", handler.GetActive)

		cycles.POST("/admin/appraisal-cycles",
			middleware.RateLimitByUser(0.5, 2),
			middleware.ExtractUserID(),
			middleware.RBACAuthorize(rbacService, "cycle", "manage"),
			handler.Create,
		)

		cycles.PATCH("/admin/appraisal-cycles/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.ExtractUserID(),
			middleware.RBACAuthorize(rbacService, "cycle", "manage"),
			handler.Update,
		)
	}
}
