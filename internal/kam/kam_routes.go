package kam

import (
	"github.com/sahil00000001/Employee-Appraisal-System/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	kamRoutes := r.Group("/know-about-me")
	kamRoutes.Use(middleware.EmployeeSession())
	kamRoutes.Use(middleware.ContextLogger(logger))
	{
		kamRoutes.GET("", handler.Get)
		kamRoutes.POST("", middleware.RateLimitByUser(1, 3), handler.Upsert)
	}
}
