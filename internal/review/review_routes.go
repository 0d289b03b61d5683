package review

import (
	"github.com/sahil00000001/Employee-Appraisal-System/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	reviews := r.Group("")
	reviews.Use(middleware.EmployeeSession())
	reviews.Use(middleware.ContextLogger(logger))
	{
		reviews.GET("/my-ratings", handler.MyRatings)
		reviews.GET("/manager/team-members", handler.TeamMembers)
		reviews.GET("/lead/appraisals", handler.LeadAppraisals)

		reviews.POST("/manager-reviews",
			middleware.RateLimitByUser(1, 3),
			handler.SubmitManagerReview,
		)
		reviews.POST("/lead-reviews",
			middleware.RateLimitByUser(1, 3),
			handler.SubmitLeadReview,
		)
	}
}
