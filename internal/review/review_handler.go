package review

import (
	"net/http"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/shared/apperror"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("review.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("review.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("review request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// SubmitManagerReview handles POST /api/manager-reviews.
func (h *Handler) SubmitManagerReview(c *gin.Context) {
	userID := c.GetString("user_id")
	var req SubmitManagerReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http submit manager review validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.SubmitManagerReview(c.Request.Context(), userID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// SubmitLeadReview handles POST /api/lead-reviews.
func (h *Handler) SubmitLeadReview(c *gin.Context) {
	userID := c.GetString("user_id")
	var req SubmitLeadReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http submit lead review validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.SubmitLeadReview(c.Request.Context(), userID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// TeamMembers handles GET /api/manager/team-members.
func (h *Handler) TeamMembers(c *gin.Context) {
	userID := c.GetString("user_id")
	resp, err := h.service.TeamMembers(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// LeadAppraisals handles GET /api/lead/appraisals.
func (h *Handler) LeadAppraisals(c *gin.Context) {
	userID := c.GetString("user_id")
	resp, err := h.service.LeadAppraisals(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// MyRatings handles GET /api/my-ratings.
func (h *Handler) MyRatings(c *gin.Context) {
	userID := c.GetString("user_id")
	resp, err := h.service.MyRatings(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
