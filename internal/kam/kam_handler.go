package kam

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
	l := zap.L().Named("kam.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kam.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("kam request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Get handles GET /api/know-about-me. Data is null until the form has
// been saved for the active cycle.
func (h *Handler) Get(c *gin.Context) {
	userID := c.GetString("user_id")
	resp, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if resp == nil {
		response.Success(c, http.StatusOK, nil, nil)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// Upsert handles POST /api/know-about-me.
func (h *Handler) Upsert(c *gin.Context) {
	userID := c.GetString("user_id")
	var req UpsertKamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http kam validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Upsert(c.Request.Context(), userID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
