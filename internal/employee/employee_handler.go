package employee

import (
	"net/http"
	"strconv"

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
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Create handles POST /api/admin/employees, reachable only by a lead-role
// employee session.
func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

// Me handles GET /api/me/employee for the authenticated employee session.
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	resp, err := h.service.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// Directory handles GET /api/employees with embedded manager and lead.
func (h *Handler) Directory(c *gin.Context) {
	resp, err := h.service.GetDirectory(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// AllEmployees handles GET /api/manager/all-employees for the shared
// manager session. Same payload as Directory, different gate.
func (h *Handler) AllEmployees(c *gin.Context) {
	resp, err := h.service.GetDirectory(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// EmployeesFull handles GET /api/admin/employees-full for the admin session.
// Accepts optional page/limit query params; without them the full roster is
// returned, which is what the admin dashboard expects.
func (h *Handler) EmployeesFull(c *gin.Context) {
	resp, err := h.service.GetDirectory(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	if page < 1 || limit < 1 {
		response.Success(c, http.StatusOK, resp, nil)
		return
	}

	meta := response.NewPaginationMeta(int64(len(resp)), page, limit)
	start := (page - 1) * limit
	if start >= len(resp) {
		resp = resp[:0]
	} else if end := start + limit; end < len(resp) {
		resp = resp[start:end]
	} else {
		resp = resp[start:]
	}

	response.Success(c, http.StatusOK, resp, &meta)
}
