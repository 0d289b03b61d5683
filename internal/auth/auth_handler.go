package auth

import (
	"net/http"
	"os"
	"strings"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/middleware"
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
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func setSessionCookie(c *gin.Context, name, token string) {
	isProd := os.Getenv("APP_ENV") == "production"
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c *gin.Context, name string) {
	isProd := os.Getenv("APP_ENV") == "production"
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})
}

func sessionToken(c *gin.Context, cookieName string) string {
	authHeader := c.GetHeader("Authorization")
	if token, found := strings.CutPrefix(authHeader, "Bearer "); found && token != "" {
		return token
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

// SendOTP handles POST /api/auth/send-otp.
func (h *Handler) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email is required", nil)
		return
	}

	resp, err := h.service.SendOTP(c.Request.Context(), req.Email)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// VerifyOTP handles POST /api/auth/verify-otp. A valid code sets the employee
// session cookie.
func (h *Handler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email and code are required", nil)
		return
	}

	token, resp, err := h.service.VerifyOTP(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	setSessionCookie(c, middleware.EmployeeTokenCookie, token)
	response.Success(c, http.StatusOK, resp, nil)
}

// ManagerLogin handles POST /api/auth/manager-login.
func (h *Handler) ManagerLogin(c *gin.Context) {
	var req ManagerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Manager ID and password are required", nil)
		return
	}

	token, resp, err := h.service.ManagerLogin(c.Request.Context(), c.ClientIP(), req.ManagerID, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	setSessionCookie(c, middleware.ManagerTokenCookie, token)
	response.Success(c, http.StatusOK, resp, nil)
}

// ManagerStatus handles GET /api/auth/manager-status.
func (h *Handler) ManagerStatus(c *gin.Context) {
	token := sessionToken(c, middleware.ManagerTokenCookie)
	user, err := h.service.ManagerStatus(token)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ManagerStatusResponse{Authenticated: true, User: &user}, nil)
}

// ManagerLogout handles GET /api/auth/manager-logout. Only the manager cookie
// is cleared; an employee session in the same browser survives.
func (h *Handler) ManagerLogout(c *gin.Context) {
	clearSessionCookie(c, middleware.ManagerTokenCookie)
	c.Redirect(http.StatusFound, "/")
}

// AdminLogin handles POST /api/auth/admin-login.
func (h *Handler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username and password are required", nil)
		return
	}

	token, err := h.service.AdminLogin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "AUTH_FAILED", "Invalid admin credentials", nil)
		return
	}

	setSessionCookie(c, middleware.AdminTokenCookie, token)
	response.Success(c, http.StatusOK, AdminLoginResponse{Success: true, Message: "Admin login successful"}, nil)
}

// AdminLogout handles POST /api/auth/admin-logout.
func (h *Handler) AdminLogout(c *gin.Context) {
	clearSessionCookie(c, middleware.AdminTokenCookie)
	response.Success(c, http.StatusOK, gin.H{"success": true}, nil)
}

// AdminCheck handles GET /api/auth/admin-check. Always 200; the flag carries
// the answer.
func (h *Handler) AdminCheck(c *gin.Context) {
	token := sessionToken(c, middleware.AdminTokenCookie)
	isAdmin := h.service.AdminCheck(token)
	response.Success(c, http.StatusOK, AdminCheckResponse{IsAdmin: isAdmin}, nil)
}

// Logout handles GET /api/logout and clears the employee session.
func (h *Handler) Logout(c *gin.Context) {
	clearSessionCookie(c, middleware.EmployeeTokenCookie)
	c.Redirect(http.StatusFound, "/")
}
