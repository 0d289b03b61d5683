package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/auth"
	autherrors "github.com/sahil00000001/Employee-Appraisal-System/internal/auth/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	sendOTPFn       func(ctx context.Context, email string) (auth.SendOTPResponse, error)
	verifyOTPFn     func(ctx context.Context, email, code string) (string, auth.LoginResponse, error)
	managerLoginFn  func(ctx context.Context, clientIP, managerID, password string) (string, auth.LoginResponse, error)
	managerStatusFn func(token string) (auth.SessionUser, error)
	adminLoginFn    func(ctx context.Context, username, password string) (string, error)
	adminCheckFn    func(token string) bool
}

func (f *fakeAuthService) SendOTP(ctx context.Context, email string) (auth.SendOTPResponse, error) {
	return f.sendOTPFn(ctx, email)
}

func (f *fakeAuthService) VerifyOTP(ctx context.Context, email, code string) (string, auth.LoginResponse, error) {
	return f.verifyOTPFn(ctx, email, code)
}

func (f *fakeAuthService) ManagerLogin(ctx context.Context, clientIP, managerID, password string) (string, auth.LoginResponse, error) {
	return f.managerLoginFn(ctx, clientIP, managerID, password)
}

func (f *fakeAuthService) ManagerStatus(token string) (auth.SessionUser, error) {
	return f.managerStatusFn(token)
}

func (f *fakeAuthService) AdminLogin(ctx context.Context, username, password string) (string, error) {
	return f.adminLoginFn(ctx, username, password)
}

func (f *fakeAuthService) AdminCheck(token string) bool {
	return f.adminCheckFn(token)
}

func setupAuthRouter(svc auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	auth.RegisterRoutes(router.Group("/api"), auth.NewHandler(svc))
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_SendOTP(t *testing.T) {
	t.Run("missing email is a validation error", func(t *testing.T) {
		router := setupAuthRouter(&fakeAuthService{})

		w := postJSON(router, "/api/auth/send-otp", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, false, res["ok"])
	})

	t.Run("success envelope carries normalized email", func(t *testing.T) {
		svc := &fakeAuthService{
			sendOTPFn: func(ctx context.Context, email string) (auth.SendOTPResponse, error) {
				return auth.SendOTPResponse{Message: "Verification code sent", Email: "alice@example.com"}, nil
			},
		}
		router := setupAuthRouter(svc)

		w := postJSON(router, "/api/auth/send-otp", gin.H{"email": "Alice@Example.com"})
		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		data := res["data"].(map[string]any)
		assert.Equal(t, "alice@example.com", data["email"])
	})
}

func TestAuthHandler_VerifyOTP(t *testing.T) {
	t.Run("sets employee session cookie", func(t *testing.T) {
		svc := &fakeAuthService{
			verifyOTPFn: func(ctx context.Context, email, code string) (string, auth.LoginResponse, error) {
				return "signed-token", auth.LoginResponse{
					Message: "Login successful",
					User:    auth.SessionUser{ID: "user-1", Email: email},
				}, nil
			},
		}
		router := setupAuthRouter(svc)

		w := postJSON(router, "/api/auth/verify-otp", gin.H{"email": "alice@example.com", "code": "123456"})
		assert.Equal(t, http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, "access_token", cookies[0].Name)
		assert.Equal(t, "signed-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("invalid code maps to 401", func(t *testing.T) {
		svc := &fakeAuthService{
			verifyOTPFn: func(ctx context.Context, email, code string) (string, auth.LoginResponse, error) {
				return "", auth.LoginResponse{}, autherrors.ErrInvalidOTP
			},
		}
		router := setupAuthRouter(svc)

		w := postJSON(router, "/api/auth/verify-otp", gin.H{"email": "alice@example.com", "code": "000000"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_ManagerLogin(t *testing.T) {
	t.Run("rate limited response reaches the client", func(t *testing.T) {
		svc := &fakeAuthService{
			managerLoginFn: func(ctx context.Context, clientIP, managerID, password string) (string, auth.LoginResponse, error) {
				return "", auth.LoginResponse{}, autherrors.RateLimited("Too many login attempts. Please try again in 12 minutes.")
			},
		}
		router := setupAuthRouter(svc)

		w := postJSON(router, "/api/auth/manager-login", gin.H{"managerId": "manager", "password": "wrong"})
		assert.Equal(t, http.StatusTooManyRequests, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		errBody := res["error"].(map[string]any)
		assert.Contains(t, errBody["message"], "12 minutes")
	})

	t.Run("success sets manager cookie", func(t *testing.T) {
		svc := &fakeAuthService{
			managerLoginFn: func(ctx context.Context, clientIP, managerID, password string) (string, auth.LoginResponse, error) {
				return "manager-token", auth.LoginResponse{
					Message: "Login successful",
					User:    auth.SessionUser{ID: "manager-admin", IsManagerSession: true},
				}, nil
			},
		}
		router := setupAuthRouter(svc)

		w := postJSON(router, "/api/auth/manager-login", gin.H{"managerId": "manager", "password": "manager"})
		assert.Equal(t, http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, "manager_token", cookies[0].Name)
	})
}

func TestAuthHandler_ManagerStatus(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		svc := &fakeAuthService{
			managerStatusFn: func(token string) (auth.SessionUser, error) {
				return auth.SessionUser{}, autherrors.ErrInvalidToken
			},
		}
		router := setupAuthRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/manager-status", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, false, res["ok"])
		assert.NotNil(t, res["error"])
		assert.Nil(t, res["data"])
	})

	t.Run("authenticated", func(t *testing.T) {
		svc := &fakeAuthService{
			managerStatusFn: func(token string) (auth.SessionUser, error) {
				return auth.SessionUser{ID: "manager-admin", Email: "manager@360feedback.com"}, nil
			},
		}
		router := setupAuthRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/manager-status", nil)
		req.AddCookie(&http.Cookie{Name: "manager_token", Value: "some-token"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		data := res["data"].(map[string]any)
		assert.Equal(t, true, data["authenticated"])
		assert.Equal(t, "manager-admin", data["user"].(map[string]any)["id"])
	})
}

func TestAuthHandler_AdminCheck(t *testing.T) {
	svc := &fakeAuthService{
		adminCheckFn: func(token string) bool { return token == "admin-token" },
	}
	router := setupAuthRouter(svc)

	t.Run("no session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/admin-check", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, false, res["data"].(map[string]any)["isAdmin"])
	})

	t.Run("admin session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/admin-check", nil)
		req.AddCookie(&http.Cookie{Name: "admin_token", Value: "admin-token"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, true, res["data"].(map[string]any)["isAdmin"])
	})
}
