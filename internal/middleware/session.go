package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "github.com/sahil00000001/Employee-Appraisal-System/internal/auth/errors"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Session types. The three gates are parallel and independent: a request can
// hold an employee session without holding a manager or admin session, and
// none of them implies another.
const (
	SessionTypeEmployee = "employee"
	SessionTypeManager  = "manager"
	SessionTypeAdmin    = "admin"
)

// Cookie names per session variant.
const (
	EmployeeTokenCookie = "access_token"
	ManagerTokenCookie  = "manager_token"
	AdminTokenCookie    = "admin_token"
)

func tokenFromRequest(c *gin.Context, cookieName string) string {
	authHeader := c.GetHeader("Authorization")
	if tokenString, found := strings.CutPrefix(authHeader, "Bearer "); found && tokenString != "" {
		return tokenString
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

func parseSessionToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		if err != nil && strings.Contains(err.Error(), "expired") {
			return nil, autherrors.ErrTokenExpired
		}
		return nil, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}

func requireSession(c *gin.Context, cookieName, sessionType string) (jwt.MapClaims, bool) {
	tokenString := tokenFromRequest(c, cookieName)
	if tokenString == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
		c.Abort()
		return nil, false
	}

	claims, err := parseSessionToken(tokenString)
	if err != nil {
		writeSessionError(c, err)
		return nil, false
	}

	if st, _ := claims["session_type"].(string); st != sessionType {
		writeSessionError(c, autherrors.ErrWrongSessionType)
		return nil, false
	}
	return claims, true
}

func writeSessionError(c *gin.Context, err error) {
	switch err {
	case autherrors.ErrTokenExpired:
		response.Error(c, autherrors.ErrTokenExpired.HTTPStatus, autherrors.ErrTokenExpired.Code, autherrors.ErrTokenExpired.Message, nil)
	case autherrors.ErrWrongSessionType:
		response.Error(c, autherrors.ErrWrongSessionType.HTTPStatus, autherrors.ErrWrongSessionType.Code, autherrors.ErrWrongSessionType.Message, nil)
	default:
		response.Error(c, autherrors.ErrInvalidToken.HTTPStatus, autherrors.ErrInvalidToken.Code, autherrors.ErrInvalidToken.Message, nil)
	}
	c.Abort()
}

// EmployeeSession guards endpoints that act on behalf of an individual
// employee. It resolves the external user id from the token; the employee row
// lookup happens in services.
func EmployeeSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := requireSession(c, EmployeeTokenCookie, SessionTypeEmployee)
		if !ok {
			return
		}

		userID, ok := claims["sub"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token", nil)
			c.Abort()
			return
		}

		email, _ := claims["email"].(string)

		c.Set("user_id", userID)
		c.Set("user_email", email)
		c.Next()
	}
}

// ManagerSession guards the shared-credential manager surface (employee
// directory and feedback assignment). It is not an employee identity.
func ManagerSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := requireSession(c, ManagerTokenCookie, SessionTypeManager); !ok {
			return
		}
		c.Set("manager_session", true)
		c.Next()
	}
}

// AdminSession guards the read-only aggregate/report surface.
func AdminSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := requireSession(c, AdminTokenCookie, SessionTypeAdmin); !ok {
			return
		}
		c.Set("admin_session", true)
		c.Next()
	}
}
