package auth

import (
	"github.com/sahil00000001/Employee-Appraisal-System/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/send-otp", middleware.RateLimitByIP(0.1, 3), handler.SendOTP)
		auth.POST("/verify-otp", middleware.RateLimitByIP(0.2, 5), handler.VerifyOTP)

		auth.POST("/manager-login", handler.ManagerLogin)
		auth.GET("/manager-status", handler.ManagerStatus)
		auth.GET("/manager-logout", handler.ManagerLogout)

		auth.POST("/admin-login", middleware.RateLimitByIP(0.2, 5), handler.AdminLogin)
		auth.POST("/admin-logout", handler.AdminLogout)
		auth.GET("/admin-check", handler.AdminCheck)
	}

	r.GET("/logout", handler.Logout)
}
