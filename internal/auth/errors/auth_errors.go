package autherrors

import (
	"net/http"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid session token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Session expired",
		http.StatusUnauthorized,
	)
	ErrWrongSessionType = apperror.New(
		apperror.CodeUnauthorized,
		"A different session type is required for this resource",
		http.StatusUnauthorized,
	)
	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid email format",
		http.StatusBadRequest,
	)
	ErrInvalidOTP = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid or expired verification code",
		http.StatusUnauthorized,
	)
	ErrOTPSendFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"Failed to send verification code",
		http.StatusInternalServerError,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate session token",
		http.StatusInternalServerError,
	)
	ErrForbidden = apperror.ErrForbidden
)

// RateLimited builds the 429 returned when the manager-login attempt ceiling is
// hit; retryMinutes feeds the user-facing message.
func RateLimited(message string) *apperror.AppError {
	return apperror.New(apperror.CodeRateLimited, message, http.StatusTooManyRequests)
}
