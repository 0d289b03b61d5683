package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"regexp"
	"strings"
	"time"

	autherrors "github.com/sahil00000001/Employee-Appraisal-System/internal/auth/errors"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/employee"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/middleware"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/notify"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Session lifetime shared by the token exp claim and the cookie max-age.
const SessionTTL = 7 * 24 * time.Hour

const otpTTL = 10 * time.Minute

const (
	managerSubject = "manager-admin"
	managerEmail   = "manager@360feedback.com"
	adminSubject   = "admin"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	SendOTP(ctx context.Context, email string) (SendOTPResponse, error)

	VerifyOTP(ctx context.Context, email, code string) (token string, resp LoginResponse, err error)

	ManagerLogin(ctx context.Context, clientIP, managerID, password string) (token string, resp LoginResponse, err error)

	ManagerStatus(token string) (SessionUser, error)

	AdminLogin(ctx context.Context, username, password string) (token string, err error)

	AdminCheck(token string) bool
}

type service struct {
	employees employee.Repository
	otp       OTPStore
	mailer    notify.Mailer
	limiter   *LoginLimiter

	managerUsername string
	managerHash     []byte
	adminUsername   string
	adminHash       []byte

	logger *zap.Logger
}

func NewService(employees employee.Repository, otp OTPStore, mailer notify.Mailer, limiter *LoginLimiter, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		employees:       employees,
		otp:             otp,
		mailer:          mailer,
		limiter:         limiter,
		managerUsername: envOrDefault("MANAGER_USERNAME", "manager"),
		managerHash:     credentialHash("MANAGER_PASSWORD_HASH", "manager"),
		adminUsername:   envOrDefault("ADMIN_USERNAME", "admin"),
		adminHash:       credentialHash("ADMIN_PASSWORD_HASH", "admin"),
		logger:          l,
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// credentialHash prefers a bcrypt hash from the environment and falls back to
// hashing the development default at startup.
func credentialHash(key, defaultPlain string) []byte {
	if v := os.Getenv(key); v != "" {
		return []byte(v)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPlain), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("auth: hashing default credential: %v", err))
	}
	return hash
}

func (s *service) SendOTP(ctx context.Context, email string) (SendOTPResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return SendOTPResponse{}, autherrors.ErrInvalidEmail
	}

	code, err := generateOTP()
	if err != nil {
		s.logger.Error("otp generation failed", zap.Error(err))
		return SendOTPResponse{}, autherrors.ErrOTPSendFailed
	}

	if err := s.otp.Save(ctx, email, code, otpTTL); err != nil {
		s.logger.Error("otp store failed", zap.Error(err))
		return SendOTPResponse{}, autherrors.ErrOTPSendFailed
	}

	if err := s.mailer.SendOTP(ctx, email, code); err != nil {
		s.logger.Error("otp email failed", zap.String("email", email), zap.Error(err))
		return SendOTPResponse{}, autherrors.ErrOTPSendFailed
	}

	s.logger.Debug("otp sent", zap.String("email", email))
	return SendOTPResponse{Message: "Verification code sent", Email: email}, nil
}

func (s *service) VerifyOTP(ctx context.Context, email, code string) (string, LoginResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	ok, err := s.otp.Consume(ctx, email, code)
	if err != nil {
		s.logger.Error("otp lookup failed", zap.Error(err))
		return "", LoginResponse{}, err
	}
	if !ok {
		return "", LoginResponse{}, autherrors.ErrInvalidOTP
	}

	userID, err := s.resolveUserID(ctx, email)
	if err != nil {
		return "", LoginResponse{}, err
	}

	token, err := s.signToken(jwt.MapClaims{
		"sub":          userID,
		"email":        email,
		"session_type": middleware.SessionTypeEmployee,
	})
	if err != nil {
		return "", LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("employee login", zap.String("email", email))
	return token, LoginResponse{
		Message: "Login successful",
		User: SessionUser{
			ID:        userID,
			Email:     email,
			FirstName: firstNameFromEmail(email),
		},
	}, nil
}

// resolveUserID returns the external user id for the email, linking the
// matching employee row on first login. An email with no employee row still
// gets a session; employee-scoped endpoints answer for it once a row is
// created with that email.
func (s *service) resolveUserID(ctx context.Context, email string) (string, error) {
	empl, err := s.employees.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.NewString(), nil
		}
		s.logger.Error("employee lookup failed", zap.String("email", email), zap.Error(err))
		return "", err
	}

	if empl.UserID != nil {
		return empl.UserID.String(), nil
	}

	userID := uuid.NewString()
	if err := s.employees.LinkUser(ctx, email, userID); err != nil {
		s.logger.Error("employee link failed", zap.String("email", email), zap.Error(err))
		return "", err
	}
	return userID, nil
}

func (s *service) ManagerLogin(ctx context.Context, clientIP, managerID, password string) (string, LoginResponse, error) {
	if blocked, remaining := s.limiter.Blocked(clientIP); blocked {
		s.logger.Warn("manager login rate limited", zap.String("ip", clientIP))
		return "", LoginResponse{}, autherrors.RateLimited(
			fmt.Sprintf("Too many login attempts. Please try again in %d minutes.", remaining),
		)
	}

	if managerID != s.managerUsername ||
		bcrypt.CompareHashAndPassword(s.managerHash, []byte(password)) != nil {
		s.limiter.Fail(clientIP)
		s.logger.Warn("manager login failed", zap.String("ip", clientIP))
		return "", LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	s.limiter.Reset(clientIP)

	token, err := s.signToken(jwt.MapClaims{
		"sub":          managerSubject,
		"email":        managerEmail,
		"session_type": middleware.SessionTypeManager,
	})
	if err != nil {
		return "", LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("manager login", zap.String("ip", clientIP))
	return token, LoginResponse{
		Message: "Login successful",
		User: SessionUser{
			ID:               managerSubject,
			Email:            managerEmail,
			FirstName:        "Manager",
			LastName:         "Admin",
			IsManagerSession: true,
		},
	}, nil
}

func (s *service) ManagerStatus(token string) (SessionUser, error) {
	claims, err := parseToken(token)
	if err != nil {
		return SessionUser{}, err
	}
	if st, _ := claims["session_type"].(string); st != middleware.SessionTypeManager {
		return SessionUser{}, autherrors.ErrWrongSessionType
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	return SessionUser{
		ID:        sub,
		Email:     email,
		FirstName: "Manager",
		LastName:  "Admin",
	}, nil
}

func (s *service) AdminLogin(ctx context.Context, username, password string) (string, error) {
	if username != s.adminUsername ||
		bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)) != nil {
		s.logger.Warn("admin login failed")
		return "", autherrors.ErrInvalidCredentials
	}

	token, err := s.signToken(jwt.MapClaims{
		"sub":          adminSubject,
		"session_type": middleware.SessionTypeAdmin,
	})
	if err != nil {
		return "", autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("admin login")
	return token, nil
}

func (s *service) AdminCheck(token string) bool {
	claims, err := parseToken(token)
	if err != nil {
		return false
	}
	st, _ := claims["session_type"].(string)
	return st == middleware.SessionTypeAdmin
}

func (s *service) signToken(claims jwt.MapClaims) (string, error) {
	now := time.Now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(SessionTTL).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	if tokenString == "" {
		return nil, autherrors.ErrInvalidToken
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, autherrors.ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}

// generateOTP returns a 6-digit code in [100000, 999999].
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func firstNameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
