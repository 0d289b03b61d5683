package auth_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/auth"
	autherrors "github.com/sahil00000001/Employee-Appraisal-System/internal/auth/errors"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/employee"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	employee.Repository
	findByEmailFn func(ctx context.Context, email string) (*employee.Employee, error)
	linkUserFn    func(ctx context.Context, email, userID string) error
}

func (f *fakeEmployeeRepo) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return f.findByEmailFn(ctx, email)
}

func (f *fakeEmployeeRepo) LinkUser(ctx context.Context, email, userID string) error {
	return f.linkUserFn(ctx, email, userID)
}

type fakeOTPStore struct {
	saveFn    func(ctx context.Context, email, code string, ttl time.Duration) error
	consumeFn func(ctx context.Context, email, code string) (bool, error)
}

func (f *fakeOTPStore) Save(ctx context.Context, email, code string, ttl time.Duration) error {
	return f.saveFn(ctx, email, code, ttl)
}

func (f *fakeOTPStore) Consume(ctx context.Context, email, code string) (bool, error) {
	return f.consumeFn(ctx, email, code)
}

type fakeMailer struct {
	sendOTPFn func(ctx context.Context, to, code string) error
}

func (f *fakeMailer) SendOTP(ctx context.Context, to, code string) error {
	if f.sendOTPFn != nil {
		return f.sendOTPFn(ctx, to, code)
	}
	return nil
}

func (f *fakeMailer) SendFeedbackAssignment(ctx context.Context, to, reviewerName, targetName string) error {
	return nil
}

func (f *fakeMailer) SendWelcome(ctx context.Context, to, name string) error {
	return nil
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	return claims
}

func TestAuthService_SendOTP(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	t.Run("rejects malformed email", func(t *testing.T) {
		svc := auth.NewService(&fakeEmployeeRepo{}, &fakeOTPStore{}, &fakeMailer{}, auth.NewLoginLimiter())

		_, err := svc.SendOTP(ctx, "not-an-email")
		assert.ErrorIs(t, err, autherrors.ErrInvalidEmail)
	})

	t.Run("stores six digit code and mails it", func(t *testing.T) {
		var storedCode, mailedCode, storedEmail string
		var storedTTL time.Duration

		store := &fakeOTPStore{
			saveFn: func(ctx context.Context, email, code string, ttl time.Duration) error {
				storedEmail, storedCode, storedTTL = email, code, ttl
				return nil
			},
		}
		mailer := &fakeMailer{
			sendOTPFn: func(ctx context.Context, to, code string) error {
				mailedCode = code
				return nil
			},
		}
		svc := auth.NewService(&fakeEmployeeRepo{}, store, mailer, auth.NewLoginLimiter())

		resp, err := svc.SendOTP(ctx, "Alice@Example.COM")
		assert.NoError(t, err)
		assert.Equal(t, "alice@example.com", resp.Email)
		assert.Equal(t, "Verification code sent", resp.Message)
		assert.Equal(t, "alice@example.com", storedEmail)
		assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), storedCode)
		assert.Equal(t, storedCode, mailedCode)
		assert.Equal(t, 10*time.Minute, storedTTL)
	})

	t.Run("mail failure surfaces as send failure", func(t *testing.T) {
		store := &fakeOTPStore{
			saveFn: func(ctx context.Context, email, code string, ttl time.Duration) error { return nil },
		}
		mailer := &fakeMailer{
			sendOTPFn: func(ctx context.Context, to, code string) error { return errors.New("smtp down") },
		}
		svc := auth.NewService(&fakeEmployeeRepo{}, store, mailer, auth.NewLoginLimiter())

		_, err := svc.SendOTP(ctx, "alice@example.com")
		assert.ErrorIs(t, err, autherrors.ErrOTPSendFailed)
	})
}

func TestAuthService_VerifyOTP(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	t.Run("unknown, expired or wrong code", func(t *testing.T) {
		var guessedEmail, guessedCode string
		store := &fakeOTPStore{
			consumeFn: func(ctx context.Context, email, code string) (bool, error) {
				guessedEmail, guessedCode = email, code
				return false, nil
			},
		}
		svc := auth.NewService(&fakeEmployeeRepo{}, store, &fakeMailer{}, auth.NewLoginLimiter())

		_, _, err := svc.VerifyOTP(ctx, "alice@example.com", "123456")
		assert.ErrorIs(t, err, autherrors.ErrInvalidOTP)
		assert.Equal(t, "alice@example.com", guessedEmail)
		assert.Equal(t, "123456", guessedCode)
	})

	t.Run("links unlinked employee and issues employee token", func(t *testing.T) {
		var linkedEmail, linkedUserID string
		repo := &fakeEmployeeRepo{
			findByEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
				return &employee.Employee{ID: uuid.New(), Email: email}, nil
			},
			linkUserFn: func(ctx context.Context, email, userID string) error {
				linkedEmail, linkedUserID = email, userID
				return nil
			},
		}
		store := &fakeOTPStore{
			consumeFn: func(ctx context.Context, email, code string) (bool, error) {
				return true, nil
			},
		}
		svc := auth.NewService(repo, store, &fakeMailer{}, auth.NewLoginLimiter())

		token, resp, err := svc.VerifyOTP(ctx, "Alice@example.com", "123456")
		assert.NoError(t, err)
		assert.Equal(t, "Login successful", resp.Message)
		assert.Equal(t, "alice@example.com", resp.User.Email)
		assert.Equal(t, "alice", resp.User.FirstName)
		assert.Equal(t, "alice@example.com", linkedEmail)
		assert.Equal(t, resp.User.ID, linkedUserID)

		claims := parseClaims(t, token)
		assert.Equal(t, "employee", claims["session_type"])
		assert.Equal(t, linkedUserID, claims["sub"])
	})

	t.Run("reuses existing user id", func(t *testing.T) {
		existing := uuid.New()
		repo := &fakeEmployeeRepo{
			findByEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
				return &employee.Employee{ID: uuid.New(), Email: email, UserID: &existing}, nil
			},
			linkUserFn: func(ctx context.Context, email, userID string) error {
				t.Fatal("LinkUser should not be called for a linked employee")
				return nil
			},
		}
		store := &fakeOTPStore{
			consumeFn: func(ctx context.Context, email, code string) (bool, error) {
				return true, nil
			},
		}
		svc := auth.NewService(repo, store, &fakeMailer{}, auth.NewLoginLimiter())

		_, resp, err := svc.VerifyOTP(ctx, "alice@example.com", "123456")
		assert.NoError(t, err)
		assert.Equal(t, existing.String(), resp.User.ID)
	})

	t.Run("email without employee row still gets a session", func(t *testing.T) {
		repo := &fakeEmployeeRepo{
			findByEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		store := &fakeOTPStore{
			consumeFn: func(ctx context.Context, email, code string) (bool, error) {
				return true, nil
			},
		}
		svc := auth.NewService(repo, store, &fakeMailer{}, auth.NewLoginLimiter())

		token, resp, err := svc.VerifyOTP(ctx, "ghost@example.com", "123456")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotEmpty(t, resp.User.ID)
	})
}

func TestAuthService_ManagerLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	t.Run("default credentials succeed", func(t *testing.T) {
		svc := auth.NewService(&fakeEmployeeRepo{}, &fakeOTPStore{}, &fakeMailer{}, auth.NewLoginLimiter())

		token, resp, err := svc.ManagerLogin(ctx, "10.0.0.1", "manager", "manager")
		assert.NoError(t, err)
		assert.True(t, resp.User.IsManagerSession)
		assert.Equal(t, "manager-admin", resp.User.ID)

		claims := parseClaims(t, token)
		assert.Equal(t, "manager", claims["session_type"])
	})

	t.Run("wrong credentials", func(t *testing.T) {
		svc := auth.NewService(&fakeEmployeeRepo{}, &fakeOTPStore{}, &fakeMailer{}, auth.NewLoginLimiter())

		_, _, err := svc.ManagerLogin(ctx, "10.0.0.2", "manager", "wrong")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("rate limited after repeated failures even with correct credentials", func(t *testing.T) {
		svc := auth.NewService(&fakeEmployeeRepo{}, &fakeOTPStore{}, &fakeMailer{}, auth.NewLoginLimiter())

		for i := 0; i < 5; i++ {
			_, _, err := svc.ManagerLogin(ctx, "10.0.0.3", "manager", "wrong")
			assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
		}

		_, _, err := svc.ManagerLogin(ctx, "10.0.0.3", "manager", "manager")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeRateLimited, appErr.Code)
		assert.Equal(t, 429, appErr.HTTPStatus)
		assert.Contains(t, appErr.Message, "Too many login attempts")
	})

	t.Run("limiter is per ip", func(t *testing.T) {
		svc := auth.NewService(&fakeEmployeeRepo{}, &fakeOTPStore{}, &fakeMailer{}, auth.NewLoginLimiter())

		for i := 0; i < 5; i++ {
			_, _, _ = svc.ManagerLogin(ctx, "10.0.0.4", "manager", "wrong")
		}

		_, _, err := svc.ManagerLogin(ctx, "10.0.0.5", "manager", "manager")
		assert.NoError(t, err)
	})
}

func TestAuthService_AdminLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()
	svc := auth.NewService(&fakeEmployeeRepo{}, &fakeOTPStore{}, &fakeMailer{}, auth.NewLoginLimiter())

	t.Run("default credentials succeed and check passes", func(t *testing.T) {
		token, err := svc.AdminLogin(ctx, "admin", "admin")
		assert.NoError(t, err)

		claims := parseClaims(t, token)
		assert.Equal(t, "admin", claims["session_type"])
		assert.True(t, svc.AdminCheck(token))
	})

	t.Run("wrong credentials", func(t *testing.T) {
		_, err := svc.AdminLogin(ctx, "admin", "nope")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("check rejects other session types", func(t *testing.T) {
		token, _, err := svc.ManagerLogin(ctx, "10.0.1.1", "manager", "manager")
		assert.NoError(t, err)
		assert.False(t, svc.AdminCheck(token))
	})
}

func TestAuthService_ManagerStatus(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()
	svc := auth.NewService(&fakeEmployeeRepo{}, &fakeOTPStore{}, &fakeMailer{}, auth.NewLoginLimiter())

	t.Run("valid manager token", func(t *testing.T) {
		token, _, err := svc.ManagerLogin(ctx, "10.0.2.1", "manager", "manager")
		assert.NoError(t, err)

		user, err := svc.ManagerStatus(token)
		assert.NoError(t, err)
		assert.Equal(t, "manager-admin", user.ID)
		assert.Equal(t, "manager@360feedback.com", user.Email)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := svc.ManagerStatus("")
		assert.Error(t, err)
	})

	t.Run("employee token is not a manager session", func(t *testing.T) {
		store := &fakeOTPStore{
			consumeFn: func(ctx context.Context, email, code string) (bool, error) { return true, nil },
		}
		repo := &fakeEmployeeRepo{
			findByEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		empSvc := auth.NewService(repo, store, &fakeMailer{}, auth.NewLoginLimiter())
		token, _, err := empSvc.VerifyOTP(ctx, "alice@example.com", "123456")
		assert.NoError(t, err)

		_, err = svc.ManagerStatus(token)
		assert.ErrorIs(t, err, autherrors.ErrWrongSessionType)
	})
}
