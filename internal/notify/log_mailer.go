package notify

import (
	"context"

	"go.uber.org/zap"
)

// logMailer stands in when SMTP is not configured (local development).
// It logs what would have been sent and reports success.
type logMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) Mailer {
	return &logMailer{logger: logger.Named("notify.log")}
}

func (m *logMailer) SendOTP(_ context.Context, to, code string) error {
	m.logger.Info("otp mail (not sent, smtp disabled)", zap.String("to", to), zap.String("code", code))
	return nil
}

func (m *logMailer) SendFeedbackAssignment(_ context.Context, to, reviewerName, targetName string) error {
	m.logger.Info("assignment mail (not sent, smtp disabled)",
		zap.String("to", to),
		zap.String("reviewer", reviewerName),
		zap.String("target", targetName),
	)
	return nil
}

func (m *logMailer) SendWelcome(_ context.Context, to, name string) error {
	m.logger.Info("welcome mail (not sent, smtp disabled)", zap.String("to", to), zap.String("name", name))
	return nil
}
