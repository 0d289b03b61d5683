package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type smtpMailer struct {
	cfg    SMTPConfig
	logger *zap.Logger
}

func NewSMTPMailer(cfg SMTPConfig, logger *zap.Logger) Mailer {
	return &smtpMailer{cfg: cfg, logger: logger.Named("notify.smtp")}
}

func (m *smtpMailer) SendOTP(ctx context.Context, to, code string) error {
	subject := fmt.Sprintf("%s is your 360 Feedback verification code", code)
	body := fmt.Sprintf(
		"Your 360 Feedback verification code is %s.\n\n"+
			"The code is valid for 10 minutes and can be used once.\n\n"+
			"If you didn't request this code, you can safely ignore this email.\n",
		code,
	)
	return m.send(ctx, to, subject, body)
}

func (m *smtpMailer) SendFeedbackAssignment(ctx context.Context, to, reviewerName, targetName string) error {
	subject := fmt.Sprintf("Action Required: Provide feedback for %s", targetName)
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"You have been asked to provide peer feedback for %s.\n\n"+
			"Please log in to 360 Feedback to complete your peer review. "+
			"Your honest and constructive feedback helps your colleague grow professionally.\n",
		reviewerName, targetName,
	)
	return m.send(ctx, to, subject, body)
}

func (m *smtpMailer) SendWelcome(ctx context.Context, to, name string) error {
	subject := "Welcome to 360 Feedback"
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"An account has been created for you in 360 Feedback. "+
			"Log in with this email address to get started.\n",
		name,
	)
	return m.send(ctx, to, subject, body)
}

func (m *smtpMailer) send(ctx context.Context, to, subject, body string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := strings.Join([]string{
		"From: 360 Feedback <" + m.cfg.From + ">",
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	addr := m.cfg.Host + ":" + m.cfg.Port
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		m.logger.Error("send mail failed", zap.String("to", to), zap.String("subject", subject), zap.Error(err))
		return err
	}

	m.logger.Debug("mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
