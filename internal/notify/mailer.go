package notify

import "context"

//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Mailer interface {
	SendOTP(ctx context.Context, to, code string) error
	SendFeedbackAssignment(ctx context.Context, to, reviewerName, targetName string) error
	SendWelcome(ctx context.Context, to, name string) error
}
