package consumer

import (
	"context"
	"encoding/json"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/events"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/notify"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle sends the welcome email for each employee.created
// event. Decode failures are committed and skipped; send failures are left
// uncommitted so the message is retried.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	mailer notify.Mailer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if event.Email == "" {
			log.Warn("employee_created event without email, skipping",
				zap.String("employee_id", event.EmployeeID),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := mailer.SendWelcome(ctx, event.Email, event.Name); err != nil {
			log.Error("send welcome email failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("email", event.Email),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("welcome email sent from employee_created event",
			zap.String("employee_id", event.EmployeeID),
			zap.String("email", event.Email),
		)
	}
}
