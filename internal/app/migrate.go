package app

import (
	"github.com/sahil00000001/Employee-Appraisal-System/internal/cycle"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/employee"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/feedback"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/kam"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/review"

	"gorm.io/gorm"
)

// outbox_events is written with raw SQL, so its DDL lives here instead of an
// entity struct.
const outboxDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id TEXT,
	aggregate_type TEXT NOT NULL,
	aggregate_id UUID NOT NULL,
	event_type TEXT NOT NULL,
	topic TEXT NOT NULL,
	payload JSONB NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	error_message TEXT,
	next_retry_at TIMESTAMPTZ,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&employee.Employee{},
		&cycle.AppraisalCycle{},
		&feedback.FeedbackRequest{},
		&feedback.PeerFeedback{},
		&review.ManagerReview{},
		&review.LeadReview{},
		&kam.KnowAboutMe{},
	); err != nil {
		return err
	}
	return db.Exec(outboxDDL).Error
}
