package feedback

import (
	"time"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/employee"

	"github.com/google/uuid"
)

const (
	RequestStatusPending   = "pending"
	RequestStatusSubmitted = "submitted"
)

// FeedbackRequest is an assignment: the reviewer must give feedback about
// the target within a cycle. Flips to submitted exactly once.
type FeedbackRequest struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	TargetEmployeeID   uuid.UUID `gorm:"type:uuid;index"`
	ReviewerEmployeeID uuid.UUID `gorm:"type:uuid;index"`
	AppraisalCycleID   uuid.UUID `gorm:"type:uuid;index"`
	Status             string    `gorm:"type:varchar(20);default:'pending'"`
	CreatedAt          time.Time

	Target   *employee.Employee `gorm:"foreignKey:TargetEmployeeID"`
	Reviewer *employee.Employee `gorm:"foreignKey:ReviewerEmployeeID"`
}

func (FeedbackRequest) TableName() string {
	return "feedback_requests"
}

// PeerFeedback is immutable once created. The five dimension scores stay
// raw integers, averaging happens at read time.
type PeerFeedback struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	FeedbackRequestID  uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_peer_feedback_request"`
	ReviewerID         uuid.UUID `gorm:"type:uuid;index"`
	TargetEmployeeID   uuid.UUID `gorm:"type:uuid;index"`
	AppraisalCycleID   uuid.UUID `gorm:"type:uuid;index"`
	TechnicalSkills    int
	Communication      int
	Teamwork           int
	ProblemSolving     int
	Leadership         int
	Strengths          string
	AreasOfImprovement string
	AdditionalComments *string
	SubmittedAt        time.Time
}

func (PeerFeedback) TableName() string {
	return "peer_feedback"
}
