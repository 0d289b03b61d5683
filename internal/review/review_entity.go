package review

import (
	"time"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/cycle"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/employee"

	"github.com/google/uuid"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// ManagerReview holds at most one row per (employee, cycle); resubmission
// upserts in place and keeps the original creation timestamp.
type ManagerReview struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	ManagerID          uuid.UUID `gorm:"type:uuid;index"`
	EmployeeID         uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_manager_review_employee_cycle"`
	AppraisalCycleID   uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_manager_review_employee_cycle"`
	PerformanceRating  int
	GoalsAchieved      string
	AreasOfGrowth      string
	TrainingNeeds      *string
	PromotionReadiness string
	OverallComments    string
	Status             string `gorm:"type:varchar(20);default:'pending'"`
	SubmittedAt        *time.Time
	CreatedAt          time.Time

	Manager *employee.Employee `gorm:"foreignKey:ManagerID"`
}

func (ManagerReview) TableName() string {
	return "manager_reviews"
}

// LeadReview is structurally parallel to ManagerReview and carries the
// final appraisal decision.
type LeadReview struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	LeadID              uuid.UUID `gorm:"type:uuid;index"`
	EmployeeID          uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_lead_review_employee_cycle"`
	AppraisalCycleID    uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_lead_review_employee_cycle"`
	FinalRating         int
	IncrementPercentage *string
	PromotionDecision   string
	Remarks             string
	Status              string `gorm:"type:varchar(20);default:'pending'"`
	SubmittedAt         *time.Time
	CreatedAt           time.Time

	Cycle *cycle.AppraisalCycle `gorm:"foreignKey:AppraisalCycleID"`
}

func (LeadReview) TableName() string {
	return "lead_reviews"
}
