package kam

import (
	"time"

	"github.com/google/uuid"
)

// KnowAboutMe is the free-text self-assessment, one row per
// (employee, cycle), upserted in place.
type KnowAboutMe struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID             uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_know_about_me_employee_cycle"`
	AppraisalCycleID       uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_know_about_me_employee_cycle"`
	ProjectContributions   string
	RoleAndResponsibilities string
	KeyAchievements        string
	Learnings              string
	Certifications         string
	TechnologiesWorkedOn   string
	Mentorship             string
	VolunteeringActivities string
	LeadershipRoles        string
	TeamBuildingActivities string
	ProblemsSolved         string
	Strengths              string
	ExtraEfforts           string
	Improvements           string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (KnowAboutMe) TableName() string {
	return "know_about_me"
}
