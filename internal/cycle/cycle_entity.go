package cycle

import (
	"time"

	"github.com/google/uuid"
)

type AppraisalCycle struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:text;not null"`
	Year      int       `gorm:"type:int;not null;index:idx_appraisal_cycles_year"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	IsActive  bool      `gorm:"not null;default:false;index:idx_appraisal_cycles_active"`

	CreatedAt time.Time
}

func (AppraisalCycle) TableName() string {
	return "appraisal_cycles"
}
