package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleLead     = "lead"
)

// Employee is the organisation directory row. ManagerID and LeadID are
// self-referential, UserID is filled in the first time the employee
// authenticates via the OTP flow.
type Employee struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID       *uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Email        string `gorm:"uniqueIndex:uq_employee_email"`
	Role         string `gorm:"type:varchar(20);default:'employee'"`
	Designation  string
	Department   string
	ProjectName  string
	ManagerID    *uuid.UUID `gorm:"type:uuid"`
	LeadID       *uuid.UUID `gorm:"type:uuid"`
	ProfileImage string
	CreatedAt    time.Time

	Manager *Employee `gorm:"foreignKey:ManagerID"`
	Lead    *Employee `gorm:"foreignKey:LeadID"`
}

func (Employee) TableName() string {
	return "employees"
}
