package kam

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=kam_repo.go -destination=mock/kam_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, kam *KnowAboutMe) error
	FindByEmployeeAndCycle(ctx context.Context, employeeID, cycleID string) (*KnowAboutMe, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// Upsert writes the form in one statement. On the (employee_id,
// appraisal_cycle_id) unique pair all text fields and updated_at are
// replaced, created_at stays.
func (r *repository) Upsert(ctx context.Context, kam *KnowAboutMe) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "appraisal_cycle_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"project_contributions",
				"role_and_responsibilities",
				"key_achievements",
				"learnings",
				"certifications",
				"technologies_worked_on",
				"mentorship",
				"volunteering_activities",
				"leadership_roles",
				"team_building_activities",
				"problems_solved",
				"strengths",
				"extra_efforts",
				"improvements",
				"updated_at",
			}),
		}).
		Create(kam).Error
}

func (r *repository) FindByEmployeeAndCycle(ctx context.Context, employeeID, cycleID string) (*KnowAboutMe, error) {
	var kam KnowAboutMe
	err := r.db.WithContext(ctx).
		First(&kam, "employee_id = ? AND appraisal_cycle_id = ?", employeeID, cycleID).Error
	return &kam, err
}
