package review

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=review_repo.go -destination=mock/review_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	UpsertManagerReview(ctx context.Context, r *ManagerReview) error
	FindManagerReview(ctx context.Context, employeeID, cycleID string) (*ManagerReview, error)
	UpsertLeadReview(ctx context.Context, r *LeadReview) error
	FindLeadReview(ctx context.Context, employeeID, cycleID string) (*LeadReview, error)
	FindCompletedLeadReviews(ctx context.Context, employeeID string) ([]LeadReview, error)
	FindLatestCompletedLeadReview(ctx context.Context, employeeID string) (*LeadReview, error)
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

// UpsertManagerReview inserts or, on the (employee_id, appraisal_cycle_id)
// unique pair, overwrites the review fields in one statement. created_at is
// never touched on conflict.
func (r *repository) UpsertManagerReview(ctx context.Context, rev *ManagerReview) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "appraisal_cycle_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"manager_id",
				"performance_rating",
				"goals_achieved",
				"areas_of_growth",
				"training_needs",
				"promotion_readiness",
				"overall_comments",
				"status",
				"submitted_at",
			}),
		}).
		Create(rev).Error
}

func (r *repository) FindManagerReview(ctx context.Context, employeeID, cycleID string) (*ManagerReview, error) {
	var rev ManagerReview
	err := r.db.WithContext(ctx).
		First(&rev, "employee_id = ? AND appraisal_cycle_id = ?", employeeID, cycleID).Error
	return &rev, err
}

func (r *repository) UpsertLeadReview(ctx context.Context, rev *LeadReview) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "appraisal_cycle_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"lead_id",
				"final_rating",
				"increment_percentage",
				"promotion_decision",
				"remarks",
				"status",
				"submitted_at",
			}),
		}).
		Create(rev).Error
}

func (r *repository) FindLeadReview(ctx context.Context, employeeID, cycleID string) (*LeadReview, error) {
	var rev LeadReview
	err := r.db.WithContext(ctx).
		First(&rev, "employee_id = ? AND appraisal_cycle_id = ?", employeeID, cycleID).Error
	return &rev, err
}

func (r *repository) FindCompletedLeadReviews(ctx context.Context, employeeID string) ([]LeadReview, error) {
	var revs []LeadReview
	err := r.db.WithContext(ctx).
		Preload("Cycle").
		Where("employee_id = ? AND status = ?", employeeID, StatusCompleted).
		Order("submitted_at DESC").
		Find(&revs).Error
	return revs, err
}

func (r *repository) FindLatestCompletedLeadReview(ctx context.Context, employeeID string) (*LeadReview, error) {
	var rev LeadReview
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND status = ?", employeeID, StatusCompleted).
		Order("submitted_at DESC").
		First(&rev).Error
	return &rev, err
}
