package feedback

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=feedback_repo.go -destination=mock/feedback_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateRequest(ctx context.Context, req *FeedbackRequest) error
	FindRequestByID(ctx context.Context, id string) (*FeedbackRequest, error)
	FindRequestsByReviewer(ctx context.Context, reviewerID string) ([]FeedbackRequest, error)
	FindRequestsByCycle(ctx context.Context, cycleID string) ([]FeedbackRequest, error)
	MarkRequestSubmitted(ctx context.Context, id string) error
	CountRequestsByReviewerAndStatus(ctx context.Context, reviewerID, status string) (int64, error)
	CreateFeedback(ctx context.Context, fb *PeerFeedback) error
	FindFeedbackByTarget(ctx context.Context, targetID, cycleID string) ([]PeerFeedback, error)
	FindFeedbackByCycle(ctx context.Context, cycleID string) ([]PeerFeedback, error)
	HasFeedbackForTarget(ctx context.Context, targetID, cycleID string) (bool, error)
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

func (r *repository) CreateRequest(ctx context.Context, req *FeedbackRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindRequestByID(ctx context.Context, id string) (*FeedbackRequest, error) {
	var req FeedbackRequest
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) FindRequestsByReviewer(ctx context.Context, reviewerID string) ([]FeedbackRequest, error) {
	var reqs []FeedbackRequest
	err := r.db.WithContext(ctx).
		Preload("Target").
		Order("created_at DESC").
		Find(&reqs, "reviewer_employee_id = ?", reviewerID).Error
	return reqs, err
}

func (r *repository) FindRequestsByCycle(ctx context.Context, cycleID string) ([]FeedbackRequest, error) {
	var reqs []FeedbackRequest
	err := r.db.WithContext(ctx).
		Preload("Target").
		Preload("Reviewer").
		Order("created_at DESC").
		Find(&reqs, "appraisal_cycle_id = ?", cycleID).Error
	return reqs, err
}

// MarkRequestSubmitted flips a pending request to submitted. The status
// predicate closes the double-submit race inside the submit transaction.
func (r *repository) MarkRequestSubmitted(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&FeedbackRequest{}).
		Where("id = ? AND status = ?", id, RequestStatusPending).
		Update("status", RequestStatusSubmitted)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountRequestsByReviewerAndStatus(ctx context.Context, reviewerID, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&FeedbackRequest{}).
		Where("reviewer_employee_id = ? AND status = ?", reviewerID, status).
		Count(&count).Error
	return count, err
}

func (r *repository) CreateFeedback(ctx context.Context, fb *PeerFeedback) error {
	return r.db.WithContext(ctx).Create(fb).Error
}

func (r *repository) FindFeedbackByTarget(ctx context.Context, targetID, cycleID string) ([]PeerFeedback, error) {
	var fbs []PeerFeedback
	err := r.db.WithContext(ctx).
		Order("submitted_at DESC").
		Find(&fbs, "target_employee_id = ? AND appraisal_cycle_id = ?", targetID, cycleID).Error
	return fbs, err
}

func (r *repository) FindFeedbackByCycle(ctx context.Context, cycleID string) ([]PeerFeedback, error) {
	var fbs []PeerFeedback
	err := r.db.WithContext(ctx).
		Find(&fbs, "appraisal_cycle_id = ?", cycleID).Error
	return fbs, err
}

func (r *repository) HasFeedbackForTarget(ctx context.Context, targetID, cycleID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PeerFeedback{}).
		Where("target_employee_id = ? AND appraisal_cycle_id = ?", targetID, cycleID).
		Count(&count).Error
	return count > 0, err
}
