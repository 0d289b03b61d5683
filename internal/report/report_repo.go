package report

import (
	"context"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/employee"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/feedback"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/review"

	"gorm.io/gorm"
)

// Repository serves the org-wide aggregate counts. These deliberately span
// every cycle, matching what the reports page has always shown.
//
//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountRequestsByStatus(ctx context.Context, status string) (int64, error)
	CountManagerReviews(ctx context.Context, completed bool) (int64, error)
	CountLeadReviews(ctx context.Context, completed bool) (int64, error)
	CompletedLeadReviewRatings(ctx context.Context) ([]int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&employee.Employee{}).Count(&count).Error
	return count, err
}

func (r *repository) CountRequestsByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&feedback.FeedbackRequest{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *repository) CountManagerReviews(ctx context.Context, completed bool) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&review.ManagerReview{})
	if completed {
		q = q.Where("status = ?", review.StatusCompleted)
	} else {
		q = q.Where("status <> ?", review.StatusCompleted)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *repository) CountLeadReviews(ctx context.Context, completed bool) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&review.LeadReview{})
	if completed {
		q = q.Where("status = ?", review.StatusCompleted)
	} else {
		q = q.Where("status <> ?", review.StatusCompleted)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *repository) CompletedLeadReviewRatings(ctx context.Context) ([]int, error) {
	var ratings []int
	err := r.db.WithContext(ctx).
		Model(&review.LeadReview{}).
		Where("status = ?", review.StatusCompleted).
		Pluck("final_rating", &ratings).Error
	return ratings, err
}
