package review

import (
	"context"
	"errors"
	"time"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/cycle"
	cycleerrors "github.com/sahil00000001/Employee-Appraisal-System/internal/cycle/errors"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/employee"
	employeeerrors "github.com/sahil00000001/Employee-Appraisal-System/internal/employee/errors"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/feedback"
	reviewerrors "github.com/sahil00000001/Employee-Appraisal-System/internal/review/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=review_service.go -destination=mock/review_service_mock.go -package=mock
type Service interface {
	SubmitManagerReview(ctx context.Context, userID string, req SubmitManagerReviewRequest) (ManagerReviewResponse, error)
	SubmitLeadReview(ctx context.Context, userID string, req SubmitLeadReviewRequest) (LeadReviewResponse, error)
	TeamMembers(ctx context.Context, userID string) ([]TeamMemberResponse, error)
	LeadAppraisals(ctx context.Context, userID string) ([]AppraisalBundle, error)
	MyRatings(ctx context.Context, userID string) (MyRatingsResponse, error)
}

type service struct {
	repo      Repository
	employees employee.Repository
	cycles    cycle.Repository
	feedbacks feedback.Repository
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	employees employee.Repository,
	cycles cycle.Repository,
	feedbacks feedback.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("review.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("review.service")
	}
	return &service{
		repo:      repo,
		employees: employees,
		cycles:    cycles,
		feedbacks: feedbacks,
		logger:    l,
	}
}

func (s *service) SubmitManagerReview(ctx context.Context, userID string, req SubmitManagerReviewRequest) (ManagerReviewResponse, error) {
	s.logger.Debug("submit manager review requested",
		zap.String("user_id", userID),
		zap.String("employee_id", req.EmployeeID),
	)

	manager, err := s.reviewerByUser(ctx, userID)
	if err != nil {
		return ManagerReviewResponse{}, err
	}
	if manager.Role != employee.RoleManager && manager.Role != employee.RoleLead {
		return ManagerReviewResponse{}, reviewerrors.ErrNotReviewerRole
	}

	activeCycle, err := cycle.ActiveCycle(ctx, s.cycles)
	if err != nil {
		return ManagerReviewResponse{}, err
	}

	target, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ManagerReviewResponse{}, reviewerrors.ErrNotDirectReport
		}
		return ManagerReviewResponse{}, err
	}
	if target.ManagerID == nil || *target.ManagerID != manager.ID {
		s.logger.Warn("manager review ownership check failed",
			zap.String("manager_id", manager.ID.String()),
			zap.String("employee_id", req.EmployeeID),
		)
		return ManagerReviewResponse{}, reviewerrors.ErrNotDirectReport
	}

	status := req.Status
	if status == "" {
		status = StatusCompleted
	}

	rev := &ManagerReview{
		ID:                 uuid.New(),
		ManagerID:          manager.ID,
		EmployeeID:         target.ID,
		AppraisalCycleID:   activeCycle.ID,
		PerformanceRating:  req.PerformanceRating,
		GoalsAchieved:      req.GoalsAchieved,
		AreasOfGrowth:      req.AreasOfGrowth,
		TrainingNeeds:      req.TrainingNeeds,
		PromotionReadiness: req.PromotionReadiness,
		OverallComments:    req.OverallComments,
		Status:             status,
		SubmittedAt:        submittedAtFor(status),
	}

	if err := s.repo.UpsertManagerReview(ctx, rev); err != nil {
		s.logger.Error("manager review upsert failed", zap.Error(err))
		return ManagerReviewResponse{}, err
	}

	s.logger.Info("manager review submitted",
		zap.String("employee_id", target.ID.String()),
		zap.String("cycle_id", activeCycle.ID.String()),
		zap.String("status", status),
	)

	stored, err := s.repo.FindManagerReview(ctx, target.ID.String(), activeCycle.ID.String())
	if err != nil {
		return ManagerReviewResponse{}, err
	}
	return ToManagerReviewResponse(*stored), nil
}

func (s *service) SubmitLeadReview(ctx context.Context, userID string, req SubmitLeadReviewRequest) (LeadReviewResponse, error) {
	s.logger.Debug("submit lead review requested",
		zap.String("user_id", userID),
		zap.String("employee_id", req.EmployeeID),
	)

	lead, err := s.reviewerByUser(ctx, userID)
	if err != nil {
		return LeadReviewResponse{}, err
	}
	if lead.Role != employee.RoleLead {
		return LeadReviewResponse{}, reviewerrors.ErrNotReviewerRole
	}

	activeCycle, err := cycle.ActiveCycle(ctx, s.cycles)
	if err != nil {
		return LeadReviewResponse{}, err
	}

	target, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeadReviewResponse{}, reviewerrors.ErrNotUnderLeadership
		}
		return LeadReviewResponse{}, err
	}
	underLead := target.LeadID != nil && *target.LeadID == lead.ID
	underManager := target.ManagerID != nil && *target.ManagerID == lead.ID
	if !underLead && !underManager {
		s.logger.Warn("lead review ownership check failed",
			zap.String("lead_id", lead.ID.String()),
			zap.String("employee_id", req.EmployeeID),
		)
		return LeadReviewResponse{}, reviewerrors.ErrNotUnderLeadership
	}

	status := req.Status
	if status == "" {
		status = StatusCompleted
	}

	rev := &LeadReview{
		ID:                  uuid.New(),
		LeadID:              lead.ID,
		EmployeeID:          target.ID,
		AppraisalCycleID:    activeCycle.ID,
		FinalRating:         req.FinalRating,
		IncrementPercentage: req.IncrementPercentage,
		PromotionDecision:   req.PromotionDecision,
		Remarks:             req.Remarks,
		Status:              status,
		SubmittedAt:         submittedAtFor(status),
	}

	if err := s.repo.UpsertLeadReview(ctx, rev); err != nil {
		s.logger.Error("lead review upsert failed", zap.Error(err))
		return LeadReviewResponse{}, err
	}

	s.logger.Info("lead review submitted",
		zap.String("employee_id", target.ID.String()),
		zap.String("cycle_id", activeCycle.ID.String()),
		zap.String("status", status),
	)

	stored, err := s.repo.FindLeadReview(ctx, target.ID.String(), activeCycle.ID.String())
	if err != nil {
		return LeadReviewResponse{}, err
	}
	return ToLeadReviewResponse(*stored), nil
}

func (s *service) TeamMembers(ctx context.Context, userID string) ([]TeamMemberResponse, error) {
	member, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []TeamMemberResponse{}, nil
		}
		return nil, err
	}
	if member.Role != employee.RoleManager && member.Role != employee.RoleLead {
		return []TeamMemberResponse{}, nil
	}

	activeCycle, err := s.activeCycleOrNil(ctx)
	if err != nil {
		return nil, err
	}

	team, err := s.employees.FindByManager(ctx, member.ID.String())
	if err != nil {
		s.logger.Error("team members lookup failed", zap.Error(err))
		return nil, err
	}

	result := make([]TeamMemberResponse, 0, len(team))
	for _, empl := range team {
		item := TeamMemberResponse{Employee: employee.ToResponse(empl)}

		if activeCycle != nil {
			rev, err := s.managerReviewOrNil(ctx, empl.ID.String(), activeCycle.ID.String())
			if err != nil {
				return nil, err
			}
			item.Review = rev

			has, err := s.feedbacks.HasFeedbackForTarget(ctx, empl.ID.String(), activeCycle.ID.String())
			if err != nil {
				return nil, err
			}
			item.HasPeerFeedback = has
		}

		result = append(result, item)
	}

	return result, nil
}

func (s *service) LeadAppraisals(ctx context.Context, userID string) ([]AppraisalBundle, error) {
	lead, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []AppraisalBundle{}, nil
		}
		return nil, err
	}
	if lead.Role != employee.RoleLead {
		return []AppraisalBundle{}, nil
	}

	activeCycle, err := s.activeCycleOrNil(ctx)
	if err != nil {
		return nil, err
	}

	team, err := s.employees.FindByLeadOrManager(ctx, lead.ID.String())
	if err != nil {
		s.logger.Error("lead appraisals lookup failed", zap.Error(err))
		return nil, err
	}

	result := make([]AppraisalBundle, 0, len(team))
	for _, empl := range team {
		bundle := AppraisalBundle{
			Employee:     employee.ToResponse(empl),
			PeerFeedback: []feedback.FeedbackResponse{},
		}

		if activeCycle != nil {
			mgrRev, err := s.managerReviewOrNil(ctx, empl.ID.String(), activeCycle.ID.String())
			if err != nil {
				return nil, err
			}
			if mgrRev != nil {
				if mgr, err := s.employees.FindByID(ctx, mgrRev.ManagerID); err == nil {
					mgrRev.Manager = employee.ToSummary(mgr)
				}
			}
			bundle.ManagerReview = mgrRev

			fbs, err := s.feedbacks.FindFeedbackByTarget(ctx, empl.ID.String(), activeCycle.ID.String())
			if err != nil {
				return nil, err
			}
			for _, fb := range fbs {
				bundle.PeerFeedback = append(bundle.PeerFeedback, feedback.ToFeedbackResponse(fb))
			}

			leadRev, err := s.repo.FindLeadReview(ctx, empl.ID.String(), activeCycle.ID.String())
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			if err == nil {
				mapped := ToLeadReviewResponse(*leadRev)
				bundle.LeadReview = &mapped
			}
		}

		result = append(result, bundle)
	}

	return result, nil
}

func (s *service) MyRatings(ctx context.Context, userID string) (MyRatingsResponse, error) {
	empl, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MyRatingsResponse{Reviews: []LeadReviewResponse{}}, nil
		}
		return MyRatingsResponse{}, err
	}

	revs, err := s.repo.FindCompletedLeadReviews(ctx, empl.ID.String())
	if err != nil {
		s.logger.Error("my ratings lookup failed", zap.Error(err))
		return MyRatingsResponse{}, err
	}

	resp := MyRatingsResponse{Reviews: make([]LeadReviewResponse, len(revs))}
	if len(revs) > 0 {
		var sum float64
		for i, r := range revs {
			resp.Reviews[i] = ToLeadReviewResponse(r)
			sum += float64(r.FinalRating)
		}
		avg := sum / float64(len(revs))
		resp.AverageRating = &avg
	}

	return resp, nil
}

func (s *service) reviewerByUser(ctx context.Context, userID string) (*employee.Employee, error) {
	empl, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrNotLinkedToUser
		}
		return nil, err
	}
	return empl, nil
}

func (s *service) activeCycleOrNil(ctx context.Context) (*cycle.AppraisalCycle, error) {
	c, err := cycle.ActiveCycle(ctx, s.cycles)
	if err != nil {
		if errors.Is(err, cycleerrors.ErrNoActiveCycle) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (s *service) managerReviewOrNil(ctx context.Context, employeeID, cycleID string) (*ManagerReviewResponse, error) {
	rev, err := s.repo.FindManagerReview(ctx, employeeID, cycleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	mapped := ToManagerReviewResponse(*rev)
	return &mapped, nil
}

func submittedAtFor(status string) *time.Time {
	if status != StatusCompleted {
		return nil
	}
	now := time.Now().UTC()
	return &now
}

func ToManagerReviewResponse(rev ManagerReview) ManagerReviewResponse {
	resp := ManagerReviewResponse{
		ID:                 rev.ID.String(),
		ManagerID:          rev.ManagerID.String(),
		EmployeeID:         rev.EmployeeID.String(),
		AppraisalCycleID:   rev.AppraisalCycleID.String(),
		PerformanceRating:  rev.PerformanceRating,
		GoalsAchieved:      rev.GoalsAchieved,
		AreasOfGrowth:      rev.AreasOfGrowth,
		TrainingNeeds:      rev.TrainingNeeds,
		PromotionReadiness: rev.PromotionReadiness,
		OverallComments:    rev.OverallComments,
		Status:             rev.Status,
		SubmittedAt:        formatTimePtr(rev.SubmittedAt),
		CreatedAt:          rev.CreatedAt.Format(time.RFC3339),
	}
	if rev.Manager != nil {
		resp.Manager = employee.ToSummary(rev.Manager)
	}
	return resp
}

func ToLeadReviewResponse(rev LeadReview) LeadReviewResponse {
	resp := LeadReviewResponse{
		ID:                  rev.ID.String(),
		LeadID:              rev.LeadID.String(),
		EmployeeID:          rev.EmployeeID.String(),
		AppraisalCycleID:    rev.AppraisalCycleID.String(),
		FinalRating:         rev.FinalRating,
		IncrementPercentage: rev.IncrementPercentage,
		PromotionDecision:   rev.PromotionDecision,
		Remarks:             rev.Remarks,
		Status:              rev.Status,
		SubmittedAt:         formatTimePtr(rev.SubmittedAt),
		CreatedAt:           rev.CreatedAt.Format(time.RFC3339),
	}
	if rev.Cycle != nil {
		mapped := cycle.ToResponse(*rev.Cycle)
		resp.AppraisalCycle = &mapped
	}
	return resp
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
