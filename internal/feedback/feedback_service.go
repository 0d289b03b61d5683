package feedback

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/cycle"
	cycleerrors "github.com/sahil00000001/Employee-Appraisal-System/internal/cycle/errors"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/employee"
	employeeerrors "github.com/sahil00000001/Employee-Appraisal-System/internal/employee/errors"
	feedbackerrors "github.com/sahil00000001/Employee-Appraisal-System/internal/feedback/errors"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/notify"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=feedback_service.go -destination=mock/feedback_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, userID string, req SubmitFeedbackRequest) (FeedbackResponse, error)
	MyTasks(ctx context.Context, userID string) ([]RequestResponse, error)
	Assign(ctx context.Context, req AssignFeedbackRequest) (AssignmentResult, error)
	Assignments(ctx context.Context) ([]RequestResponse, error)
	CreateRequest(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	cycles    cycle.Repository
	mailer    notify.Mailer
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	cycles cycle.Repository,
	mailer notify.Mailer,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("feedback.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("feedback.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		cycles:    cycles,
		mailer:    mailer,
		logger:    l,
	}
}

func (s *service) Submit(ctx context.Context, userID string, req SubmitFeedbackRequest) (FeedbackResponse, error) {
	s.logger.Debug("submit feedback requested",
		zap.String("user_id", userID),
		zap.String("feedback_request_id", req.FeedbackRequestID),
	)

	reviewer, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FeedbackResponse{}, employeeerrors.ErrNotLinkedToUser
		}
		return FeedbackResponse{}, err
	}

	activeCycle, err := cycle.ActiveCycle(ctx, s.cycles)
	if err != nil {
		return FeedbackResponse{}, err
	}

	request, err := s.repo.FindRequestByID(ctx, req.FeedbackRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FeedbackResponse{}, feedbackerrors.ErrRequestNotFound
		}
		return FeedbackResponse{}, err
	}

	if request.ReviewerEmployeeID != reviewer.ID {
		s.logger.Warn("submit feedback by wrong reviewer",
			zap.String("request_id", request.ID.String()),
			zap.String("reviewer_id", reviewer.ID.String()),
		)
		return FeedbackResponse{}, feedbackerrors.ErrNotAuthorizedReviewer
	}
	if request.AppraisalCycleID != activeCycle.ID {
		return FeedbackResponse{}, feedbackerrors.ErrWrongCycle
	}
	if request.Status == RequestStatusSubmitted {
		return FeedbackResponse{}, feedbackerrors.ErrAlreadySubmitted
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit feedback begin tx failed", zap.Error(err))
		return FeedbackResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	fb := &PeerFeedback{
		ID:                 uuid.New(),
		FeedbackRequestID:  request.ID,
		ReviewerID:         reviewer.ID,
		TargetEmployeeID:   request.TargetEmployeeID,
		AppraisalCycleID:   activeCycle.ID,
		TechnicalSkills:    req.TechnicalSkills,
		Communication:      req.Communication,
		Teamwork:           req.Teamwork,
		ProblemSolving:     req.ProblemSolving,
		Leadership:         req.Leadership,
		Strengths:          req.Strengths,
		AreasOfImprovement: req.AreasOfImprovement,
		AdditionalComments: req.AdditionalComments,
		SubmittedAt:        time.Now().UTC(),
	}

	if err := qtx.CreateFeedback(ctx, fb); err != nil {
		s.logger.Error("submit feedback persist failed", zap.Error(err))
		return FeedbackResponse{}, err
	}

	if err := qtx.MarkRequestSubmitted(ctx, request.ID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FeedbackResponse{}, feedbackerrors.ErrAlreadySubmitted
		}
		s.logger.Error("submit feedback mark request failed", zap.Error(err))
		return FeedbackResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit feedback commit failed", zap.Error(err))
		return FeedbackResponse{}, err
	}

	s.logger.Info("submit feedback success",
		zap.String("feedback_id", fb.ID.String()),
		zap.String("request_id", request.ID.String()),
	)

	return ToFeedbackResponse(*fb), nil
}

func (s *service) MyTasks(ctx context.Context, userID string) ([]RequestResponse, error) {
	reviewer, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []RequestResponse{}, nil
		}
		return nil, err
	}

	reqs, err := s.repo.FindRequestsByReviewer(ctx, reviewer.ID.String())
	if err != nil {
		s.logger.Error("my tasks lookup failed", zap.Error(err))
		return nil, err
	}

	return mapRequestsToResponse(reqs), nil
}

func (s *service) Assign(ctx context.Context, req AssignFeedbackRequest) (AssignmentResult, error) {
	s.logger.Debug("assign feedback requested",
		zap.String("target_employee_id", req.TargetEmployeeID),
		zap.Int("reviewer_count", len(req.ReviewerEmployeeIDs)),
	)

	activeCycle, err := cycle.ActiveCycle(ctx, s.cycles)
	if err != nil {
		return AssignmentResult{}, err
	}

	target, err := s.employees.FindByID(ctx, req.TargetEmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AssignmentResult{}, feedbackerrors.ErrTargetNotFound
		}
		return AssignmentResult{}, err
	}

	result := AssignmentResult{
		Requests:     []RequestResponse{},
		EmailResults: []EmailResult{},
	}

	for _, reviewerID := range req.ReviewerEmployeeIDs {
		// Self-review is silently skipped, not an error.
		if reviewerID == req.TargetEmployeeID {
			continue
		}

		reviewer, err := s.employees.FindByID(ctx, reviewerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Warn("assign feedback skipping unknown reviewer", zap.String("reviewer_id", reviewerID))
				continue
			}
			return AssignmentResult{}, err
		}

		request := &FeedbackRequest{
			ID:                 uuid.New(),
			TargetEmployeeID:   target.ID,
			ReviewerEmployeeID: reviewer.ID,
			AppraisalCycleID:   activeCycle.ID,
			Status:             RequestStatusPending,
		}
		if err := s.repo.CreateRequest(ctx, request); err != nil {
			s.logger.Error("assign feedback persist failed",
				zap.String("reviewer_id", reviewerID),
				zap.Error(err),
			)
			return AssignmentResult{}, err
		}
		result.Requests = append(result.Requests, ToRequestResponse(*request))

		// A failed mail never fails the assignment, only the flag.
		emailSent := true
		if err := s.mailer.SendFeedbackAssignment(ctx, reviewer.Email, reviewer.Name, target.Name); err != nil {
			emailSent = false
		}
		result.EmailResults = append(result.EmailResults, EmailResult{
			Reviewer:  reviewer.Name,
			EmailSent: emailSent,
		})
	}

	result.Message = fmt.Sprintf("Feedback assigned successfully to %d reviewer(s)", len(result.Requests))

	s.logger.Info("assign feedback success",
		zap.String("target_employee_id", req.TargetEmployeeID),
		zap.Int("created", len(result.Requests)),
	)

	return result, nil
}

func (s *service) Assignments(ctx context.Context) ([]RequestResponse, error) {
	activeCycle, err := cycle.ActiveCycle(ctx, s.cycles)
	if err != nil {
		if errors.Is(err, cycleerrors.ErrNoActiveCycle) {
			return []RequestResponse{}, nil
		}
		return nil, err
	}

	reqs, err := s.repo.FindRequestsByCycle(ctx, activeCycle.ID.String())
	if err != nil {
		s.logger.Error("assignments lookup failed", zap.Error(err))
		return nil, err
	}

	return mapRequestsToResponse(reqs), nil
}

func (s *service) CreateRequest(ctx context.Context, req CreateRequestRequest) (RequestResponse, error) {
	activeCycle, err := cycle.ActiveCycle(ctx, s.cycles)
	if err != nil {
		return RequestResponse{}, err
	}

	target, err := s.employees.FindByID(ctx, req.TargetEmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, feedbackerrors.ErrTargetNotFound
		}
		return RequestResponse{}, err
	}

	reviewer, err := s.employees.FindByID(ctx, req.ReviewerEmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return RequestResponse{}, err
	}

	request := &FeedbackRequest{
		ID:                 uuid.New(),
		TargetEmployeeID:   target.ID,
		ReviewerEmployeeID: reviewer.ID,
		AppraisalCycleID:   activeCycle.ID,
		Status:             RequestStatusPending,
	}
	if err := s.repo.CreateRequest(ctx, request); err != nil {
		s.logger.Error("create feedback request failed", zap.Error(err))
		return RequestResponse{}, err
	}

	s.logger.Info("create feedback request success", zap.String("request_id", request.ID.String()))

	return ToRequestResponse(*request), nil
}

func ToRequestResponse(req FeedbackRequest) RequestResponse {
	resp := RequestResponse{
		ID:               req.ID.String(),
		TargetEmployeeID: req.TargetEmployeeID.String(),
		ReviewerID:       req.ReviewerEmployeeID.String(),
		AppraisalCycleID: req.AppraisalCycleID.String(),
		Status:           req.Status,
		CreatedAt:        req.CreatedAt.Format(time.RFC3339),
	}
	if req.Target != nil {
		resp.TargetEmployee = employee.ToSummary(req.Target)
	}
	if req.Reviewer != nil {
		resp.ReviewerEmployee = employee.ToSummary(req.Reviewer)
	}
	return resp
}

func mapRequestsToResponse(reqs []FeedbackRequest) []RequestResponse {
	res := make([]RequestResponse, len(reqs))
	for i, r := range reqs {
		res[i] = ToRequestResponse(r)
	}
	return res
}

func ToFeedbackResponse(fb PeerFeedback) FeedbackResponse {
	return FeedbackResponse{
		ID:                 fb.ID.String(),
		FeedbackRequestID:  fb.FeedbackRequestID.String(),
		ReviewerID:         fb.ReviewerID.String(),
		TargetEmployeeID:   fb.TargetEmployeeID.String(),
		AppraisalCycleID:   fb.AppraisalCycleID.String(),
		TechnicalSkills:    fb.TechnicalSkills,
		Communication:      fb.Communication,
		Teamwork:           fb.Teamwork,
		ProblemSolving:     fb.ProblemSolving,
		Leadership:         fb.Leadership,
		Strengths:          fb.Strengths,
		AreasOfImprovement: fb.AreasOfImprovement,
		AdditionalComments: fb.AdditionalComments,
		AverageRating:      SubmissionAverage(fb),
		SubmittedAt:        fb.SubmittedAt.Format(time.RFC3339),
	}
}

