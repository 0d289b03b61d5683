package report

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/cycle"
	cycleerrors "github.com/sahil00000001/Employee-Appraisal-System/internal/cycle/errors"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/employee"
	employeeerrors "github.com/sahil00000001/Employee-Appraisal-System/internal/employee/errors"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/feedback"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/kam"
	reporterrors "github.com/sahil00000001/Employee-Appraisal-System/internal/report/errors"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/review"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	orgStatsCacheKey = "reports:org-stats"
	orgStatsCacheTTL = 1 * time.Minute
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Dashboard(ctx context.Context, userID string) (DashboardResponse, error)
	OrgStats(ctx context.Context, userID string) (OrgStatsResponse, error)
	FeedbackActivity(ctx context.Context) (FeedbackActivityResponse, error)
	EmployeeReport(ctx context.Context, employeeID string) (EmployeeReportResponse, error)
}

type service struct {
	repo      Repository
	employees employee.Repository
	cycles    cycle.Repository
	feedbacks feedback.Repository
	reviews   review.Repository
	kams      kam.Repository
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	employees employee.Repository,
	cycles cycle.Repository,
	feedbacks feedback.Repository,
	reviews review.Repository,
	kams kam.Repository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		repo:      repo,
		employees: employees,
		cycles:    cycles,
		feedbacks: feedbacks,
		reviews:   reviews,
		kams:      kams,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) Dashboard(ctx context.Context, userID string) (DashboardResponse, error) {
	activeCycle, err := s.activeCycleOrNil(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}

	resp := DashboardResponse{
		ActiveCycle:            activeCycle,
		RecentFeedbackRequests: []feedback.RequestResponse{},
	}

	empl, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		// An authenticated user without an employee row still gets an
		// empty dashboard, not an error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resp, nil
		}
		return DashboardResponse{}, err
	}

	mapped := employee.ToResponse(*empl)
	resp.Employee = &mapped

	pending, err := s.feedbacks.CountRequestsByReviewerAndStatus(ctx, empl.ID.String(), feedback.RequestStatusPending)
	if err != nil {
		return DashboardResponse{}, err
	}
	completed, err := s.feedbacks.CountRequestsByReviewerAndStatus(ctx, empl.ID.String(), feedback.RequestStatusSubmitted)
	if err != nil {
		return DashboardResponse{}, err
	}
	resp.PendingFeedbackCount = pending
	resp.CompletedFeedbackCount = completed

	latest, err := s.reviews.FindLatestCompletedLeadReview(ctx, empl.ID.String())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return DashboardResponse{}, err
	}
	if err == nil {
		rating := latest.FinalRating
		resp.MyLatestRating = &rating
	}

	requests, err := s.feedbacks.FindRequestsByReviewer(ctx, empl.ID.String())
	if err != nil {
		return DashboardResponse{}, err
	}
	for _, req := range requests {
		if req.Status != feedback.RequestStatusPending {
			continue
		}
		resp.RecentFeedbackRequests = append(resp.RecentFeedbackRequests, feedback.ToRequestResponse(req))
		if len(resp.RecentFeedbackRequests) == 5 {
			break
		}
	}

	return resp, nil
}

func (s *service) OrgStats(ctx context.Context, userID string) (OrgStatsResponse, error) {
	empl, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrgStatsResponse{}, reporterrors.ErrNotAuthorized
		}
		return OrgStatsResponse{}, err
	}
	if empl.Role != employee.RoleLead {
		return OrgStatsResponse{}, reporterrors.ErrNotAuthorized
	}

	activeCycle, err := s.activeCycleOrNil(ctx)
	if err != nil {
		return OrgStatsResponse{}, err
	}

	stats, err := s.cachedStats(ctx)
	if err != nil {
		return OrgStatsResponse{}, err
	}

	stats.ActiveCycle = activeCycle
	return stats, nil
}

// cachedStats serves the heavy aggregate from redis; concurrent misses
// collapse into a single computation via singleflight.
func (s *service) cachedStats(ctx context.Context) (OrgStatsResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, orgStatsCacheKey).Result(); err == nil {
			var stats OrgStatsResponse
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return stats, nil
			}
		}
	}

	v, err, _ := s.sf.Do(orgStatsCacheKey, func() (interface{}, error) {
		stats, err := s.computeStats(ctx)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if data, err := json.Marshal(stats); err == nil {
				s.rdb.Set(ctx, orgStatsCacheKey, data, orgStatsCacheTTL)
			}
		}

		return stats, nil
	})
	if err != nil {
		return OrgStatsResponse{}, err
	}

	return v.(OrgStatsResponse), nil
}

func (s *service) computeStats(ctx context.Context) (OrgStatsResponse, error) {
	var stats OrgStatsResponse
	var err error

	if stats.TotalEmployees, err = s.repo.CountEmployees(ctx); err != nil {
		return stats, err
	}
	if stats.CompletedFeedback, err = s.repo.CountRequestsByStatus(ctx, feedback.RequestStatusSubmitted); err != nil {
		return stats, err
	}
	if stats.PendingFeedback, err = s.repo.CountRequestsByStatus(ctx, feedback.RequestStatusPending); err != nil {
		return stats, err
	}
	if stats.CompletedManagerReviews, err = s.repo.CountManagerReviews(ctx, true); err != nil {
		return stats, err
	}
	if stats.PendingManagerReviews, err = s.repo.CountManagerReviews(ctx, false); err != nil {
		return stats, err
	}
	if stats.CompletedLeadReviews, err = s.repo.CountLeadReviews(ctx, true); err != nil {
		return stats, err
	}
	if stats.PendingLeadReviews, err = s.repo.CountLeadReviews(ctx, false); err != nil {
		return stats, err
	}

	ratings, err := s.repo.CompletedLeadReviewRatings(ctx)
	if err != nil {
		return stats, err
	}

	buckets := map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	if len(ratings) > 0 {
		var sum float64
		for _, r := range ratings {
			sum += float64(r)
			if _, ok := buckets[r]; ok {
				buckets[r]++
			}
		}
		avg := sum / float64(len(ratings))
		stats.AverageRating = &avg
	}

	stats.RatingDistribution = make([]RatingBucket, 0, 5)
	for rating := 1; rating <= 5; rating++ {
		stats.RatingDistribution = append(stats.RatingDistribution, RatingBucket{
			Rating: rating,
			Count:  buckets[rating],
		})
	}

	return stats, nil
}

func (s *service) FeedbackActivity(ctx context.Context) (FeedbackActivityResponse, error) {
	activeCycle, err := s.activeCycleOrNil(ctx)
	if err != nil {
		return FeedbackActivityResponse{}, err
	}
	if activeCycle == nil {
		return FeedbackActivityResponse{Employees: []EmployeeActivity{}}, nil
	}

	empls, err := s.employees.FindAll(ctx)
	if err != nil {
		return FeedbackActivityResponse{}, err
	}
	requests, err := s.feedbacks.FindRequestsByCycle(ctx, activeCycle.ID)
	if err != nil {
		return FeedbackActivityResponse{}, err
	}
	feedbacks, err := s.feedbacks.FindFeedbackByCycle(ctx, activeCycle.ID)
	if err != nil {
		return FeedbackActivityResponse{}, err
	}

	employeeByID := make(map[uuid.UUID]*employee.Employee, len(empls))
	for i := range empls {
		employeeByID[empls[i].ID] = &empls[i]
	}
	feedbackByRequest := make(map[uuid.UUID]*feedback.PeerFeedback, len(feedbacks))
	for i := range feedbacks {
		feedbackByRequest[feedbacks[i].FeedbackRequestID] = &feedbacks[i]
	}
	requestsByTarget := make(map[uuid.UUID][]feedback.FeedbackRequest)
	for _, req := range requests {
		requestsByTarget[req.TargetEmployeeID] = append(requestsByTarget[req.TargetEmployeeID], req)
	}

	activity := make([]EmployeeActivity, 0, len(empls))
	for _, empl := range empls {
		targetRequests := requestsByTarget[empl.ID]
		// Employees with no requests in the cycle are absent from the
		// view, not shown as zero progress.
		if len(targetRequests) == 0 {
			continue
		}

		item := EmployeeActivity{
			Employee:         employee.ToResponse(empl),
			TotalAssigned:    len(targetRequests),
			FeedbackRequests: make([]ActivityRequest, 0, len(targetRequests)),
		}
		if empl.ManagerID != nil {
			if mgr, ok := employeeByID[*empl.ManagerID]; ok {
				item.Manager = employee.ToSummary(mgr)
			}
		}

		var latest *time.Time
		for _, req := range targetRequests {
			entry := ActivityRequest{
				ID:        req.ID.String(),
				Status:    req.Status,
				CreatedAt: req.CreatedAt.Format(time.RFC3339),
			}
			if reviewer, ok := employeeByID[req.ReviewerEmployeeID]; ok {
				entry.Reviewer = employee.ToSummary(reviewer)
			}
			if fb, ok := feedbackByRequest[req.ID]; ok {
				entry.Submitted = true
				submittedAt := fb.SubmittedAt.Format(time.RFC3339)
				entry.SubmittedAt = &submittedAt
				item.TotalCompleted++
				if latest == nil || fb.SubmittedAt.After(*latest) {
					t := fb.SubmittedAt
					latest = &t
				}
			}
			item.FeedbackRequests = append(item.FeedbackRequests, entry)
		}

		if latest != nil {
			formatted := latest.Format(time.RFC3339)
			item.LatestFeedbackAt = &formatted
		}

		activity = append(activity, item)
	}

	// Most recent activity first; employees with no submissions yet sort
	// after, ordered by completed count descending.
	sort.SliceStable(activity, func(i, j int) bool {
		a, b := activity[i], activity[j]
		switch {
		case a.LatestFeedbackAt != nil && b.LatestFeedbackAt != nil:
			return *a.LatestFeedbackAt > *b.LatestFeedbackAt
		case a.LatestFeedbackAt != nil:
			return true
		case b.LatestFeedbackAt != nil:
			return false
		default:
			return a.TotalCompleted > b.TotalCompleted
		}
	})

	return FeedbackActivityResponse{Employees: activity, Cycle: activeCycle}, nil
}

func (s *service) EmployeeReport(ctx context.Context, employeeID string) (EmployeeReportResponse, error) {
	empl, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeReportResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeReportResponse{}, err
	}

	resp := EmployeeReportResponse{
		Employee:     employee.ToResponse(*empl),
		PeerFeedback: []feedback.FeedbackResponse{},
	}

	if empl.ManagerID != nil {
		if mgr, err := s.employees.FindByID(ctx, empl.ManagerID.String()); err == nil {
			resp.Manager = employee.ToSummary(mgr)
		}
	}
	if empl.LeadID != nil {
		if lead, err := s.employees.FindByID(ctx, empl.LeadID.String()); err == nil {
			resp.Lead = employee.ToSummary(lead)
		}
	}

	activeCycle, err := s.activeCycleOrNil(ctx)
	if err != nil {
		return EmployeeReportResponse{}, err
	}
	resp.ActiveCycle = activeCycle
	if activeCycle == nil {
		return resp, nil
	}

	fbs, err := s.feedbacks.FindFeedbackByTarget(ctx, employeeID, activeCycle.ID)
	if err != nil {
		return EmployeeReportResponse{}, err
	}
	for _, fb := range fbs {
		resp.PeerFeedback = append(resp.PeerFeedback, feedback.ToFeedbackResponse(fb))
	}

	mgrRev, err := s.reviews.FindManagerReview(ctx, employeeID, activeCycle.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return EmployeeReportResponse{}, err
	}
	if err == nil {
		mapped := review.ToManagerReviewResponse(*mgrRev)
		resp.ManagerReview = &mapped
	}

	leadRev, err := s.reviews.FindLeadReview(ctx, employeeID, activeCycle.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return EmployeeReportResponse{}, err
	}
	if err == nil {
		mapped := review.ToLeadReviewResponse(*leadRev)
		resp.LeadReview = &mapped
	}

	kamData, err := s.kams.FindByEmployeeAndCycle(ctx, employeeID, activeCycle.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return EmployeeReportResponse{}, err
	}
	if err == nil {
		mapped := kam.ToResponse(*kamData)
		resp.KamData = &mapped
	}

	return resp, nil
}

func (s *service) activeCycleOrNil(ctx context.Context) (*cycle.CycleResponse, error) {
	c, err := cycle.ActiveCycle(ctx, s.cycles)
	if err != nil {
		if errors.Is(err, cycleerrors.ErrNoActiveCycle) {
			return nil, nil
		}
		return nil, err
	}
	mapped := cycle.ToResponse(*c)
	return &mapped, nil
}
