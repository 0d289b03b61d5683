package report

import (
	"github.com/sahil00000001/Employee-Appraisal-System/internal/cycle"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/employee"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/feedback"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/kam"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/review"
)

type DashboardResponse struct {
	Employee               *employee.EmployeeResponse `json:"employee"`
	PendingFeedbackCount   int64                      `json:"pendingFeedbackCount"`
	CompletedFeedbackCount int64                      `json:"completedFeedbackCount"`
	MyLatestRating         *int                       `json:"myLatestRating"`
	ActiveCycle            *cycle.CycleResponse       `json:"activeCycle"`
	RecentFeedbackRequests []feedback.RequestResponse `json:"recentFeedbackRequests"`
}

type RatingBucket struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

// OrgStatsResponse intentionally counts across ALL cycles while the
// attached activeCycle is only informational. Downstream consumers rely
// on the historical totals.
type OrgStatsResponse struct {
	ActiveCycle             *cycle.CycleResponse `json:"activeCycle"`
	TotalEmployees          int64                `json:"totalEmployees"`
	CompletedFeedback       int64                `json:"completedFeedback"`
	PendingFeedback         int64                `json:"pendingFeedback"`
	CompletedManagerReviews int64                `json:"completedManagerReviews"`
	PendingManagerReviews   int64                `json:"pendingManagerReviews"`
	CompletedLeadReviews    int64                `json:"completedLeadReviews"`
	PendingLeadReviews      int64                `json:"pendingLeadReviews"`
	AverageRating           *float64             `json:"averageRating"`
	RatingDistribution      []RatingBucket       `json:"ratingDistribution"`
}

type ActivityRequest struct {
	ID          string                    `json:"id"`
	Status      string                    `json:"status"`
	Reviewer    *employee.EmployeeSummary `json:"reviewer,omitempty"`
	Submitted   bool                      `json:"submitted"`
	SubmittedAt *string                   `json:"submittedAt"`
	CreatedAt   string                    `json:"createdAt"`
}

type EmployeeActivity struct {
	Employee         employee.EmployeeResponse `json:"employee"`
	Manager          *employee.EmployeeSummary `json:"manager"`
	TotalAssigned    int                       `json:"totalAssigned"`
	TotalCompleted   int                       `json:"totalCompleted"`
	LatestFeedbackAt *string                   `json:"latestFeedbackAt"`
	FeedbackRequests []ActivityRequest         `json:"feedbackRequests"`
}

type FeedbackActivityResponse struct {
	Employees []EmployeeActivity   `json:"employees"`
	Cycle     *cycle.CycleResponse `json:"cycle"`
}

type EmployeeReportResponse struct {
	Employee      employee.EmployeeResponse     `json:"employee"`
	Manager       *employee.EmployeeSummary     `json:"manager"`
	Lead          *employee.EmployeeSummary     `json:"lead"`
	PeerFeedback  []feedback.FeedbackResponse   `json:"peerFeedback"`
	ManagerReview *review.ManagerReviewResponse `json:"managerReview"`
	LeadReview    *review.LeadReviewResponse    `json:"leadReview"`
	KamData       *kam.KamResponse              `json:"kamData"`
	ActiveCycle   *cycle.CycleResponse          `json:"activeCycle"`
}
