package review

import (
	"github.com/sahil00000001/Employee-Appraisal-System/internal/cycle"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/employee"
	"github.com/sahil00000001/Employee-Appraisal-System/internal/feedback"
)

type SubmitManagerReviewRequest struct {
	EmployeeID         string  `json:"employeeId" binding:"required,uuid"`
	PerformanceRating  int     `json:"performanceRating" binding:"required,min=1,max=5"`
	GoalsAchieved      string  `json:"goalsAchieved" binding:"required"`
	AreasOfGrowth      string  `json:"areasOfGrowth" binding:"required"`
	TrainingNeeds      *string `json:"trainingNeeds"`
	PromotionReadiness string  `json:"promotionReadiness" binding:"required"`
	OverallComments    string  `json:"overallComments" binding:"required"`
	Status             string  `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
}

type SubmitLeadReviewRequest struct {
	EmployeeID          string  `json:"employeeId" binding:"required,uuid"`
	FinalRating         int     `json:"finalRating" binding:"required,min=1,max=5"`
	IncrementPercentage *string `json:"incrementPercentage"`
	PromotionDecision   string  `json:"promotionDecision" binding:"required"`
	Remarks             string  `json:"remarks" binding:"required"`
	Status              string  `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
}

type ManagerReviewResponse struct {
	ID                 string                    `json:"id"`
	ManagerID          string                    `json:"managerId"`
	EmployeeID         string                    `json:"employeeId"`
	AppraisalCycleID   string                    `json:"appraisalCycleId"`
	PerformanceRating  int                       `json:"performanceRating"`
	GoalsAchieved      string                    `json:"goalsAchieved"`
	AreasOfGrowth      string                    `json:"areasOfGrowth"`
	TrainingNeeds      *string                   `json:"trainingNeeds,omitempty"`
	PromotionReadiness string                    `json:"promotionReadiness"`
	OverallComments    string                    `json:"overallComments"`
	Status             string                    `json:"status"`
	SubmittedAt        *string                   `json:"submittedAt,omitempty"`
	CreatedAt          string                    `json:"createdAt"`
	Manager            *employee.EmployeeSummary `json:"manager,omitempty"`
}

type LeadReviewResponse struct {
	ID                  string               `json:"id"`
	LeadID              string               `json:"leadId"`
	EmployeeID          string               `json:"employeeId"`
	AppraisalCycleID    string               `json:"appraisalCycleId"`
	FinalRating         int                  `json:"finalRating"`
	IncrementPercentage *string              `json:"incrementPercentage,omitempty"`
	PromotionDecision   string               `json:"promotionDecision"`
	Remarks             string               `json:"remarks"`
	Status              string               `json:"status"`
	SubmittedAt         *string              `json:"submittedAt,omitempty"`
	CreatedAt           string               `json:"createdAt"`
	AppraisalCycle      *cycle.CycleResponse `json:"appraisalCycle,omitempty"`
}

type TeamMemberResponse struct {
	Employee        employee.EmployeeResponse `json:"employee"`
	Review          *ManagerReviewResponse    `json:"review,omitempty"`
	HasPeerFeedback bool                      `json:"hasPeerFeedback"`
}

type AppraisalBundle struct {
	Employee      employee.EmployeeResponse   `json:"employee"`
	ManagerReview *ManagerReviewResponse      `json:"managerReview,omitempty"`
	PeerFeedback  []feedback.FeedbackResponse `json:"peerFeedback"`
	LeadReview    *LeadReviewResponse         `json:"leadReview,omitempty"`
}

type MyRatingsResponse struct {
	Reviews       []LeadReviewResponse `json:"reviews"`
	AverageRating *float64             `json:"averageRating"`
}
