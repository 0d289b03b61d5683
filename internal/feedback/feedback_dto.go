package feedback

import "github.com/sahil00000001/Employee-Appraisal-System/internal/employee"

type SubmitFeedbackRequest struct {
	FeedbackRequestID  string  `json:"feedbackRequestId" binding:"required,uuid"`
	TechnicalSkills    int     `json:"technicalSkills" binding:"required,min=1,max=5"`
	Communication      int     `json:"communication" binding:"required,min=1,max=5"`
	Teamwork           int     `json:"teamwork" binding:"required,min=1,max=5"`
	ProblemSolving     int     `json:"problemSolving" binding:"required,min=1,max=5"`
	Leadership         int     `json:"leadership" binding:"required,min=1,max=5"`
	Strengths          string  `json:"strengths" binding:"required,min=10"`
	AreasOfImprovement string  `json:"areasOfImprovement" binding:"required,min=10"`
	AdditionalComments *string `json:"additionalComments"`
}

type AssignFeedbackRequest struct {
	TargetEmployeeID    string   `json:"targetEmployeeId" binding:"required,uuid"`
	ReviewerEmployeeIDs []string `json:"reviewerEmployeeIds" binding:"required,min=1,dive,uuid"`
}

// CreateRequestRequest is the single-assignment admin variant; the cycle is
// always the active one.
type CreateRequestRequest struct {
	TargetEmployeeID   string `json:"targetEmployeeId" binding:"required,uuid"`
	ReviewerEmployeeID string `json:"reviewerEmployeeId" binding:"required,uuid"`
}

type RequestResponse struct {
	ID               string                    `json:"id"`
	TargetEmployeeID string                    `json:"targetEmployeeId"`
	ReviewerID       string                    `json:"reviewerEmployeeId"`
	AppraisalCycleID string                    `json:"appraisalCycleId"`
	Status           string                    `json:"status"`
	CreatedAt        string                    `json:"createdAt"`
	TargetEmployee   *employee.EmployeeSummary `json:"targetEmployee,omitempty"`
	ReviewerEmployee *employee.EmployeeSummary `json:"reviewerEmployee,omitempty"`
}

type FeedbackResponse struct {
	ID                 string  `json:"id"`
	FeedbackRequestID  string  `json:"feedbackRequestId"`
	ReviewerID         string  `json:"reviewerId"`
	TargetEmployeeID   string  `json:"targetEmployeeId"`
	AppraisalCycleID   string  `json:"appraisalCycleId"`
	TechnicalSkills    int     `json:"technicalSkills"`
	Communication      int     `json:"communication"`
	Teamwork           int     `json:"teamwork"`
	ProblemSolving     int     `json:"problemSolving"`
	Leadership         int     `json:"leadership"`
	Strengths          string  `json:"strengths"`
	AreasOfImprovement string  `json:"areasOfImprovement"`
	AdditionalComments *string `json:"additionalComments,omitempty"`
	AverageRating      float64 `json:"averageRating"`
	SubmittedAt        string  `json:"submittedAt"`
}

type EmailResult struct {
	Reviewer  string `json:"reviewer"`
	EmailSent bool   `json:"emailSent"`
}

type AssignmentResult struct {
	Message      string            `json:"message"`
	Requests     []RequestResponse `json:"requests"`
	EmailResults []EmailResult     `json:"emailResults"`
}
