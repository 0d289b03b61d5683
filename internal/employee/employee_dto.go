package employee

type CreateEmployeeRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Role         string `json:"role" binding:"required,oneof=employee manager lead"`
	Designation  string `json:"designation" binding:"required"`
	Department   string `json:"department" binding:"required"`
	ProjectName  string `json:"projectName"`
	ManagerID    string `json:"managerId" binding:"omitempty,uuid"`
	LeadID       string `json:"leadId" binding:"omitempty,uuid"`
	ProfileImage string `json:"profileImage"`
}

type EmployeeSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Designation string `json:"designation"`
}

type EmployeeResponse struct {
	ID           string           `json:"id"`
	UserID       string           `json:"userId,omitempty"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Role         string           `json:"role"`
	Designation  string           `json:"designation"`
	Department   string           `json:"department"`
	ProjectName  string           `json:"projectName,omitempty"`
	ManagerID    string           `json:"managerId,omitempty"`
	LeadID       string           `json:"leadId,omitempty"`
	ProfileImage string           `json:"profileImage,omitempty"`
	CreatedAt    string           `json:"createdAt"`
	Manager      *EmployeeSummary `json:"manager,omitempty"`
	Lead         *EmployeeSummary `json:"lead,omitempty"`
}
