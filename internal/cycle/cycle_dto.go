package cycle

type CreateCycleRequest struct {
	Name      string `json:"name" binding:"required"`
	Year      int    `json:"year" binding:"required,gte=2000,lte=2100"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	IsActive  bool   `json:"isActive"`
}

type UpdateCycleRequest struct {
	Name      *string `json:"name"`
	Year      *int    `json:"year"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	IsActive  *bool   `json:"isActive"`
}

type CycleResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Year      int    `json:"year"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
}
