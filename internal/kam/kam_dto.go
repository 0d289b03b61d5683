package kam

type UpsertKamRequest struct {
	ProjectContributions    string `json:"projectContributions"`
	RoleAndResponsibilities string `json:"roleAndResponsibilities"`
	KeyAchievements         string `json:"keyAchievements"`
	Learnings               string `json:"learnings"`
	Certifications          string `json:"certifications"`
	TechnologiesWorkedOn    string `json:"technologiesWorkedOn"`
	Mentorship              string `json:"mentorship"`
	VolunteeringActivities  string `json:"volunteeringActivities"`
	LeadershipRoles         string `json:"leadershipRoles"`
	TeamBuildingActivities  string `json:"teamBuildingActivities"`
	ProblemsSolved          string `json:"problemsSolved"`
	Strengths               string `json:"strengths"`
	ExtraEfforts            string `json:"extraEfforts"`
	Improvements            string `json:"improvements"`
}

type KamResponse struct {
	ID                      string `json:"id"`
	EmployeeID              string `json:"employeeId"`
	AppraisalCycleID        string `json:"appraisalCycleId"`
	ProjectContributions    string `json:"projectContributions,omitempty"`
	RoleAndResponsibilities string `json:"roleAndResponsibilities,omitempty"`
	KeyAchievements         string `json:"keyAchievements,omitempty"`
	Learnings               string `json:"learnings,omitempty"`
	Certifications          string `json:"certifications,omitempty"`
	TechnologiesWorkedOn    string `json:"technologiesWorkedOn,omitempty"`
	Mentorship              string `json:"mentorship,omitempty"`
	VolunteeringActivities  string `json:"volunteeringActivities,omitempty"`
	LeadershipRoles         string `json:"leadershipRoles,omitempty"`
	TeamBuildingActivities  string `json:"teamBuildingActivities,omitempty"`
	ProblemsSolved          string `json:"problemsSolved,omitempty"`
	Strengths               string `json:"strengths,omitempty"`
	ExtraEfforts            string `json:"extraEfforts,omitempty"`
	Improvements            string `json:"improvements,omitempty"`
	CreatedAt               string `json:"createdAt"`
	UpdatedAt               string `json:"updatedAt"`
}
