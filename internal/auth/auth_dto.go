package auth

type SendOTPRequest struct {
	Email string `json:"email" binding:"required"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

type ManagerLoginRequest struct {
	ManagerID string `json:"managerId" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionUser is the identity payload echoed back on login and on
// manager-status. FirstName defaults to the local part of the email when no
// nicer name is known.
type SessionUser struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	IsManagerSession bool   `json:"isManagerSession,omitempty"`
}

type SendOTPResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

type LoginResponse struct {
	Message string      `json:"message"`
	User    SessionUser `json:"user"`
}

type ManagerStatusResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *SessionUser `json:"user,omitempty"`
}

type AdminLoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type AdminCheckResponse struct {
	IsAdmin bool `json:"isAdmin"`
}
