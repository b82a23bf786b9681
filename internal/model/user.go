package model

// User statuses derived from the provider confirmation state.
const (
	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
)

// User is the directory view of an identity-provider account, in the shape
// the portal frontend consumes. It is never persisted directly; the provider
// account is the source of truth.
type User struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	UserType  string `json:"user_type"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// SessionUser is the login response payload: profile plus session token.
type SessionUser struct {
	ID       string `json:"id"`
	UserType string `json:"userType"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}
