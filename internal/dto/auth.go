package dto

// ── Auth module DTOs ──

// RegisterRequest creates a new user account.
type RegisterRequest struct {
	Username    string  `json:"username"     binding:"required,min=3,max=100"`
	Password    string  `json:"password"     binding:"required,min=6,max=72"`
	FullName    string  `json:"full_name"    binding:"required,max=100"`
	Role        string  `json:"role"         binding:"required,oneof=admin officer"`
	BadgeNumber *string `json:"badge_number" binding:"omitempty,max=50"`
}

// LoginRequest authenticates by username and password.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
