package dto

import "github.com/spec-kit/prephub-api/internal/domain"

// RegisterRequest payload for new users.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// RegisterResponse mirrors the original backend's envelope.
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and a public user summary.
type LoginResponse struct {
	Success bool               `json:"success"`
	Token   string             `json:"token"`
	User    domain.UserSummary `json:"user"`
}
