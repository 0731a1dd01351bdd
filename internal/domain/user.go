package domain

import "time"

// DefaultRole is assigned when registration omits a role. Roles are an open
// string set; nothing in this service enforces an enumeration.
const DefaultRole = "student"

// User is the domain model for registered accounts.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	Role         string
	CreatedAt    time.Time
}

// UserSummary is the public projection of a User returned by auth endpoints.
// The password hash never leaves the service layer.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Summary strips everything a client is not allowed to see.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}
