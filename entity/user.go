package entity

import (
	"time"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account in the system
type User struct {
	ID           int        `db:"id" json:"id"`
	Email        string     `db:"email" json:"email" validate:"required,email"`
	Name         string     `db:"name" json:"name"`
	Role         string     `db:"role" json:"role"`
	IsPremium    bool       `db:"is_premium" json:"is_premium"`
	RegisteredAt time.Time  `db:"registered_at" json:"registered_at"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"last_login_at"`
	IsActive     bool       `db:"is_active" json:"is_active"`
}

// TableName returns the table name for the User entity
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserResponse represents the user response
type UserResponse struct {
	ID           int        `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	IsPremium    bool       `json:"is_premium"`
	RegisteredAt time.Time  `json:"registered_at"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	IsActive     bool       `json:"is_active"`
}

// UsersListResponse represents the paginated list of users
type UsersListResponse struct {
	Users      []UserResponse `json:"users"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// IsAdminResponse answers the admin-role probe
type IsAdminResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// LogoutRequest represents the logout request structure
type LogoutRequest struct {
	LogoutAll bool `json:"logout_all,omitempty"`
}

// LogoutResponse represents the logout response structure
type LogoutResponse struct {
	Message       string `json:"message"`
	TokensRevoked int    `json:"tokens_revoked,omitempty"`
}
