package models

import "time"

// Roles known to the system. Role is a plain two-variant enum consulted
// by the authorization middleware, never a type hierarchy.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool {
	return s == RoleUser || s == RoleAdmin
}

type User struct {
	ID              int64     `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`    // don't expose hash
	Role            string    `json:"role"` // USER | ADMIN
	ProfileImageURL string    `json:"profile_image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
