package models

import "time"

// MonthlyLimit is the spending ceiling for a user's current calendar
// month. At most one row exists per user; setting a new amount updates
// the row in place.
type MonthlyLimit struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
