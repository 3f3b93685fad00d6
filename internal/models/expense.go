package models

import "time"

// Expense is a single spending record owned by a user. Ownership is
// immutable once created.
type Expense struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	ExpenseDate time.Time `json:"expense_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExpenseSummary is derived per request, never persisted. MonthlyLimit
// is zero when no limit is set, and RemainingBudget may be negative.
type ExpenseSummary struct {
	TotalExpenses   float64 `json:"total_expenses"`
	MonthlyLimit    float64 `json:"monthly_limit"`
	RemainingBudget float64 `json:"remaining_budget"`
	LimitExceeded   bool    `json:"limit_exceeded"`
}
