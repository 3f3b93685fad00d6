package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/praneeth00007/backendd/internal/models"
)

type LimitSQLite struct {
	db *sql.DB
}

func NewLimitSQLite(db *sql.DB) *LimitSQLite {
	return &LimitSQLite{db: db}
}

var _ Limits = (*LimitSQLite)(nil)

const (
	selectLimitByUserSQL = `
		SELECT id, user_id, amount, created_at, updated_at
		FROM monthly_limits WHERE user_id = ?
	`
	selectLimitUserIDsSQL = `SELECT user_id FROM monthly_limits ORDER BY user_id ASC`
	insertLimitSQL        = `
		INSERT INTO monthly_limits (user_id, amount, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`
	updateLimitAmountSQL = `UPDATE monthly_limits SET amount = ?, updated_at = ? WHERE id = ?`
)

// GetByUser fetches the single limit row for a user. Returns (nil, nil)
// if the user has no limit set.
func (r *LimitSQLite) GetByUser(ctx context.Context, userID int64) (*models.MonthlyLimit, error) {
	var l models.MonthlyLimit
	err := r.db.QueryRowContext(ctx, selectLimitByUserSQL, userID).
		Scan(&l.ID, &l.UserID, &l.Amount, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select limit for user %d: %w", userID, err)
	}
	l.CreatedAt = l.CreatedAt.UTC()
	l.UpdatedAt = l.UpdatedAt.UTC()
	return &l, nil
}

// ListUserIDs returns the IDs of every user that has a limit configured.
func (r *LimitSQLite) ListUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, selectLimitUserIDsSQL)
	if err != nil {
		return nil, fmt.Errorf("list limit user ids: %w", err)
	}
	defer rows.Close()

	out := make([]int64, 0, 16)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan limit user id: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate limit user ids: %w", err)
	}
	return out, nil
}

// Create inserts a new limit row and returns its ID. The UNIQUE
// constraint on user_id enforces at most one row per user.
func (r *LimitSQLite) Create(ctx context.Context, l models.MonthlyLimit) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertLimitSQL,
		l.UserID, l.Amount, l.CreatedAt.UTC(), l.UpdatedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("insert limit for user %d: %w", l.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for limit: %w", err)
	}
	return lastID, nil
}

// UpdateAmount mutates amount and updated_at in place, preserving the
// row's id and created_at.
func (r *LimitSQLite) UpdateAmount(ctx context.Context, id int64, amount float64, updatedAt time.Time) error {
	if _, err := r.db.ExecContext(ctx, updateLimitAmountSQL, amount, updatedAt.UTC(), id); err != nil {
		return fmt.Errorf("update limit id=%d: %w", id, err)
	}
	return nil
}
