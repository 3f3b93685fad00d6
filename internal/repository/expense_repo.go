package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/praneeth00007/backendd/internal/models"
)

type ExpenseSQLite struct {
	db *sql.DB
}

func NewExpenseSQLite(db *sql.DB) *ExpenseSQLite {
	return &ExpenseSQLite{db: db}
}

var _ Expenses = (*ExpenseSQLite)(nil)

const (
	insertExpenseSQL = `
		INSERT INTO expenses (user_id, category, description, amount, expense_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	selectExpenseByIDSQL = `
		SELECT id, user_id, category, description, amount, expense_date, created_at
		FROM expenses WHERE id = ?
	`
	selectExpensesByUserSQL = `
		SELECT id, user_id, category, description, amount, expense_date, created_at
		FROM expenses WHERE user_id = ? ORDER BY expense_date DESC
	`
	selectExpensesByUserRangeSQL = `
		SELECT id, user_id, category, description, amount, expense_date, created_at
		FROM expenses WHERE user_id = ? AND expense_date BETWEEN ? AND ?
		ORDER BY expense_date DESC
	`
	sumExpensesByUserRangeSQL = `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses WHERE user_id = ? AND expense_date BETWEEN ? AND ?
	`
	updateExpenseSQL = `
		UPDATE expenses SET category = ?, description = ?, amount = ?, expense_date = ?
		WHERE id = ?
	`
	deleteExpenseSQL = `DELETE FROM expenses WHERE id = ?`
)

func scanExpense(row interface{ Scan(...any) error }) (*models.Expense, error) {
	var e models.Expense
	if err := row.Scan(&e.ID, &e.UserID, &e.Category, &e.Description, &e.Amount, &e.ExpenseDate, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.ExpenseDate = e.ExpenseDate.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
	return &e, nil
}

// Create inserts a new expense row and returns its ID. Timestamps are
// persisted as UTC.
func (r *ExpenseSQLite) Create(ctx context.Context, e models.Expense) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertExpenseSQL,
		e.UserID, e.Category, e.Description, e.Amount, e.ExpenseDate.UTC(), e.CreatedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("insert expense for user %d: %w", e.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for expense: %w", err)
	}
	return lastID, nil
}

// GetByID fetches an expense by ID. Returns (nil, nil) if not found.
func (r *ExpenseSQLite) GetByID(ctx context.Context, id int64) (*models.Expense, error) {
	e, err := scanExpense(r.db.QueryRowContext(ctx, selectExpenseByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select expense id=%d: %w", id, err)
	}
	return e, nil
}

func (r *ExpenseSQLite) ListByUser(ctx context.Context, userID int64) ([]models.Expense, error) {
	return r.queryExpenses(ctx, selectExpensesByUserSQL, userID)
}

// ListByUserAndRange returns expenses whose expense_date falls within
// [from, to] inclusive.
func (r *ExpenseSQLite) ListByUserAndRange(ctx context.Context, userID int64, from, to time.Time) ([]models.Expense, error) {
	return r.queryExpenses(ctx, selectExpensesByUserRangeSQL, userID, from.UTC(), to.UTC())
}

// SumByUserAndRange totals expense amounts within [from, to] inclusive.
// Returns 0 when no rows match.
func (r *ExpenseSQLite) SumByUserAndRange(ctx context.Context, userID int64, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, sumExpensesByUserRangeSQL, userID, from.UTC(), to.UTC()).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum expenses for user %d: %w", userID, err)
	}
	return total, nil
}

func (r *ExpenseSQLite) Update(ctx context.Context, e models.Expense) error {
	if _, err := r.db.ExecContext(ctx, updateExpenseSQL,
		e.Category, e.Description, e.Amount, e.ExpenseDate.UTC(), e.ID); err != nil {
		return fmt.Errorf("update expense id=%d: %w", e.ID, err)
	}
	return nil
}

func (r *ExpenseSQLite) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, deleteExpenseSQL, id); err != nil {
		return fmt.Errorf("delete expense id=%d: %w", id, err)
	}
	return nil
}

func (r *ExpenseSQLite) queryExpenses(ctx context.Context, query string, args ...any) ([]models.Expense, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	out := make([]models.Expense, 0, 32)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense row: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return out, nil
}
