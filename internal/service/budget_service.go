package service

import (
	"context"
	"time"

	"github.com/praneeth00007/backendd/internal/logger"
	"github.com/praneeth00007/backendd/internal/models"
	"github.com/praneeth00007/backendd/internal/repository"
)

// BudgetService records expenses and aggregates current-month spend
// against the user's monthly limit.
type BudgetService struct {
	users    repository.Users
	expenses repository.Expenses
	limits   repository.Limits
	notifier Notifier
	log      *logger.Logger
}

func NewBudgetService(users repository.Users, expenses repository.Expenses, limits repository.Limits, notifier Notifier, log *logger.Logger) *BudgetService {
	return &BudgetService{users: users, expenses: expenses, limits: limits, notifier: notifier, log: log}
}

// monthWindow returns the first and last instant of now's calendar
// month, in now's location. The window is inclusive on both ends.
func monthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

func (s *BudgetService) resolveUser(ctx context.Context, username string) (*models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// AddExpense persists an expense owned by username, defaulting the
// expense date to the current instant. The threshold check afterwards
// is best-effort: its failure never fails the write.
func (s *BudgetService) AddExpense(ctx context.Context, username string, in ExpenseInput) (*models.Expense, error) {
	u, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if in.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	now := time.Now().UTC()
	expenseDate := now
	if in.ExpenseDate != nil {
		expenseDate = in.ExpenseDate.UTC()
	}

	e := models.Expense{
		UserID:      u.ID,
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		ExpenseDate: expenseDate,
		CreatedAt:   now,
	}
	id, err := s.expenses.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	e.ID = id

	s.checkLimit(ctx, u)
	return &e, nil
}

// GetExpense loads an expense readable by username: the owner, or an
// admin inspecting another user's data.
func (s *BudgetService) GetExpense(ctx context.Context, id int64, username string) (*models.Expense, error) {
	requester, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	e, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrExpenseNotFound
	}
	if e.UserID != requester.ID && requester.Role != models.RoleAdmin {
		return nil, ErrNotOwner
	}
	return e, nil
}

func (s *BudgetService) ListExpenses(ctx context.Context, username string) ([]models.Expense, error) {
	u, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.expenses.ListByUser(ctx, u.ID)
}

// ListExpensesByMonth returns the user's expenses within the given
// calendar month.
func (s *BudgetService) ListExpensesByMonth(ctx context.Context, username string, year, month int) ([]models.Expense, error) {
	u, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	from, to := monthWindow(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local))
	return s.expenses.ListByUserAndRange(ctx, u.ID, from, to)
}

// UpdateExpense mutates an expense owned by username and re-runs the
// threshold check.
func (s *BudgetService) UpdateExpense(ctx context.Context, id int64, username string, in ExpenseInput) (*models.Expense, error) {
	u, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	e, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrExpenseNotFound
	}
	if e.UserID != u.ID {
		return nil, ErrNotOwner
	}
	if in.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	e.Category = in.Category
	e.Description = in.Description
	e.Amount = in.Amount
	if in.ExpenseDate != nil {
		e.ExpenseDate = in.ExpenseDate.UTC()
	}
	if err := s.expenses.Update(ctx, *e); err != nil {
		return nil, err
	}

	s.checkLimit(ctx, u)
	return e, nil
}

// DeleteExpense removes an expense owned by username.
func (s *BudgetService) DeleteExpense(ctx context.Context, id int64, username string) error {
	u, err := s.resolveUser(ctx, username)
	if err != nil {
		return err
	}
	e, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return ErrExpenseNotFound
	}
	if e.UserID != u.ID {
		return ErrNotOwner
	}
	return s.expenses.Delete(ctx, id)
}

// Summary aggregates current-month spend against the configured limit.
// An absent limit reads as zero and never sets the exceeded flag.
func (s *BudgetService) Summary(ctx context.Context, username string) (models.ExpenseSummary, error) {
	u, err := s.resolveUser(ctx, username)
	if err != nil {
		return models.ExpenseSummary{}, err
	}

	from, to := monthWindow(time.Now())
	total, err := s.expenses.SumByUserAndRange(ctx, u.ID, from, to)
	if err != nil {
		return models.ExpenseSummary{}, err
	}

	var limit float64
	l, err := s.limits.GetByUser(ctx, u.ID)
	if err != nil {
		return models.ExpenseSummary{}, err
	}
	if l != nil {
		limit = l.Amount
	}

	return models.ExpenseSummary{
		TotalExpenses:   total,
		MonthlyLimit:    limit,
		RemainingBudget: limit - total,
		LimitExceeded:   limit > 0 && total > limit,
	}, nil
}

// SetMonthlyLimit upserts the user's limit: create if absent, else
// mutate amount and updated_at in place (same id, same created_at).
// The threshold check re-runs against current-month spend afterwards.
func (s *BudgetService) SetMonthlyLimit(ctx context.Context, username string, amount float64) (*models.MonthlyLimit, error) {
	u, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, ErrInvalidAmount
	}

	now := time.Now().UTC()
	existing, err := s.limits.GetByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	var out *models.MonthlyLimit
	if existing == nil {
		l := models.MonthlyLimit{UserID: u.ID, Amount: amount, CreatedAt: now, UpdatedAt: now}
		id, err := s.limits.Create(ctx, l)
		if err != nil {
			return nil, err
		}
		l.ID = id
		out = &l
	} else {
		if err := s.limits.UpdateAmount(ctx, existing.ID, amount, now); err != nil {
			return nil, err
		}
		existing.Amount = amount
		existing.UpdatedAt = now
		out = existing
	}

	s.checkLimit(ctx, u)
	return out, nil
}

// GetMonthlyLimit returns the user's limit, or ErrLimitNotSet.
func (s *BudgetService) GetMonthlyLimit(ctx context.Context, username string) (*models.MonthlyLimit, error) {
	u, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	l, err := s.limits.GetByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLimitNotSet
	}
	return l, nil
}

// checkLimit recomputes current-month spend and notifies the alert sink
// when a configured limit is exceeded. Stateless and idempotent, so it
// is safe to call redundantly after every mutation; failures are logged
// and swallowed.
func (s *BudgetService) checkLimit(ctx context.Context, u *models.User) {
	if err := s.evaluateLimit(ctx, u); err != nil && s.log != nil {
		s.log.Errorw("budget_threshold_check_failed", "err", err, "user_id", u.ID)
	}
}

func (s *BudgetService) evaluateLimit(ctx context.Context, u *models.User) error {
	l, err := s.limits.GetByUser(ctx, u.ID)
	if err != nil {
		return err
	}
	if l == nil || l.Amount <= 0 {
		return nil
	}

	from, to := monthWindow(time.Now())
	total, err := s.expenses.SumByUserAndRange(ctx, u.ID, from, to)
	if err != nil {
		return err
	}
	if total <= l.Amount {
		return nil
	}
	if s.notifier == nil {
		return nil
	}
	return s.notifier.LimitExceeded(ctx, Alert{
		UserID:   u.ID,
		Username: u.Username,
		Limit:    l.Amount,
		Spent:    total,
	})
}

// checkLimitByID re-evaluates the threshold for a user ID; used by the
// background sweep.
func (s *BudgetService) checkLimitByID(ctx context.Context, userID int64) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	return s.evaluateLimit(ctx, u)
}
