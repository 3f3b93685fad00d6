package service

import (
	"context"
	"time"

	"github.com/praneeth00007/backendd/internal/logger"
)

// BudgetWatcher periodically re-evaluates every configured limit
// against current-month spend. The check is the same stateless one run
// after each mutation, so a sweep never double-counts or caches.
type BudgetWatcher struct {
	budget *BudgetService
	log    *logger.Logger
}

func NewBudgetWatcher(budget *BudgetService, log *logger.Logger) *BudgetWatcher {
	return &BudgetWatcher{budget: budget, log: log}
}

// Run ticks at the given interval until ctx is canceled.
func (w *BudgetWatcher) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			w.sweep(ctx)
		}
	}
}

func (w *BudgetWatcher) sweep(ctx context.Context) {
	ids, err := w.budget.limits.ListUserIDs(ctx)
	if err != nil {
		if w.log != nil {
			w.log.Errorw("budget_sweep_list_failed", "err", err)
		}
		return
	}
	for _, id := range ids {
		if err := w.budget.checkLimitByID(ctx, id); err != nil && w.log != nil {
			w.log.Errorw("budget_sweep_check_failed", "err", err, "user_id", id)
		}
	}
}
