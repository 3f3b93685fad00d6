package service

import (
	"context"

	"github.com/praneeth00007/backendd/internal/logger"
)

// Alert describes a budget overage: current-month spend crossed the
// user's configured limit.
type Alert struct {
	UserID   int64   `json:"user_id"`
	Username string  `json:"username"`
	Limit    float64 `json:"limit"`
	Spent    float64 `json:"spent"`
}

// Notifier is the alert sink for budget overages. Delivery is
// best-effort: callers log failures and never abort the triggering
// mutation.
type Notifier interface {
	LimitExceeded(ctx context.Context, a Alert) error
}

// LogNotifier writes alerts to the process log.
type LogNotifier struct {
	log *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) LimitExceeded(_ context.Context, a Alert) error {
	if n.log != nil {
		n.log.Warnw("monthly_limit_exceeded",
			"user_id", a.UserID,
			"username", a.Username,
			"limit", a.Limit,
			"spent", a.Spent,
		)
	}
	return nil
}

// MultiNotifier fans an alert out to several sinks. Every sink is
// attempted; the first error is returned.
type MultiNotifier []Notifier

func (m MultiNotifier) LimitExceeded(ctx context.Context, a Alert) error {
	var first error
	for _, n := range m {
		if err := n.LimitExceeded(ctx, a); err != nil && first == nil {
			first = err
		}
	}
	return first
}
