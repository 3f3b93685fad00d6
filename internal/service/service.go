package service

import (
	"context"
	"time"

	"github.com/praneeth00007/backendd/internal/logger"
	"github.com/praneeth00007/backendd/internal/models"
	"github.com/praneeth00007/backendd/internal/repository"
)

// AuthResult is returned by register/login: the issued token plus the
// identity it asserts.
type AuthResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Authorization interface {
	Register(ctx context.Context, username, email, password string) (AuthResult, error)
	Login(ctx context.Context, username, password string) (AuthResult, error)
	ParseToken(ctx context.Context, accessToken string) (*TokenClaims, error)
	EnsureAdmin(ctx context.Context, username, email, password string) error
}

// ExpenseInput is the mutable part of an expense. A nil ExpenseDate
// defaults to the submission instant.
type ExpenseInput struct {
	Category    string
	Description string
	Amount      float64
	ExpenseDate *time.Time
}

// Budget exposes expense recording and monthly budget aggregation.
type Budget interface {
	AddExpense(ctx context.Context, username string, in ExpenseInput) (*models.Expense, error)
	GetExpense(ctx context.Context, id int64, username string) (*models.Expense, error)
	ListExpenses(ctx context.Context, username string) ([]models.Expense, error)
	ListExpensesByMonth(ctx context.Context, username string, year, month int) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, id int64, username string, in ExpenseInput) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id int64, username string) error
	Summary(ctx context.Context, username string) (models.ExpenseSummary, error)
	SetMonthlyLimit(ctx context.Context, username string, amount float64) (*models.MonthlyLimit, error)
	GetMonthlyLimit(ctx context.Context, username string) (*models.MonthlyLimit, error)
}

// ProfileUpdate carries optional profile mutations; empty fields are
// left untouched. ProfileImage is a base64 data URL.
type ProfileUpdate struct {
	Email        string
	Password     string
	ProfileImage string
}

// Users exposes profile management and the admin inspection surface.
type Users interface {
	Profile(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, username string, in ProfileUpdate) (*models.User, error)
	ListAll(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	ExpensesOf(ctx context.Context, userID int64) ([]models.Expense, error)
	MonthlyLimitOf(ctx context.Context, userID int64) (*models.MonthlyLimit, error)
	UpdateRole(ctx context.Context, userID int64, role string) (*models.User, error)
	Delete(ctx context.Context, userID int64) error
}

// ArticleInput is the mutable part of an article. Image is a base64
// data URL uploaded to the media sink when present.
type ArticleInput struct {
	Title   string
	Content string
	Image   string
}

type Articles interface {
	Create(ctx context.Context, username string, in ArticleInput) (*models.Article, error)
	Get(ctx context.Context, id int64) (*models.Article, error)
	ListPublished(ctx context.Context) ([]models.Article, error)
	ListByAuthor(ctx context.Context, username string) ([]models.Article, error)
	Update(ctx context.Context, id int64, username string, in ArticleInput) (*models.Article, error)
	Publish(ctx context.Context, id int64, username string) (*models.Article, error)
	Delete(ctx context.Context, id int64, username string) error
}

// Watcher runs the periodic budget sweep. Stop via context cancellation
// in main() for graceful shutdown.
type Watcher interface {
	Run(ctx context.Context, tick time.Duration)
}

// Uploader is the media sink: raw bytes in, public URL out.
type Uploader interface {
	Upload(ctx context.Context, data []byte, folder string) (string, error)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Budget
	Users
	Articles
	Watcher
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, tokens *TokenManager, notifier Notifier, uploader Uploader, log *logger.Logger) *Service {
	budget := NewBudgetService(repos.Users, repos.Expenses, repos.Limits, notifier, log)
	return &Service{
		Authorization: NewAuthService(repos.Users, tokens),
		Budget:        budget,
		Users:         NewUserService(repos.Users, repos.Expenses, repos.Limits, uploader),
		Articles:      NewArticleService(repos.Users, repos.Articles, uploader),
		Watcher:       NewBudgetWatcher(budget, log),
	}
}
