package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/praneeth00007/backendd/internal/models"
	"github.com/praneeth00007/backendd/internal/repository/db"
)

type Users interface {
	Create(ctx context.Context, u models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, u models.User) error
	Delete(ctx context.Context, id int64) error
}

type Expenses interface {
	Create(ctx context.Context, e models.Expense) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Expense, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Expense, error)
	ListByUserAndRange(ctx context.Context, userID int64, from, to time.Time) ([]models.Expense, error)
	SumByUserAndRange(ctx context.Context, userID int64, from, to time.Time) (float64, error)
	Update(ctx context.Context, e models.Expense) error
	Delete(ctx context.Context, id int64) error
}

type Limits interface {
	GetByUser(ctx context.Context, userID int64) (*models.MonthlyLimit, error)
	ListUserIDs(ctx context.Context) ([]int64, error)
	Create(ctx context.Context, l models.MonthlyLimit) (int64, error)
	UpdateAmount(ctx context.Context, id int64, amount float64, updatedAt time.Time) error
}

type Articles interface {
	Create(ctx context.Context, a models.Article) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	ListPublished(ctx context.Context) ([]models.Article, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]models.Article, error)
	Update(ctx context.Context, a models.Article) error
	Delete(ctx context.Context, id int64) error
}

type Repository struct {
	Users    Users
	Expenses Expenses
	Limits   Limits
	Articles Articles
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserSQLite(sqlDB),
		Expenses: NewExpenseSQLite(sqlDB),
		Limits:   NewLimitSQLite(sqlDB),
		Articles: NewArticleSQLite(sqlDB),
	}
}

// InitDB opens the SQLite file and applies the schema.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
