package service

import (
	"context"
	"sync"
	"time"

	"github.com/praneeth00007/backendd/internal/models"
)

// mockUserRepo is a lightweight in-test mock for repository.Users.
type mockUserRepo struct {
	CreateFn           func(u models.User) (int64, error)
	GetByIDFn          func(id int64) (*models.User, error)
	GetByUsernameFn    func(username string) (*models.User, error)
	ExistsByUsernameFn func(username string) (bool, error)
	ExistsByEmailFn    func(email string) (bool, error)
	ListFn             func() ([]models.User, error)
	CountFn            func() (int64, error)
	UpdateFn           func(u models.User) error
	DeleteFn           func(id int64) error

	createCalls []models.User
	updateCalls []models.User
	deleteCalls []int64
}

func (m *mockUserRepo) Create(_ context.Context, u models.User) (int64, error) {
	m.createCalls = append(m.createCalls, u)
	return m.CreateFn(u)
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	return m.GetByIDFn(id)
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return m.GetByUsernameFn(username)
}

func (m *mockUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	return m.ExistsByUsernameFn(username)
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return m.ExistsByEmailFn(email)
}

func (m *mockUserRepo) List(_ context.Context) ([]models.User, error) {
	return m.ListFn()
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return m.CountFn()
}

func (m *mockUserRepo) Update(_ context.Context, u models.User) error {
	m.updateCalls = append(m.updateCalls, u)
	return m.UpdateFn(u)
}

func (m *mockUserRepo) Delete(_ context.Context, id int64) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.DeleteFn(id)
}

// mockExpenseRepo is a lightweight in-test mock for repository.Expenses.
type mockExpenseRepo struct {
	CreateFn             func(e models.Expense) (int64, error)
	GetByIDFn            func(id int64) (*models.Expense, error)
	ListByUserFn         func(userID int64) ([]models.Expense, error)
	ListByUserAndRangeFn func(userID int64, from, to time.Time) ([]models.Expense, error)
	SumByUserAndRangeFn  func(userID int64, from, to time.Time) (float64, error)
	UpdateFn             func(e models.Expense) error
	DeleteFn             func(id int64) error

	createCalls []models.Expense
	updateCalls []models.Expense
	deleteCalls []int64
	sumCalls    []struct {
		userID   int64
		from, to time.Time
	}
}

func (m *mockExpenseRepo) Create(_ context.Context, e models.Expense) (int64, error) {
	m.createCalls = append(m.createCalls, e)
	return m.CreateFn(e)
}

func (m *mockExpenseRepo) GetByID(_ context.Context, id int64) (*models.Expense, error) {
	return m.GetByIDFn(id)
}

func (m *mockExpenseRepo) ListByUser(_ context.Context, userID int64) ([]models.Expense, error) {
	return m.ListByUserFn(userID)
}

func (m *mockExpenseRepo) ListByUserAndRange(_ context.Context, userID int64, from, to time.Time) ([]models.Expense, error) {
	return m.ListByUserAndRangeFn(userID, from, to)
}

func (m *mockExpenseRepo) SumByUserAndRange(_ context.Context, userID int64, from, to time.Time) (float64, error) {
	m.sumCalls = append(m.sumCalls, struct {
		userID   int64
		from, to time.Time
	}{userID: userID, from: from, to: to})
	return m.SumByUserAndRangeFn(userID, from, to)
}

func (m *mockExpenseRepo) Update(_ context.Context, e models.Expense) error {
	m.updateCalls = append(m.updateCalls, e)
	return m.UpdateFn(e)
}

func (m *mockExpenseRepo) Delete(_ context.Context, id int64) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.DeleteFn(id)
}

// mockLimitRepo is a lightweight in-test mock for repository.Limits.
type mockLimitRepo struct {
	GetByUserFn    func(userID int64) (*models.MonthlyLimit, error)
	ListUserIDsFn  func() ([]int64, error)
	CreateFn       func(l models.MonthlyLimit) (int64, error)
	UpdateAmountFn func(id int64, amount float64, updatedAt time.Time) error

	createCalls []models.MonthlyLimit
	updateCalls []struct {
		id        int64
		amount    float64
		updatedAt time.Time
	}
}

func (m *mockLimitRepo) GetByUser(_ context.Context, userID int64) (*models.MonthlyLimit, error) {
	return m.GetByUserFn(userID)
}

func (m *mockLimitRepo) ListUserIDs(_ context.Context) ([]int64, error) {
	return m.ListUserIDsFn()
}

func (m *mockLimitRepo) Create(_ context.Context, l models.MonthlyLimit) (int64, error) {
	m.createCalls = append(m.createCalls, l)
	return m.CreateFn(l)
}

func (m *mockLimitRepo) UpdateAmount(_ context.Context, id int64, amount float64, updatedAt time.Time) error {
	m.updateCalls = append(m.updateCalls, struct {
		id        int64
		amount    float64
		updatedAt time.Time
	}{id: id, amount: amount, updatedAt: updatedAt})
	return m.UpdateAmountFn(id, amount, updatedAt)
}

// mockArticleRepo is a lightweight in-test mock for repository.Articles.
type mockArticleRepo struct {
	CreateFn        func(a models.Article) (int64, error)
	GetByIDFn       func(id int64) (*models.Article, error)
	ListPublishedFn func() ([]models.Article, error)
	ListByAuthorFn  func(authorID int64) ([]models.Article, error)
	UpdateFn        func(a models.Article) error
	DeleteFn        func(id int64) error

	createCalls []models.Article
	updateCalls []models.Article
	deleteCalls []int64
}

func (m *mockArticleRepo) Create(_ context.Context, a models.Article) (int64, error) {
	m.createCalls = append(m.createCalls, a)
	return m.CreateFn(a)
}

func (m *mockArticleRepo) GetByID(_ context.Context, id int64) (*models.Article, error) {
	return m.GetByIDFn(id)
}

func (m *mockArticleRepo) ListPublished(_ context.Context) ([]models.Article, error) {
	return m.ListPublishedFn()
}

func (m *mockArticleRepo) ListByAuthor(_ context.Context, authorID int64) ([]models.Article, error) {
	return m.ListByAuthorFn(authorID)
}

func (m *mockArticleRepo) Update(_ context.Context, a models.Article) error {
	m.updateCalls = append(m.updateCalls, a)
	return m.UpdateFn(a)
}

func (m *mockArticleRepo) Delete(_ context.Context, id int64) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.DeleteFn(id)
}

// recordingNotifier captures every alert it receives. Err, when set, is
// returned on each call.
type recordingNotifier struct {
	mu     sync.Mutex
	alerts []Alert
	Err    error
}

func (n *recordingNotifier) LimitExceeded(_ context.Context, a Alert) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, a)
	return n.Err
}

func (n *recordingNotifier) Alerts() []Alert {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Alert, len(n.alerts))
	copy(out, n.alerts)
	return out
}

// mockUploader returns a canned URL and records uploads.
type mockUploader struct {
	URL     string
	Err     error
	uploads []struct {
		data   []byte
		folder string
	}
}

func (u *mockUploader) Upload(_ context.Context, data []byte, folder string) (string, error) {
	u.uploads = append(u.uploads, struct {
		data   []byte
		folder string
	}{data: data, folder: folder})
	if u.Err != nil {
		return "", u.Err
	}
	return u.URL, nil
}
