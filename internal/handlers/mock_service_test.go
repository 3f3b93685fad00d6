package handlers

import (
	"context"
	"time"

	"github.com/praneeth00007/backendd/internal/models"
	"github.com/praneeth00007/backendd/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, NewAlertHub(nil), nil)
	return h.InitRoutes()
}

func claimsFor(username, role string) *service.TokenClaims {
	return &service.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: username},
		Role:             role,
	}
}

// mockAuth is an in-test implementation of service.Authorization.
type mockAuth struct {
	registerResult service.AuthResult
	registerErr    error
	loginResult    service.AuthResult
	loginErr       error
	parseClaims    *service.TokenClaims
	parseErr       error

	lastParseToken string
}

func (m *mockAuth) Register(_ context.Context, username, email, password string) (service.AuthResult, error) {
	return m.registerResult, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, username, password string) (service.AuthResult, error) {
	return m.loginResult, m.loginErr
}

func (m *mockAuth) ParseToken(_ context.Context, token string) (*service.TokenClaims, error) {
	m.lastParseToken = token
	if m.parseErr != nil {
		return nil, m.parseErr
	}
	return m.parseClaims, nil
}

func (m *mockAuth) EnsureAdmin(_ context.Context, username, email, password string) error {
	return nil
}

// mockBudget is an in-test implementation of service.Budget.
type mockBudget struct {
	expense    *models.Expense
	expenses   []models.Expense
	summary    models.ExpenseSummary
	limit      *models.MonthlyLimit
	err        error
	lastInput  service.ExpenseInput
	lastAmount float64
}

func (m *mockBudget) AddExpense(_ context.Context, username string, in service.ExpenseInput) (*models.Expense, error) {
	m.lastInput = in
	return m.expense, m.err
}

func (m *mockBudget) GetExpense(_ context.Context, id int64, username string) (*models.Expense, error) {
	return m.expense, m.err
}

func (m *mockBudget) ListExpenses(_ context.Context, username string) ([]models.Expense, error) {
	return m.expenses, m.err
}

func (m *mockBudget) ListExpensesByMonth(_ context.Context, username string, year, month int) ([]models.Expense, error) {
	return m.expenses, m.err
}

func (m *mockBudget) UpdateExpense(_ context.Context, id int64, username string, in service.ExpenseInput) (*models.Expense, error) {
	m.lastInput = in
	return m.expense, m.err
}

func (m *mockBudget) DeleteExpense(_ context.Context, id int64, username string) error {
	return m.err
}

func (m *mockBudget) Summary(_ context.Context, username string) (models.ExpenseSummary, error) {
	return m.summary, m.err
}

func (m *mockBudget) SetMonthlyLimit(_ context.Context, username string, amount float64) (*models.MonthlyLimit, error) {
	m.lastAmount = amount
	return m.limit, m.err
}

func (m *mockBudget) GetMonthlyLimit(_ context.Context, username string) (*models.MonthlyLimit, error) {
	return m.limit, m.err
}

// mockUsers is an in-test implementation of service.Users.
type mockUsers struct {
	user     *models.User
	users    []models.User
	count    int64
	expenses []models.Expense
	limit    *models.MonthlyLimit
	err      error

	lastRole    string
	deleteCalls []int64
}

func (m *mockUsers) Profile(_ context.Context, username string) (*models.User, error) {
	return m.user, m.err
}

func (m *mockUsers) UpdateProfile(_ context.Context, username string, in service.ProfileUpdate) (*models.User, error) {
	return m.user, m.err
}

func (m *mockUsers) ListAll(_ context.Context) ([]models.User, error) {
	return m.users, m.err
}

func (m *mockUsers) Count(_ context.Context) (int64, error) {
	return m.count, m.err
}

func (m *mockUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	return m.user, m.err
}

func (m *mockUsers) ExpensesOf(_ context.Context, userID int64) ([]models.Expense, error) {
	return m.expenses, m.err
}

func (m *mockUsers) MonthlyLimitOf(_ context.Context, userID int64) (*models.MonthlyLimit, error) {
	return m.limit, m.err
}

func (m *mockUsers) UpdateRole(_ context.Context, userID int64, role string) (*models.User, error) {
	m.lastRole = role
	return m.user, m.err
}

func (m *mockUsers) Delete(_ context.Context, userID int64) error {
	m.deleteCalls = append(m.deleteCalls, userID)
	return m.err
}

// mockArticles is an in-test implementation of service.Articles.
type mockArticles struct {
	article  *models.Article
	articles []models.Article
	err      error
}

func (m *mockArticles) Create(_ context.Context, username string, in service.ArticleInput) (*models.Article, error) {
	return m.article, m.err
}

func (m *mockArticles) Get(_ context.Context, id int64) (*models.Article, error) {
	return m.article, m.err
}

func (m *mockArticles) ListPublished(_ context.Context) ([]models.Article, error) {
	return m.articles, m.err
}

func (m *mockArticles) ListByAuthor(_ context.Context, username string) ([]models.Article, error) {
	return m.articles, m.err
}

func (m *mockArticles) Update(_ context.Context, id int64, username string, in service.ArticleInput) (*models.Article, error) {
	return m.article, m.err
}

func (m *mockArticles) Publish(_ context.Context, id int64, username string) (*models.Article, error) {
	return m.article, m.err
}

func (m *mockArticles) Delete(_ context.Context, id int64, username string) error {
	return m.err
}

// mockWatcher satisfies service.Watcher without doing anything.
type mockWatcher struct{}

func (mockWatcher) Run(context.Context, time.Duration) {}
