package handlers

import (
	"net/http"

	"github.com/praneeth00007/backendd/internal/logger"
	"github.com/praneeth00007/backendd/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/praneeth00007/backendd/docs"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	hub      *AlertHub
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, hub *AlertHub, log *logger.Logger) *Handler {
	return &Handler{services: services, hub: hub, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Published articles are world-readable
	h.registerPublicArticleRoutes(router)

	// Live budget-alert stream, served from the same port
	router.GET("/ws/alerts", h.wsAlerts)

	// Protected API
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
}

func (h *Handler) registerPublicArticleRoutes(r *gin.Engine) {
	articles := r.Group("/articles")
	{
		articles.GET("/public", h.listPublishedArticles)
		articles.GET("/:id", h.getArticle)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api", h.authMiddleware)
	{
		h.registerExpenseRoutes(api)
		h.registerLimitRoutes(api)
		h.registerUserRoutes(api)
		h.registerArticleRoutes(api)
		h.registerAdminRoutes(api)
	}
}

func (h *Handler) registerExpenseRoutes(api *gin.RouterGroup) {
	expenses := api.Group("/expenses")
	{
		expenses.POST("", h.addExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/month", h.listExpensesByMonth)
		expenses.GET("/summary", h.expenseSummary)
		expenses.GET("/:id", h.getExpense)
		expenses.PUT("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

func (h *Handler) registerLimitRoutes(api *gin.RouterGroup) {
	limits := api.Group("/limits")
	{
		limits.POST("", h.setMonthlyLimit)
		limits.GET("", h.getMonthlyLimit)
	}
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	{
		users.GET("/profile", h.getProfile)
		users.PUT("/profile", h.updateProfile)
	}
}

func (h *Handler) registerArticleRoutes(api *gin.RouterGroup) {
	articles := api.Group("/articles")
	{
		articles.POST("", h.createArticle)
		articles.GET("/my", h.myArticles)
		articles.PUT("/:id", h.updateArticle)
		articles.DELETE("/:id", h.deleteArticle)
		articles.POST("/:id/publish", h.requireRole(roleAdmin), h.publishArticle)
	}
}

func (h *Handler) registerAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin", h.requireRole(roleAdmin))
	{
		admin.GET("/users", h.adminListUsers)
		admin.GET("/users/count", h.adminUserCount)
		admin.GET("/users/:id", h.adminGetUser)
		admin.GET("/users/:id/expenses", h.adminUserExpenses)
		admin.GET("/users/:id/budgets", h.adminUserBudget)
		admin.PATCH("/users/:id/role", h.adminUpdateRole)
		admin.DELETE("/users/:id", h.adminDeleteUser)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
