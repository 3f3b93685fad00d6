package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/praneeth00007/backendd/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO for creating/updating an expense. ExpenseDate defaults to
// the submission instant when omitted.
type expenseRequest struct {
	Category    string     `json:"category" binding:"required"`
	Description string     `json:"description"`
	Amount      *float64   `json:"amount" binding:"required"`
	ExpenseDate *time.Time `json:"expense_date,omitempty"`
}

func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// @Summary      Record an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        body  body      expenseRequest  true  "Expense payload"
// @Success      200   {object}  models.Expense
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/expenses [post]
// @Security     BearerAuth
func (h *Handler) addExpense(c *gin.Context) {
	var req expenseRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	e, err := h.services.AddExpense(c.Request.Context(), h.username(c), service.ExpenseInput{
		Category:    req.Category,
		Description: req.Description,
		Amount:      *req.Amount,
		ExpenseDate: req.ExpenseDate,
	})
	if err != nil {
		h.respondError(c, "expense_add_failed", err, "username", h.username(c))
		return
	}
	c.JSON(http.StatusOK, e)
}

// @Summary      List own expenses
// @Tags         expenses
// @Produce      json
// @Success      200  {array}  models.Expense
// @Failure      401  {object}  map[string]string
// @Router       /api/expenses [get]
// @Security     BearerAuth
func (h *Handler) listExpenses(c *gin.Context) {
	out, err := h.services.ListExpenses(c.Request.Context(), h.username(c))
	if err != nil {
		h.respondError(c, "expense_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      List own expenses for a month
// @Tags         expenses
// @Produce      json
// @Param        year   query  int  true  "Year"
// @Param        month  query  int  true  "Month (1-12)"
// @Success      200  {array}  models.Expense
// @Failure      400  {object}  map[string]string
// @Router       /api/expenses/month [get]
// @Security     BearerAuth
func (h *Handler) listExpensesByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}

	out, err := h.services.ListExpensesByMonth(c.Request.Context(), h.username(c), year, month)
	if err != nil {
		h.respondError(c, "expense_list_month_failed", err, "year", year, "month", month)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Current-month budget summary
// @Description  Totals this calendar month's expenses against the configured limit.
// @Tags         expenses
// @Produce      json
// @Success      200  {object}  models.ExpenseSummary
// @Failure      401  {object}  map[string]string
// @Router       /api/expenses/summary [get]
// @Security     BearerAuth
func (h *Handler) expenseSummary(c *gin.Context) {
	summary, err := h.services.Summary(c.Request.Context(), h.username(c))
	if err != nil {
		h.respondError(c, "expense_summary_failed", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary      Get an expense
// @Tags         expenses
// @Produce      json
// @Param        id  path  int  true  "Expense ID"
// @Success      200  {object}  models.Expense
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/expenses/{id} [get]
// @Security     BearerAuth
func (h *Handler) getExpense(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	e, err := h.services.GetExpense(c.Request.Context(), id, h.username(c))
	if err != nil {
		h.respondError(c, "expense_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, e)
}

// @Summary      Update an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id    path  int             true  "Expense ID"
// @Param        body  body  expenseRequest  true  "Expense payload"
// @Success      200  {object}  models.Expense
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/expenses/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateExpense(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req expenseRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	e, err := h.services.UpdateExpense(c.Request.Context(), id, h.username(c), service.ExpenseInput{
		Category:    req.Category,
		Description: req.Description,
		Amount:      *req.Amount,
		ExpenseDate: req.ExpenseDate,
	})
	if err != nil {
		h.respondError(c, "expense_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, e)
}

// @Summary      Delete an expense
// @Tags         expenses
// @Param        id  path  int  true  "Expense ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/expenses/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteExpense(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.services.DeleteExpense(c.Request.Context(), id, h.username(c)); err != nil {
		h.respondError(c, "expense_delete_failed", err, "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
