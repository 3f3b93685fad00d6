package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type roleUpdateRequest struct {
	Role string `json:"role" binding:"required"`
}

// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Success      200  {array}  models.User
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/users [get]
// @Security     BearerAuth
func (h *Handler) adminListUsers(c *gin.Context) {
	users, err := h.services.ListAll(c.Request.Context())
	if err != nil {
		h.respondError(c, "admin_list_users_failed", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary      Count users
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]int64
// @Router       /api/admin/users/count [get]
// @Security     BearerAuth
func (h *Handler) adminUserCount(c *gin.Context) {
	n, err := h.services.Count(c.Request.Context())
	if err != nil {
		h.respondError(c, "admin_user_count_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

// @Summary      Get a user
// @Tags         admin
// @Produce      json
// @Param        id  path  int  true  "User ID"
// @Success      200  {object}  models.User
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/users/{id} [get]
// @Security     BearerAuth
func (h *Handler) adminGetUser(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	u, err := h.services.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "admin_get_user_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      List a user's expenses
// @Tags         admin
// @Produce      json
// @Param        id  path  int  true  "User ID"
// @Success      200  {array}  models.Expense
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/users/{id}/expenses [get]
// @Security     BearerAuth
func (h *Handler) adminUserExpenses(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	out, err := h.services.ExpensesOf(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "admin_user_expenses_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Get a user's monthly limit
// @Tags         admin
// @Produce      json
// @Param        id  path  int  true  "User ID"
// @Success      200  {object}  models.MonthlyLimit
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/users/{id}/budgets [get]
// @Security     BearerAuth
func (h *Handler) adminUserBudget(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	l, err := h.services.MonthlyLimitOf(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "admin_user_budget_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, l)
}

// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "User ID"
// @Param        body  body  roleUpdateRequest  true  "Role payload"
// @Success      200  {object}  models.User
// @Failure      400  {object}  map[string]string
// @Router       /api/admin/users/{id}/role [patch]
// @Security     BearerAuth
func (h *Handler) adminUpdateRole(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req roleUpdateRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	u, err := h.services.UpdateRole(c.Request.Context(), id, req.Role)
	if err != nil {
		h.respondError(c, "admin_update_role_failed", err, "id", id, "role", req.Role)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Delete a user
// @Tags         admin
// @Param        id  path  int  true  "User ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/users/{id} [delete]
// @Security     BearerAuth
func (h *Handler) adminDeleteUser(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.services.Users.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, "admin_delete_user_failed", err, "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
