package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type limitRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

// @Summary      Set monthly spending limit
// @Description  Upsert: creates the limit if absent, otherwise updates it in place.
// @Tags         limits
// @Accept       json
// @Produce      json
// @Param        body  body      limitRequest  true  "Limit payload"
// @Success      200   {object}  models.MonthlyLimit
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/limits [post]
// @Security     BearerAuth
func (h *Handler) setMonthlyLimit(c *gin.Context) {
	var req limitRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	l, err := h.services.SetMonthlyLimit(c.Request.Context(), h.username(c), *req.Amount)
	if err != nil {
		h.respondError(c, "limit_set_failed", err, "username", h.username(c))
		return
	}
	c.JSON(http.StatusOK, l)
}

// @Summary      Get monthly spending limit
// @Tags         limits
// @Produce      json
// @Success      200  {object}  models.MonthlyLimit
// @Failure      404  {object}  map[string]string
// @Router       /api/limits [get]
// @Security     BearerAuth
func (h *Handler) getMonthlyLimit(c *gin.Context) {
	l, err := h.services.GetMonthlyLimit(c.Request.Context(), h.username(c))
	if err != nil {
		h.respondError(c, "limit_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, l)
}
