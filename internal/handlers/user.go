package handlers

import (
	"net/http"

	"github.com/praneeth00007/backendd/internal/service"

	"github.com/gin-gonic/gin"
)

type profileUpdateRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	ProfileImage string `json:"profile_image"` // base64 data URL
}

// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Router       /api/users/profile [get]
// @Security     BearerAuth
func (h *Handler) getProfile(c *gin.Context) {
	u, err := h.services.Profile(c.Request.Context(), h.username(c))
	if err != nil {
		h.respondError(c, "profile_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Update own profile
// @Description  Empty fields are left untouched; profile_image is uploaded to the media sink.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      profileUpdateRequest  true  "Profile payload"
// @Success      200   {object}  models.User
// @Failure      400   {object}  map[string]string
// @Router       /api/users/profile [put]
// @Security     BearerAuth
func (h *Handler) updateProfile(c *gin.Context) {
	var req profileUpdateRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	u, err := h.services.UpdateProfile(c.Request.Context(), h.username(c), service.ProfileUpdate{
		Email:        req.Email,
		Password:     req.Password,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		h.respondError(c, "profile_update_failed", err)
		return
	}
	c.JSON(http.StatusOK, u)
}
