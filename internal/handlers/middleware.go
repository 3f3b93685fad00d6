package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUsername = "username"
	ctxRole     = "role"

	roleAdmin = "ADMIN"

	requestIDHeader = "X-Request-ID"
)

// requestIDMiddleware attaches a correlation ID to every request,
// reusing the caller's when present.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set("requestId", id)
	c.Writer.Header().Set(requestIDHeader, id)
	c.Next()
}

// authMiddleware validates the Bearer token and stores the asserted
// identity (username, role) in the Gin context.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	claims, err := h.services.ParseToken(c.Request.Context(), parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	// store in Gin context
	c.Set(ctxUsername, claims.Subject)
	c.Set(ctxRole, claims.Role)
	c.Next()
}

// requireRole gates a route group on the token's role claim.
func (h *Handler) requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// username returns the authenticated username set by authMiddleware.
func (h *Handler) username(c *gin.Context) string {
	return c.GetString(ctxUsername)
}
