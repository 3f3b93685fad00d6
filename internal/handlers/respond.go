package handlers

import (
	"errors"
	"net/http"

	"github.com/praneeth00007/backendd/internal/logger"
	"github.com/praneeth00007/backendd/internal/service"

	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrDuplicateUsername),
		errors.Is(err, service.ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrTokenMalformed),
		errors.Is(err, service.ErrTokenSignatureInvalid),
		errors.Is(err, service.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotOwner),
		errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrExpenseNotFound),
		errors.Is(err, service.ErrArticleNotFound),
		errors.Is(err, service.ErrLimitNotSet):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidAmount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// requestLogger returns the handler logger scoped to the request's
// correlation ID.
func (h *Handler) requestLogger(c *gin.Context) *logger.Logger {
	if h.log == nil {
		return nil
	}
	if id := c.GetString("requestId"); id != "" {
		return h.log.WithRequestID(id)
	}
	return h.log
}

// respondError logs the failure and writes the mapped status. Internal
// errors are not echoed back to the client.
func (h *Handler) respondError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if log := h.requestLogger(c); log != nil {
		fields := append([]interface{}{"err", err}, kv...)
		log.Errorw(logKey, fields...)
	}
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	c.JSON(code, gin.H{"error": msg})
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}
