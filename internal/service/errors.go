package service

import "errors"

// Domain errors surfaced to the HTTP layer. Handlers map these to
// status codes with errors.Is.
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrArticleNotFound    = errors.New("article not found")
	ErrLimitNotSet        = errors.New("monthly limit not set")
	ErrNotOwner           = errors.New("unauthorized access to resource")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidAmount      = errors.New("amount must be non-negative")
)

// Token validation errors.
var (
	ErrTokenMalformed        = errors.New("malformed token")
	ErrTokenSignatureInvalid = errors.New("invalid token signature")
	ErrTokenExpired          = errors.New("token expired")
)
