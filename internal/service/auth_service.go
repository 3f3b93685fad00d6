package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/praneeth00007/backendd/internal/models"
	"github.com/praneeth00007/backendd/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and token-based identity
// resolution.
type AuthService struct {
	users  repository.Users
	tokens *TokenManager
}

func NewAuthService(users repository.Users, tokens *TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new USER identity and issues a token for it.
// Uniqueness is checked before any write: username first, then email.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (AuthResult, error) {
	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return AuthResult{}, err
	}
	if taken {
		return AuthResult{}, ErrDuplicateUsername
	}

	taken, err = s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if taken {
		return AuthResult{}, ErrDuplicateEmail
	}

	hash, err := hashPassword(password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("invalid password: %w", err)
	}

	if _, err := s.users.Create(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		return AuthResult{}, err
	}

	token, err := s.tokens.Issue(username, models.RoleUser)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, Username: username, Role: models.RoleUser}, nil
}

// Login verifies credentials and issues a token carrying the identity's
// current role. Unknown username and wrong password both yield
// ErrInvalidCredentials so callers cannot tell which check failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (AuthResult, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return AuthResult{}, err
	}
	if u == nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.Username, u.Role)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, Username: u.Username, Role: u.Role}, nil
}

// ParseToken validates the token and checks that its subject still maps
// to an existing identity.
func (s *AuthService) ParseToken(ctx context.Context, accessToken string) (*TokenClaims, error) {
	claims, err := s.tokens.Validate(accessToken)
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return claims, nil
}

// EnsureAdmin creates the bootstrap ADMIN record if absent. Runs once
// at process start, before serving traffic; idempotent via the
// existing-username check.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, email, password string) error {
	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := hashPassword(password)
	if err != nil {
		return fmt.Errorf("invalid admin password: %w", err)
	}
	_, err = s.users.Create(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	return err
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
