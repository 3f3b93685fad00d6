package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/praneeth00007/backendd/internal/models"
)

func newTestTokens() *TokenManager {
	return NewTokenManager("unit-test-secret", time.Hour)
}

// --- Register tests ---

func TestAuthService_Register_SuccessHashesPasswordAndIssuesToken(t *testing.T) {
	mock := &mockUserRepo{
		ExistsByUsernameFn: func(string) (bool, error) { return false, nil },
		ExistsByEmailFn:    func(string) (bool, error) { return false, nil },
		CreateFn:           func(models.User) (int64, error) { return 42, nil },
	}
	svc := NewAuthService(mock, newTestTokens())

	res, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cr3t")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected non-empty token")
	}
	if res.Username != "alice" || res.Role != models.RoleUser {
		t.Fatalf("unexpected result: %+v", res)
	}

	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
	created := mock.createCalls[0]
	if created.Role != models.RoleUser {
		t.Errorf("expected role %q, got %q", models.RoleUser, created.Role)
	}
	if created.PasswordHash == "s3cr3t" {
		t.Errorf("expected hashed password not equal to raw password")
	}
	if err := verifyPassword(created.PasswordHash, "s3cr3t"); err != nil {
		t.Errorf("stored hash does not verify with original password: %v", err)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	mock := &mockUserRepo{
		ExistsByUsernameFn: func(string) (bool, error) { return true, nil },
		ExistsByEmailFn: func(string) (bool, error) {
			t.Fatal("email check should not run after username conflict")
			return false, nil
		},
		CreateFn: func(models.User) (int64, error) {
			t.Fatal("Create should not be called on conflict")
			return 0, nil
		},
	}
	svc := NewAuthService(mock, newTestTokens())

	_, err := svc.Register(context.Background(), "taken", "new@example.com", "pw123")
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got: %v", err)
	}
	if len(mock.createCalls) != 0 {
		t.Fatalf("expected no Create calls, got %d", len(mock.createCalls))
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	mock := &mockUserRepo{
		ExistsByUsernameFn: func(string) (bool, error) { return false, nil },
		ExistsByEmailFn:    func(string) (bool, error) { return true, nil },
		CreateFn: func(models.User) (int64, error) {
			t.Fatal("Create should not be called on conflict")
			return 0, nil
		},
	}
	svc := NewAuthService(mock, newTestTokens())

	_, err := svc.Register(context.Background(), "fresh", "taken@example.com", "pw123")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got: %v", err)
	}
}

func TestAuthService_Register_EmptyPassword(t *testing.T) {
	mock := &mockUserRepo{
		ExistsByUsernameFn: func(string) (bool, error) { return false, nil },
		ExistsByEmailFn:    func(string) (bool, error) { return false, nil },
		CreateFn: func(models.User) (int64, error) {
			t.Fatal("Create should not be called for empty password")
			return 0, nil
		},
	}
	svc := NewAuthService(mock, newTestTokens())

	if _, err := svc.Register(context.Background(), "bob", "bob@example.com", "   "); err == nil {
		t.Fatalf("expected error for empty password, got nil")
	}
}

// --- Login tests ---

func TestAuthService_Login_SuccessCarriesCurrentRole(t *testing.T) {
	hash, err := hashPassword("letmein")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	mock := &mockUserRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			return &models.User{ID: 7, Username: username, PasswordHash: hash, Role: models.RoleAdmin}, nil
		},
	}
	tokens := newTestTokens()
	svc := NewAuthService(mock, tokens)

	res, err := svc.Login(context.Background(), "diana", "letmein")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.Role != models.RoleAdmin {
		t.Fatalf("expected role from the stored record, got %q", res.Role)
	}

	claims, err := tokens.Validate(res.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Subject != "diana" || claims.Role != models.RoleAdmin {
		t.Fatalf("unexpected claims: subject=%q role=%q", claims.Subject, claims.Role)
	}
}

func TestAuthService_Login_UnknownUserAndWrongPasswordIndistinguishable(t *testing.T) {
	hash, err := hashPassword("correct")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	mock := &mockUserRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			if username == "eve" {
				return &models.User{ID: 1, Username: "eve", PasswordHash: hash, Role: models.RoleUser}, nil
			}
			return nil, nil
		},
	}
	svc := NewAuthService(mock, newTestTokens())

	_, errWrongPw := svc.Login(context.Background(), "eve", "wrong")
	_, errNoUser := svc.Login(context.Background(), "ghost", "whatever")

	if !errors.Is(errWrongPw, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got: %v", errWrongPw)
	}
	if !errors.Is(errNoUser, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got: %v", errNoUser)
	}
}

func TestAuthService_Login_RepoError(t *testing.T) {
	mock := &mockUserRepo{
		GetByUsernameFn: func(string) (*models.User, error) {
			return nil, errors.New("query failed")
		},
	}
	svc := NewAuthService(mock, newTestTokens())

	if _, err := svc.Login(context.Background(), "john", "pw"); err == nil {
		t.Fatalf("expected repo error, got nil")
	}
}

// --- ParseToken tests ---

func TestAuthService_ParseToken_SubjectMustStillExist(t *testing.T) {
	tokens := newTestTokens()
	token, err := tokens.Issue("walt", models.RoleUser)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	// Subject present: claims come back.
	mock := &mockUserRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			return &models.User{ID: 3, Username: username, Role: models.RoleUser}, nil
		},
	}
	svc := NewAuthService(mock, tokens)
	claims, err := svc.ParseToken(context.Background(), token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if claims.Subject != "walt" {
		t.Fatalf("expected subject 'walt', got %q", claims.Subject)
	}

	// Subject deleted since issuance: the token is rejected.
	gone := &mockUserRepo{
		GetByUsernameFn: func(string) (*models.User, error) { return nil, nil },
	}
	svc = NewAuthService(gone, tokens)
	if _, err := svc.ParseToken(context.Background(), token); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestAuthService_ParseToken_Malformed(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, newTestTokens())
	if _, err := svc.ParseToken(context.Background(), "junk"); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got: %v", err)
	}
}

// --- EnsureAdmin tests ---

func TestAuthService_EnsureAdmin_CreatesOnceAndIsIdempotent(t *testing.T) {
	exists := false
	mock := &mockUserRepo{
		ExistsByUsernameFn: func(string) (bool, error) { return exists, nil },
		CreateFn: func(u models.User) (int64, error) {
			exists = true
			return 1, nil
		},
	}
	svc := NewAuthService(mock, newTestTokens())

	if err := svc.EnsureAdmin(context.Background(), "admin", "admin@example.com", "pw123"); err != nil {
		t.Fatalf("first EnsureAdmin returned error: %v", err)
	}
	if err := svc.EnsureAdmin(context.Background(), "admin", "admin@example.com", "pw123"); err != nil {
		t.Fatalf("second EnsureAdmin returned error: %v", err)
	}

	if len(mock.createCalls) != 1 {
		t.Fatalf("expected exactly 1 Create call, got %d", len(mock.createCalls))
	}
	if mock.createCalls[0].Role != models.RoleAdmin {
		t.Fatalf("expected role %q, got %q", models.RoleAdmin, mock.createCalls[0].Role)
	}
}
