package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/praneeth00007/backendd/internal/models"
	"github.com/praneeth00007/backendd/internal/repository"
)

const profileImageFolder = "expense-tracker/profile-images"

// UserService covers profile management and the admin surface over
// users, their expenses and budgets.
type UserService struct {
	users    repository.Users
	expenses repository.Expenses
	limits   repository.Limits
	uploader Uploader
}

func NewUserService(users repository.Users, expenses repository.Expenses, limits repository.Limits, uploader Uploader) *UserService {
	return &UserService{users: users, expenses: expenses, limits: limits, uploader: uploader}
}

func (s *UserService) Profile(ctx context.Context, username string) (*models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UpdateProfile applies the provided mutations. A profile image is
// uploaded to the media sink and stored as its public URL.
func (s *UserService) UpdateProfile(ctx context.Context, username string, in ProfileUpdate) (*models.User, error) {
	u, err := s.Profile(ctx, username)
	if err != nil {
		return nil, err
	}

	if in.Email != "" {
		u.Email = in.Email
	}
	if in.Password != "" {
		hash, err := hashPassword(in.Password)
		if err != nil {
			return nil, fmt.Errorf("invalid password: %w", err)
		}
		u.PasswordHash = hash
	}
	if in.ProfileImage != "" {
		url, err := s.uploadImage(ctx, in.ProfileImage, profileImageFolder)
		if err != nil {
			return nil, err
		}
		u.ProfileImageURL = url
	}

	if err := s.users.Update(ctx, *u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) ListAll(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *UserService) ExpensesOf(ctx context.Context, userID int64) ([]models.Expense, error) {
	if _, err := s.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.expenses.ListByUser(ctx, userID)
}

func (s *UserService) MonthlyLimitOf(ctx context.Context, userID int64) (*models.MonthlyLimit, error) {
	if _, err := s.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	l, err := s.limits.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLimitNotSet
	}
	return l, nil
}

func (s *UserService) UpdateRole(ctx context.Context, userID int64, role string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.Role = role
	if err := s.users.Update(ctx, *u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, userID int64) error {
	if _, err := s.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.users.Delete(ctx, userID)
}

// uploadImage decodes a base64 data URL ("data:image/...;base64,....")
// and pushes the bytes to the media sink.
func (s *UserService) uploadImage(ctx context.Context, dataURL, folder string) (string, error) {
	return uploadDataURL(ctx, s.uploader, dataURL, folder)
}

func uploadDataURL(ctx context.Context, uploader Uploader, dataURL, folder string) (string, error) {
	if uploader == nil {
		return "", fmt.Errorf("media uploads not configured")
	}
	payload := dataURL
	if i := strings.Index(dataURL, ","); i >= 0 {
		payload = dataURL[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode image payload: %w", err)
	}
	url, err := uploader.Upload(ctx, raw, folder)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return url, nil
}
