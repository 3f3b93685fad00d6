package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/praneeth00007/backendd/internal/models"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserSQLite)(nil)

const (
	insertUserSQL = `
		INSERT INTO users (username, email, password_hash, role, profile_image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	selectUserByIDSQL       = `SELECT id, username, email, password_hash, role, profile_image_url, created_at FROM users WHERE id = ?`
	selectUserByUsernameSQL = `SELECT id, username, email, password_hash, role, profile_image_url, created_at FROM users WHERE username = ?`
	existsByUsernameSQL     = `SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`
	existsByEmailSQL        = `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`
	listUsersSQL            = `SELECT id, username, email, password_hash, role, profile_image_url, created_at FROM users ORDER BY id ASC`
	countUsersSQL           = `SELECT COUNT(*) FROM users`
	updateUserSQL           = `UPDATE users SET email = ?, password_hash = ?, role = ?, profile_image_url = ? WHERE id = ?`
	deleteUserSQL           = `DELETE FROM users WHERE id = ?`
)

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	var imageURL sql.NullString
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &imageURL, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.ProfileImageURL = imageURL.String
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}

// Create inserts a new user and returns its ID.
func (r *UserSQLite) Create(ctx context.Context, u models.User) (int64, error) {
	var imageURL any
	if u.ProfileImageURL != "" {
		imageURL = u.ProfileImageURL
	}
	res, err := r.db.ExecContext(ctx, insertUserSQL,
		u.Username, u.Email, u.PasswordHash, u.Role, imageURL, u.CreatedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Username, err)
	}
	return lastID, nil
}

// GetByID fetches a user by ID. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user id=%d: %w", id, err)
	}
	return u, nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return u, nil
}

func (r *UserSQLite) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, existsByUsernameSQL, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists user %q: %w", username, err)
	}
	return exists, nil
}

func (r *UserSQLite) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, existsByEmailSQL, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists email %q: %w", email, err)
	}
	return exists, nil
}

func (r *UserSQLite) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, listUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := make([]models.User, 0, 16)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		out = append(out, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}

func (r *UserSQLite) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, countUsersSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// Update persists mutable fields (email, password hash, role, image URL).
// Username and created_at are immutable after creation.
func (r *UserSQLite) Update(ctx context.Context, u models.User) error {
	var imageURL any
	if u.ProfileImageURL != "" {
		imageURL = u.ProfileImageURL
	}
	if _, err := r.db.ExecContext(ctx, updateUserSQL,
		u.Email, u.PasswordHash, u.Role, imageURL, u.ID); err != nil {
		return fmt.Errorf("update user id=%d: %w", u.ID, err)
	}
	return nil
}

func (r *UserSQLite) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, deleteUserSQL, id); err != nil {
		return fmt.Errorf("delete user id=%d: %w", id, err)
	}
	return nil
}
