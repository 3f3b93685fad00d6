package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/praneeth00007/backendd/internal/models"
)

type ArticleSQLite struct {
	db *sql.DB
}

func NewArticleSQLite(db *sql.DB) *ArticleSQLite {
	return &ArticleSQLite{db: db}
}

var _ Articles = (*ArticleSQLite)(nil)

const (
	insertArticleSQL = `
		INSERT INTO articles (author_id, title, content, image_url, published, published_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	selectArticleByIDSQL = `
		SELECT a.id, a.author_id, u.username, a.title, a.content, a.image_url, a.published, a.published_at, a.created_at
		FROM articles a JOIN users u ON u.id = a.author_id
		WHERE a.id = ?
	`
	selectPublishedArticlesSQL = `
		SELECT a.id, a.author_id, u.username, a.title, a.content, a.image_url, a.published, a.published_at, a.created_at
		FROM articles a JOIN users u ON u.id = a.author_id
		WHERE a.published = 1 ORDER BY a.published_at DESC
	`
	selectArticlesByAuthorSQL = `
		SELECT a.id, a.author_id, u.username, a.title, a.content, a.image_url, a.published, a.published_at, a.created_at
		FROM articles a JOIN users u ON u.id = a.author_id
		WHERE a.author_id = ? ORDER BY a.created_at DESC
	`
	updateArticleSQL = `
		UPDATE articles SET title = ?, content = ?, image_url = ?, published = ?, published_at = ?
		WHERE id = ?
	`
	deleteArticleSQL = `DELETE FROM articles WHERE id = ?`
)

func scanArticle(row interface{ Scan(...any) error }) (*models.Article, error) {
	var a models.Article
	var imageURL sql.NullString
	var publishedAt sql.NullTime
	if err := row.Scan(&a.ID, &a.AuthorID, &a.AuthorUsername, &a.Title, &a.Content,
		&imageURL, &a.Published, &publishedAt, &a.CreatedAt); err != nil {
		return nil, err
	}
	a.ImageURL = imageURL.String
	if publishedAt.Valid {
		t := publishedAt.Time.UTC()
		a.PublishedAt = &t
	}
	a.CreatedAt = a.CreatedAt.UTC()
	return &a, nil
}

func (r *ArticleSQLite) Create(ctx context.Context, a models.Article) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertArticleSQL,
		a.AuthorID, a.Title, a.Content, nullIfEmpty(a.ImageURL), a.Published, nullTime(a.PublishedAt), a.CreatedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("insert article by author %d: %w", a.AuthorID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for article: %w", err)
	}
	return lastID, nil
}

// GetByID fetches an article with its author's username. Returns
// (nil, nil) if not found.
func (r *ArticleSQLite) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	a, err := scanArticle(r.db.QueryRowContext(ctx, selectArticleByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select article id=%d: %w", id, err)
	}
	return a, nil
}

func (r *ArticleSQLite) ListPublished(ctx context.Context) ([]models.Article, error) {
	return r.queryArticles(ctx, selectPublishedArticlesSQL)
}

func (r *ArticleSQLite) ListByAuthor(ctx context.Context, authorID int64) ([]models.Article, error) {
	return r.queryArticles(ctx, selectArticlesByAuthorSQL, authorID)
}

func (r *ArticleSQLite) Update(ctx context.Context, a models.Article) error {
	if _, err := r.db.ExecContext(ctx, updateArticleSQL,
		a.Title, a.Content, nullIfEmpty(a.ImageURL), a.Published, nullTime(a.PublishedAt), a.ID); err != nil {
		return fmt.Errorf("update article id=%d: %w", a.ID, err)
	}
	return nil
}

func (r *ArticleSQLite) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, deleteArticleSQL, id); err != nil {
		return fmt.Errorf("delete article id=%d: %w", id, err)
	}
	return nil
}

func (r *ArticleSQLite) queryArticles(ctx context.Context, query string, args ...any) ([]models.Article, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	out := make([]models.Article, 0, 16)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article row: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return out, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
