package service

import (
	"context"
	"time"

	"github.com/praneeth00007/backendd/internal/models"
	"github.com/praneeth00007/backendd/internal/repository"
)

const articleImageFolder = "expense-tracker/article-images"

// ArticleService handles the article workflow. New articles start
// unpublished; only an admin can publish.
type ArticleService struct {
	users    repository.Users
	articles repository.Articles
	uploader Uploader
}

func NewArticleService(users repository.Users, articles repository.Articles, uploader Uploader) *ArticleService {
	return &ArticleService{users: users, articles: articles, uploader: uploader}
}

func (s *ArticleService) resolveUser(ctx context.Context, username string) (*models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *ArticleService) Create(ctx context.Context, username string, in ArticleInput) (*models.Article, error) {
	author, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	var imageURL string
	if in.Image != "" {
		imageURL, err = uploadDataURL(ctx, s.uploader, in.Image, articleImageFolder)
		if err != nil {
			return nil, err
		}
	}

	a := models.Article{
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
		Title:          in.Title,
		Content:        in.Content,
		ImageURL:       imageURL,
		Published:      false, // only admin can publish
		CreatedAt:      time.Now().UTC(),
	}
	id, err := s.articles.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	a.ID = id
	return &a, nil
}

func (s *ArticleService) Get(ctx context.Context, id int64) (*models.Article, error) {
	a, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrArticleNotFound
	}
	return a, nil
}

func (s *ArticleService) ListPublished(ctx context.Context) ([]models.Article, error) {
	return s.articles.ListPublished(ctx)
}

func (s *ArticleService) ListByAuthor(ctx context.Context, username string) ([]models.Article, error) {
	author, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.articles.ListByAuthor(ctx, author.ID)
}

// Update mutates an article owned by username; admins may edit any
// article.
func (s *ArticleService) Update(ctx context.Context, id int64, username string, in ArticleInput) (*models.Article, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	requester, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if a.AuthorID != requester.ID && requester.Role != models.RoleAdmin {
		return nil, ErrNotOwner
	}

	a.Title = in.Title
	a.Content = in.Content
	if in.Image != "" {
		url, err := uploadDataURL(ctx, s.uploader, in.Image, articleImageFolder)
		if err != nil {
			return nil, err
		}
		a.ImageURL = url
	}

	if err := s.articles.Update(ctx, *a); err != nil {
		return nil, err
	}
	return a, nil
}

// Publish flips the published flag. Admin only.
func (s *ArticleService) Publish(ctx context.Context, id int64, username string) (*models.Article, error) {
	requester, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if requester.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}

	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	a.Published = true
	a.PublishedAt = &now
	if err := s.articles.Update(ctx, *a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *ArticleService) Delete(ctx context.Context, id int64, username string) error {
	a, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	requester, err := s.resolveUser(ctx, username)
	if err != nil {
		return err
	}
	if a.AuthorID != requester.ID && requester.Role != models.RoleAdmin {
		return ErrNotOwner
	}
	return s.articles.Delete(ctx, id)
}
