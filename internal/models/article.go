package models

import "time"

// Article is a user-authored post. New articles start unpublished;
// only an admin can flip the published flag.
type Article struct {
	ID             int64      `json:"id"`
	AuthorID       int64      `json:"-"`
	AuthorUsername string     `json:"author_username"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	ImageURL       string     `json:"image_url,omitempty"`
	Published      bool       `json:"published"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
