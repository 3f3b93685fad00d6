// Package media implements the upload sink for profile and article
// images: raw bytes go in, a public URL comes back.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/praneeth00007/backendd/internal/service"
)

const uploadTimeout = 15 * time.Second

// ErrNotConfigured is returned when no upload endpoint is set.
var ErrNotConfigured = errors.New("media upload endpoint not configured")

// HTTPUploader posts image bytes to a configured endpoint that stores
// them and responds with a public URL.
type HTTPUploader struct {
	endpoint string
	client   *http.Client
}

var _ service.Uploader = (*HTTPUploader)(nil)

func NewHTTPUploader(endpoint string) *HTTPUploader {
	return &HTTPUploader{
		endpoint: endpoint,
		client:   &http.Client{Timeout: uploadTimeout},
	}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload sends the bytes and returns the public URL from the response.
func (u *HTTPUploader) Upload(ctx context.Context, data []byte, folder string) (string, error) {
	if u.endpoint == "" {
		return "", ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint+"?folder="+folder, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("post media upload: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("media upload failed: status %d", resp.StatusCode)
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if out.URL == "" {
		return "", errors.New("media upload response missing url")
	}
	return out.URL, nil
}
