package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/emzola/catalog/data"
)

type Repository interface {
	books
	Health(ctx context.Context) (*data.Health, error)
}

// repository talks to the external books API.
type repository struct {
	baseURL *url.URL
	client  *http.Client
}

// New creates a repository for the books API rooted at baseURL.
func New(baseURL string, client *http.Client) (*repository, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("repository: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("repository: invalid base URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("repository: base URL %q must be absolute", baseURL)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &repository{baseURL: parsed, client: client}, nil
}

// Health reports the books API status.
func (r *repository) Health(ctx context.Context) (*data.Health, error) {
	var health data.Health
	err := r.do(ctx, http.MethodGet, "/api/health", nil, &health)
	if err != nil {
		return nil, err
	}
	return &health, nil
}
