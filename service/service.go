package service

import (
	"context"

	"github.com/emzola/catalog/config"
	"github.com/emzola/catalog/data"
	"github.com/emzola/catalog/internal/jsonlog"
	"github.com/emzola/catalog/repository"
)

type Service interface {
	NewCatalog(notify Notifier) *Catalog
	Seed(ctx context.Context) (int, error)
	APIHealth(ctx context.Context) (*data.Health, error)
}

// service defines the service layer.
type service struct {
	config config.Config
	logger *jsonlog.Logger
	repo   repository.Repository
}

// New creates a new instance of Service.
func New(cfg config.Config, logger *jsonlog.Logger, repo repository.Repository) *service {
	return &service{
		config: cfg,
		logger: logger,
		repo:   repo,
	}
}

// NewCatalog returns an empty controller that alerts through notify. The catalog is
// not loaded until Load is called.
func (s *service) NewCatalog(notify Notifier) *Catalog {
	return NewCatalog(s.logger, s.repo, notify)
}

// APIHealth asks the books API for its health report.
func (s *service) APIHealth(ctx context.Context) (*data.Health, error) {
	return s.repo.Health(ctx)
}
