package handler

import (
	"github.com/emzola/catalog/config"
	"github.com/emzola/catalog/internal/jsonlog"
	"github.com/emzola/catalog/service"
	"github.com/emzola/catalog/view"
	"github.com/jellydator/ttlcache/v3"
)

// Handler defines the HTTP layer.
type Handler struct {
	config   config.Config
	logger   *jsonlog.Logger
	sessions *ttlcache.Cache[string, *Session]
	service  service.Service
	views    *view.Renderer
}

// New creates a new instance of Handler.
func New(cfg config.Config, logger *jsonlog.Logger, sessions *ttlcache.Cache[string, *Session], service service.Service, views *view.Renderer) *Handler {
	return &Handler{
		config:   cfg,
		logger:   logger,
		sessions: sessions,
		service:  service,
		views:    views,
	}
}
