package http

import (
	"time"

	"github.com/MKhiriev/go-natours/internal/config"
	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/internal/service"
	"github.com/MKhiriev/go-natours/internal/web"
)

type Handler struct {
	services *service.Services
	views    *web.Views

	development    bool
	publicURL      string
	cookieMaxAge   time.Duration
	requestTimeout time.Duration

	// rateLimit requests per rateWindow are allowed on /api from one IP.
	rateLimit  int
	rateWindow time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, views *web.Views, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		views:          views,
		development:    cfg.App.IsDevelopment(),
		publicURL:      cfg.App.PublicURL,
		cookieMaxAge:   cfg.Auth.CookieMaxAge(),
		requestTimeout: cfg.Server.RequestTimeout,
		rateLimit:      100,
		rateWindow:     time.Hour,
		logger:         logger,
	}
}
