package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-natours/internal/adapter"
	"github.com/MKhiriev/go-natours/internal/alert"
	"github.com/MKhiriev/go-natours/internal/checkout"
	"github.com/MKhiriev/go-natours/internal/config"
	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/internal/tui"
	"github.com/MKhiriev/go-natours/models"
)

type App struct {
	alerts *alert.Presenter
	tui    *tui.TUI
	logger *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	alerts := alert.NewPresenter()
	initiator := checkout.NewInitiator(serverAdapter, checkout.NewBrowserRedirector(logger), alerts, logger)
	ui := tui.New(serverAdapter, initiator, alerts, buildInfo, logger)

	return &App{alerts: alerts, tui: ui, logger: logger}, nil
}

func (a *App) Run(ctx context.Context) error {
	defer a.alerts.Hide()

	a.logger.Info().Str("func", "*App.Run").Msg("client started")
	if err := a.tui.Run(ctx); err != nil {
		return err
	}
	a.logger.Info().Str("func", "*App.Run").Msg("client stopped")
	return nil
}
