// Package tui implements the terminal client: a Bubble Tea program with a
// menu, a login form and the tour list from which a tour is booked.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-natours/internal/adapter"
	"github.com/MKhiriev/go-natours/internal/alert"
	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	server    adapter.ServerAdapter
	booking   Booker
	alerts    *alert.Presenter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(
	server adapter.ServerAdapter,
	booking Booker,
	alerts *alert.Presenter,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *TUI {
	return &TUI{
		server:    server,
		booking:   booking,
		alerts:    alerts,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user quits or ctx is cancelled. Quitting through the
// UI returns [ErrUserQuit]; cancellation returns nil.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageMenu:  NewMenuModel(),
		pageLogin: NewLoginModel(ctx, t.server),
		pageTours: NewToursModel(ctx, t.server, t.booking),
	}
	root := NewRootModel(ctx, t.server, t.alerts, pages, pageMenu, t.buildInfo)

	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	// Send blocks until the event loop receives the message, and alerts are
	// also raised from inside Update.
	t.alerts.SetOnChange(func(alert.Alert, bool) {
		go program.Send(alertChangedMsg{})
	})
	defer t.alerts.SetOnChange(nil)

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Str("func", "*TUI.Run").Msg("terminal ui stopped by signal")
			return nil
		}
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
