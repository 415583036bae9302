package tui

import (
	"github.com/MKhiriev/go-natours/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page of [RootModel].
type NavigateTo struct {
	Page string
}

type loginResultMsg struct {
	user models.User
	err  error
}

type logoutRequestedMsg struct{}

type logoutResultMsg struct {
	err error
}

type toursLoadedMsg struct {
	tours []models.Tour
	err   error
}

type bookingDoneMsg struct {
	tourID string
}

type serverVersionMsg struct {
	version string
	err     error
}

// alertChangedMsg only triggers a redraw; the banner itself is read from
// the presenter.
type alertChangedMsg struct{}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
