package tui

import (
	"context"

	"github.com/MKhiriev/go-natours/internal/adapter"
	"github.com/MKhiriev/go-natours/internal/alert"
	"github.com/MKhiriev/go-natours/internal/app"
	"github.com/MKhiriev/go-natours/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu  = "menu"
	pageLogin = "login"
	pageTours = "tours"
)

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles global quit and the build info window
// 3) handles NavigateTo messages
// 4) turns session results into alerts
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx    context.Context
	server adapter.ServerAdapter
	alerts *alert.Presenter

	pages   map[string]tea.Model
	current tea.Model

	user          *models.User
	quitByUser    bool
	buildInfo     models.AppBuildInfo
	serverVersion string
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(
	ctx context.Context,
	server adapter.ServerAdapter,
	alerts *alert.Presenter,
	pages map[string]tea.Model,
	startPage string,
	buildInfo models.AppBuildInfo,
) RootModel {
	return RootModel{
		ctx:       ctx,
		server:    server,
		alerts:    alerts,
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.isMenuPage():
			r.showBuildInfo = !r.showBuildInfo
			if r.showBuildInfo {
				return r, r.cmdServerVersion()
			}
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		case key.Matches(keyMsg, keys.quit) && r.isMenuPage() && !r.showBuildInfo:
			r.quitByUser = true
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}
		r.showBuildInfo = false
		r.current = next
		return r, r.current.Init()

	case alertChangedMsg:
		return r, nil

	case serverVersionMsg:
		if msg.err == nil {
			r.serverVersion = msg.version
		}
		return r, nil

	case loginResultMsg:
		cmd := r.delegate(msg)
		if msg.err != nil {
			r.alerts.Show(alert.KindError, humanizeServerUnavailableError(msg.err))
			return r, cmd
		}
		user := msg.user
		r.user = &user
		r.alerts.Show(alert.KindSuccess, app.MsgLoggedIn)
		return r, tea.Batch(cmd, navigate(pageTours))

	case logoutRequestedMsg:
		return r, r.cmdLogout()

	case logoutResultMsg:
		if msg.err != nil {
			r.alerts.Show(alert.KindError, app.MsgLogoutFailed)
			return r, nil
		}
		r.user = nil
		r.alerts.Show(alert.KindSuccess, app.MsgLoggedOut)
		return r, nil
	}

	return r, r.delegate(msg)
}

func (r RootModel) View() string {
	var header string
	if a, visible := r.alerts.Current(); visible {
		header = renderAlert(a) + "\n\n"
	}
	if r.user != nil {
		header += helpStyle.Render("Logged in as "+r.user.Name) + "\n"
	}

	if r.showBuildInfo {
		return header + renderBuildInfoWindow(r.buildInfo, r.serverVersion)
	}
	if r.current == nil {
		return header + renderPage("NATOURS", "", "")
	}
	return header + r.current.View()
}

func (r *RootModel) delegate(msg tea.Msg) tea.Cmd {
	if r.current == nil {
		return nil
	}
	updated, cmd := r.current.Update(msg)
	r.current = updated
	return cmd
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

func (r RootModel) cmdLogout() tea.Cmd {
	ctx := r.ctx
	server := r.server
	return func() tea.Msg {
		return logoutResultMsg{err: server.Logout(ctx)}
	}
}

func (r RootModel) cmdServerVersion() tea.Cmd {
	ctx := r.ctx
	server := r.server
	return func() tea.Msg {
		version, err := server.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}
