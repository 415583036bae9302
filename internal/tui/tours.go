package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-natours/internal/adapter"
	"github.com/MKhiriev/go-natours/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Booker starts the checkout of a tour. Failures are reported through
// alerts, so there is nothing to return.
type Booker interface {
	BookTour(ctx context.Context, tourID string)
}

// ToursModel lists the public tours and books the selected one.
type ToursModel struct {
	ctx     context.Context
	server  adapter.ServerAdapter
	booking Booker

	tours      []models.Tour
	idx        int
	loading    bool
	processing string
	spinner    spinner.Model
	lastErr    error
}

func NewToursModel(ctx context.Context, server adapter.ServerAdapter, booking Booker) *ToursModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &ToursModel{
		ctx:     ctx,
		server:  server,
		booking: booking,
		spinner: s,
	}
}

// Init reloads the list every time the page is opened.
func (m *ToursModel) Init() tea.Cmd {
	m.loading = true
	m.lastErr = nil
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *ToursModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case toursLoadedMsg:
		m.loading = false
		m.lastErr = msg.err
		if msg.err == nil {
			m.tours = msg.tours
			if m.idx >= len(m.tours) {
				m.idx = 0
			}
		}
		return m, nil

	case bookingDoneMsg:
		if m.processing == msg.tourID {
			m.processing = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading && m.processing == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu)
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.tours)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.reload):
			if !m.loading {
				return m, m.Init()
			}
		case key.Matches(msg, keys.book):
			return m, m.book()
		}
	}

	return m, nil
}

func (m *ToursModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading tours...\n")
	case m.lastErr != nil:
		b.WriteString(errorStyle.Render(humanizeServerUnavailableError(m.lastErr)))
		b.WriteString("\n")
	case len(m.tours) == 0:
		b.WriteString("No tours found.\n")
	default:
		for i, tour := range m.tours {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-40s %3d days  %-9s $%s  ★ %.1f",
				cursor, fitText(tour.Name, 40), tour.Duration, tour.Difficulty,
				tour.Price.StringFixed(0), tour.RatingsAverage))
			if m.processing == strconv.FormatInt(tour.ID, 10) {
				b.WriteString("  ")
				b.WriteString(m.spinner.View())
				b.WriteString(" Processing...")
			}
			b.WriteString("\n")
		}
		if tour, ok := m.current(); ok && tour.Summary != "" {
			b.WriteString("\n")
			b.WriteString(helpStyle.Render(fitText(tour.Summary, 80)))
			b.WriteString("\n")
		}
	}

	return renderPage("ALL TOURS", strings.TrimRight(b.String(), "\n"),
		"b/enter: book tour │ r: reload │ esc: back")
}

func (m *ToursModel) current() (models.Tour, bool) {
	if len(m.tours) == 0 || m.idx < 0 || m.idx >= len(m.tours) {
		return models.Tour{}, false
	}
	return m.tours[m.idx], true
}

// book starts the checkout of the selected tour. A second press while a
// checkout is in flight is ignored.
func (m *ToursModel) book() tea.Cmd {
	if m.processing != "" || m.loading {
		return nil
	}
	tour, ok := m.current()
	if !ok {
		return nil
	}

	tourID := strconv.FormatInt(tour.ID, 10)
	m.processing = tourID

	ctx := m.ctx
	booking := m.booking
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		booking.BookTour(ctx, tourID)
		return bookingDoneMsg{tourID: tourID}
	})
}

func (m *ToursModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		tours, err := server.ListTours(ctx)
		return toursLoadedMsg{tours: tours, err: err}
	}
}
