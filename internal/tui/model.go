package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ivanpetrovic/brio/internal/dashboard"
	"github.com/ivanpetrovic/brio/internal/tui/theme"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	splashPage page = iota
	dashboardPage
)

type Model struct {
	ready          bool
	page           page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	controller     *dashboard.Controller
	deps           Deps
}

func New(deps Deps) Model {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	return Model{
		page:       splashPage,
		theme:      theme.New(),
		controller: dashboard.NewController(),
		deps:       deps,
	}
}

func (m *Model) Init() tea.Cmd {
	m.controller.StartLoad()
	return tea.Batch(
		tea.Tick(splashDuration, func(t time.Time) tea.Msg {
			return SplashTickMsg{}
		}),
		loadDashboardCmd(m.deps.Ctx, m.deps.Loader),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.refresh()
		}

	case SplashTickMsg:
		m.page = dashboardPage

	case DashboardMsg:
		if msg.Err != nil {
			m.controller.Fail(msg.Err)
		} else {
			m.controller.Complete(msg.VM)
		}
	}

	return m, nil
}

// refresh is a no-op while a load is already in flight; retries are
// user-initiated but never stacked.
func (m *Model) refresh() tea.Cmd {
	switch m.controller.Status() {
	case dashboard.StatusLoading, dashboard.StatusRefreshing:
		return nil
	}
	m.controller.StartLoad()
	return loadDashboardCmd(m.deps.Ctx, m.deps.Loader)
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true

	if m.page == splashPage {
		view.BackgroundColor = theme.ColorBlack
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	var content string
	switch m.page {
	case splashPage:
		content = m.SplashView()
	case dashboardPage:
		content = m.DashboardView()
	}

	view.SetContent(lipgloss.Place(
		m.viewportWidth,
		m.viewportHeight,
		lipgloss.Center,
		lipgloss.Center,
		content,
	))
	return view
}
