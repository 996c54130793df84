package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ivanpetrovic/brio/internal/dashboard"
)

const loadTimeout = 30 * time.Second

func loadDashboardCmd(ctx context.Context, loader *dashboard.Loader) tea.Cmd {
	if loader == nil {
		return func() tea.Msg {
			return DashboardMsg{}
		}
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, loadTimeout)
		defer cancel()
		vm, err := loader.Load(ctx)
		return DashboardMsg{VM: vm, Err: err}
	}
}
