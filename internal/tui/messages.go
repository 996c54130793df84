package tui

import (
	"time"

	"github.com/ivanpetrovic/brio/internal/dashboard"
)

const splashDuration = 1200 * time.Millisecond

type SplashTickMsg struct{}

type DashboardMsg struct {
	VM  *dashboard.ViewModel
	Err error
}
