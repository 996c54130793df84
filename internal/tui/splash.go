package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/ivanpetrovic/brio/internal/tui/theme"
)

const logo = `
 _          _
| |__  _ __(_) ___
| '_ \| '__| |/ _ \
| |_) | |  | | (_) |
|_.__/|_|  |_|\___/
`

func (m *Model) SplashView() string {
	title := lipgloss.NewStyle().
		Foreground(theme.ColorWater).
		Bold(true).
		Render(logo)

	tagline := m.theme.Dim().Render("your day, at a glance")

	return lipgloss.JoinVertical(lipgloss.Center, title, tagline)
}
