package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

type Theme struct {
	background color.Color
	foreground color.Color
	base       lipgloss.Style
	card       lipgloss.Style
	dim        lipgloss.Style
}

func New() Theme {
	var t Theme

	t.background = ColorBgDark
	t.foreground = ColorWhite
	t.base = lipgloss.NewStyle().Foreground(t.foreground)
	t.card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 2)
	t.dim = lipgloss.NewStyle().Foreground(ColorDim)

	return t
}

func (t Theme) Base() lipgloss.Style { return t.base }

func (t Theme) Card() lipgloss.Style { return t.card }

func (t Theme) Dim() lipgloss.Style { return t.dim }

func (t Theme) Background() color.Color { return t.background }

func (t Theme) Foreground() color.Color { return t.foreground }
