// Package spark renders small braille bar series, used for the 7-day
// water history on the dashboard.
package spark

import (
	"strings"

	drawille "github.com/exrook/drawille-go"
)

const (
	// braille dots: 2 per char width, 4 per char height
	barDotsWidth = 3
	gapDots      = 1
	heightDots   = 12
)

// Render draws one bar per value, scaled against maxValue. Values above
// maxValue clip to a full bar; a zero or negative maxValue falls back
// to the series maximum.
func Render(values []int, maxValue int) string {
	if len(values) == 0 {
		return ""
	}

	if maxValue <= 0 {
		for _, v := range values {
			if v > maxValue {
				maxValue = v
			}
		}
		if maxValue <= 0 {
			maxValue = 1
		}
	}

	canvas := drawille.NewCanvas()

	widthDots := len(values)*(barDotsWidth+gapDots) - gapDots
	for i, v := range values {
		barHeight := v * heightDots / maxValue
		if v > 0 && barHeight == 0 {
			barHeight = 1 // a non-zero day always shows at least one dot
		}
		if barHeight > heightDots {
			barHeight = heightDots
		}

		x0 := i * (barDotsWidth + gapDots)
		for x := x0; x < x0+barDotsWidth; x++ {
			for y := heightDots - barHeight; y < heightDots; y++ {
				canvas.Set(x, y)
			}
		}
	}

	rows := canvas.Rows(0, 0, widthDots, heightDots)
	return strings.Join(rows, "\n")
}
