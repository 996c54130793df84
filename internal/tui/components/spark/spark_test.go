package spark

import (
	"strings"
	"testing"
)

func TestRenderDimensions(t *testing.T) {
	t.Parallel()

	out := Render([]int{0, 2, 4, 6, 8, 3, 5}, 8)
	lines := strings.Split(out, "\n")

	// 12 dots tall = 3 braille rows
	if len(lines) != 3 {
		t.Errorf("got %d rows, want 3", len(lines))
	}
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	if out := Render(nil, 8); out != "" {
		t.Errorf("empty series should render nothing, got %q", out)
	}
}

func TestRenderAllZero(t *testing.T) {
	t.Parallel()

	out := Render([]int{0, 0, 0}, 0)
	for _, r := range out {
		if r != '\n' && r != ' ' && r != '⠀' {
			t.Fatalf("all-zero series should draw no dots, found %q", r)
		}
	}
}

func TestRenderClipsAboveMax(t *testing.T) {
	t.Parallel()

	// must not panic or overdraw when a value exceeds the scale
	full := Render([]int{20}, 8)
	ref := Render([]int{8}, 8)
	if full != ref {
		t.Errorf("overflowing bar should clip to a full bar")
	}
}

func TestRenderNonZeroAlwaysVisible(t *testing.T) {
	t.Parallel()

	out := Render([]int{1}, 1000)
	hasDot := false
	for _, r := range out {
		if r != '\n' && r != ' ' && r != '⠀' {
			hasDot = true
		}
	}
	if !hasDot {
		t.Error("tiny non-zero value should still draw at least one dot")
	}
}
