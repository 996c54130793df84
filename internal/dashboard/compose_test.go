package dashboard

import (
	"fmt"
	"testing"
	"time"
)

func TestProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		current  float64
		target   float64
		expected float64
	}{
		{current: 0, target: 8, expected: 0},
		{current: -3, target: 8, expected: 0},
		{current: 4, target: 8, expected: 50},
		{current: 8, target: 8, expected: 100},
		{current: 12, target: 8, expected: 100},
		{current: 5, target: 0, expected: 100},
		{current: 1, target: 3, expected: 100.0 / 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v_of_%v", tt.current, tt.target), func(t *testing.T) {
			t.Parallel()
			if got := Progress(tt.current, tt.target); got != tt.expected {
				t.Errorf("Progress(%v, %v) = %v, want %v", tt.current, tt.target, got, tt.expected)
			}
		})
	}
}

func TestProgressMonotonicAndBounded(t *testing.T) {
	t.Parallel()

	prev := -1.0
	for current := -2.0; current <= 12; current += 0.5 {
		got := Progress(current, 8)
		if got < 0 || got > 100 {
			t.Fatalf("Progress(%v, 8) = %v out of [0,100]", current, got)
		}
		if got < prev {
			t.Fatalf("Progress not monotonic at current=%v: %v < %v", current, got, prev)
		}
		prev = got
	}
}

func TestMoodToTen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    float64
		expected float64
	}{
		{input: 0, expected: 0},
		{input: 1, expected: 2},
		{input: 2.5, expected: 5},
		{input: 5, expected: 10},
		{input: -1, expected: 0},
		{input: 9, expected: 10},
	}

	for _, tt := range tests {
		if got := MoodToTen(tt.input); got != tt.expected {
			t.Errorf("MoodToTen(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}

	for m := 0.0; m <= 5; m += 0.25 {
		got := MoodToTen(m)
		if got != m*2 {
			t.Errorf("MoodToTen(%v) = %v, want %v", m, got, m*2)
		}
		if got < 0 || got > 10 {
			t.Errorf("MoodToTen(%v) = %v out of [0,10]", m, got)
		}
	}
}

func TestMoodCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ten      float64
		expected string
	}{
		{ten: 10, expected: "Excellent"},
		{ten: 8, expected: "Excellent"},
		{ten: 7.9, expected: "Good"},
		{ten: 6, expected: "Good"},
		{ten: 5, expected: "Neutral"},
		{ten: 4, expected: "Neutral"},
		{ten: 3, expected: "Low"},
		{ten: 2, expected: "Low"},
		{ten: 1.9, expected: "Poor"},
		{ten: 0, expected: "Poor"},
	}

	for _, tt := range tests {
		if got := MoodCategory(tt.ten); got != tt.expected {
			t.Errorf("MoodCategory(%v) = %q, want %q", tt.ten, got, tt.expected)
		}
	}
}

func TestStreakMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		days     int
		expected string
	}{
		{days: 0, expected: "Start a session today to begin your streak"},
		{days: 1, expected: "Keep going!"},
		{days: 2, expected: "Keep going!"},
		{days: 3, expected: "Great consistency!"},
		{days: 6, expected: "Great consistency!"},
		{days: 7, expected: "Amazing dedication!"},
		{days: 30, expected: "Amazing dedication!"},
	}

	for _, tt := range tests {
		if got := StreakMessage(tt.days); got != tt.expected {
			t.Errorf("StreakMessage(%d) = %q, want %q", tt.days, got, tt.expected)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		t        time.Time
		expected string
	}{
		{name: "just now", t: now.Add(-30 * time.Second), expected: "Just now"},
		{name: "minutes", t: now.Add(-10 * time.Minute), expected: "10 min ago"},
		{name: "59 minutes", t: now.Add(-59 * time.Minute), expected: "59 min ago"},
		{name: "hours", t: now.Add(-5 * time.Hour), expected: "5 hr ago"},
		{name: "23 hours", t: now.Add(-23 * time.Hour), expected: "23 hr ago"},
		{name: "yesterday", t: now.Add(-30 * time.Hour), expected: "Yesterday"},
		{name: "two days is a date", t: now.Add(-48 * time.Hour), expected: "Jan 8, 2026"},
		{name: "old entry", t: time.Date(2025, 11, 2, 9, 0, 0, 0, time.UTC), expected: "Nov 2, 2025"},
		{name: "zero time", t: time.Time{}, expected: "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RelativeTime(now, tt.t); got != tt.expected {
				t.Errorf("RelativeTime(now, %v) = %q, want %q", tt.t, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seconds  float64
		expected string
	}{
		{seconds: 45, expected: "45s"},
		{seconds: 300, expected: "5m"},
		{seconds: 3600, expected: "1h 00m"},
		{seconds: 5100, expected: "1h 25m"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.seconds); got != tt.expected {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.seconds, got, tt.expected)
		}
	}
}
