package dashboard

import (
	"fmt"
	"time"
)

// Progress converts current/target into a percentage clamped to
// [0, 100]. A non-positive target counts as already met.
func Progress(current, target float64) float64 {
	if current <= 0 {
		return 0
	}
	if target <= 0 || current >= target {
		return 100
	}
	return current / target * 100
}

// MoodToTen converts the backend's 1-5 mood score to the 0-10 display
// scale. Out-of-range inputs are clamped before scaling.
func MoodToTen(score float64) float64 {
	if score < 0 {
		score = 0
	}
	if score > 5 {
		score = 5
	}
	return score * 2
}

// MoodCategory buckets a 0-10 mood value.
func MoodCategory(ten float64) string {
	switch {
	case ten >= 8:
		return "Excellent"
	case ten >= 6:
		return "Good"
	case ten >= 4:
		return "Neutral"
	case ten >= 2:
		return "Low"
	default:
		return "Poor"
	}
}

// MoodEmoji mirrors MoodCategory's thresholds.
func MoodEmoji(ten float64) string {
	switch {
	case ten >= 8:
		return "😄"
	case ten >= 6:
		return "🙂"
	case ten >= 4:
		return "😐"
	case ten >= 2:
		return "🙁"
	default:
		return "😞"
	}
}

func StreakMessage(days int) string {
	switch {
	case days <= 0:
		return "Start a session today to begin your streak"
	case days < 3:
		return "Keep going!"
	case days < 7:
		return "Great consistency!"
	default:
		return "Amazing dedication!"
	}
}

// Placeholder shown for unparseable timestamps.
const noTimeLabel = "—"

// RelativeTime renders t relative to now. The only day-granularity
// special case is "Yesterday"; anything older shows as a date.
func RelativeTime(now, t time.Time) string {
	if t.IsZero() {
		return noTimeLabel
	}

	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%d min ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%d hr ago", int(diff.Hours()))
	case diff < 48*time.Hour:
		return "Yesterday"
	default:
		return t.Format("Jan 2, 2006")
	}
}

// formatDuration renders a duration in seconds for card labels.
func formatDuration(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second))
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		h := int(d.Hours())
		m := int(d.Minutes()) % 60
		return fmt.Sprintf("%dh %02dm", h, m)
	}
}
