package dashboard

import (
	"fmt"
	"sort"
	"time"
	"unicode"
)

const activityFeedLimit = 6

// ActivityItem is one row of the recent-activity feed. Items are
// derived, never persisted.
type ActivityItem struct {
	Icon      string
	Title     string
	TimeLabel string
	Detail    string // optional right-hand label
	Timestamp time.Time
}

// BuildActivityFeed merges the most recent item from every history
// source into one feed, newest first, capped at six rows. Today's
// water count always appears, stamped just before now so it floats to
// the top when nothing else is recent. Items without a usable
// timestamp sink to the bottom.
func BuildActivityFeed(vm *ViewModel, now time.Time) []ActivityItem {
	var items []ActivityItem

	if len(vm.WorkoutHistory) > 0 {
		w := vm.WorkoutHistory[0]
		items = append(items, ActivityItem{
			Icon:      "🏋️",
			Title:     "Workout session",
			Detail:    fmt.Sprintf("%d kcal", int(w.CaloriesBurned)),
			Timestamp: w.StartTime,
		})
	}

	if len(vm.StudyHistory) > 0 {
		s := vm.StudyHistory[0]
		items = append(items, ActivityItem{
			Icon:      "📚",
			Title:     "Study session",
			Detail:    formatDuration(s.Duration),
			Timestamp: s.StartTime,
		})
	}

	if len(vm.FocusHistory) > 0 {
		f := vm.FocusHistory[0]
		items = append(items, ActivityItem{
			Icon:      "🧘",
			Title:     capitalize(f.Type) + " session",
			Detail:    formatDuration(f.Duration),
			Timestamp: f.CompletedAt,
		})
	}

	if len(vm.MoodRecent) > 0 {
		m := vm.MoodRecent[0]
		ten := MoodToTen(m.Score)
		items = append(items, ActivityItem{
			Icon:      MoodEmoji(ten),
			Title:     "Mood check-in",
			Detail:    MoodCategory(ten),
			Timestamp: m.CreatedAt,
		})
	}

	items = append(items, ActivityItem{
		Icon:      "💧",
		Title:     "Water intake",
		Detail:    fmt.Sprintf("%d glasses today", vm.WaterToday),
		Timestamp: now.Add(-time.Second),
	})

	if len(vm.GratitudeRecent) > 0 {
		g := vm.GratitudeRecent[0]
		items = append(items, ActivityItem{
			Icon:      "🙏",
			Title:     "Gratitude entry",
			Timestamp: g.CreatedAt,
		})
	}

	if len(vm.JournalRecent) > 0 {
		j := vm.JournalRecent[0]
		items = append(items, ActivityItem{
			Icon:      "📓",
			Title:     "Journal entry",
			Timestamp: j.CreatedAt,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})

	if len(items) > activityFeedLimit {
		items = items[:activityFeedLimit]
	}

	for i := range items {
		items[i].TimeLabel = RelativeTime(now, items[i].Timestamp)
	}

	return items
}

func capitalize(s string) string {
	if s == "" {
		return "Focus"
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
