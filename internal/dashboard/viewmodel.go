package dashboard

import (
	"time"

	"github.com/ivanpetrovic/brio/internal/client/wellness"
)

// ViewModel is the complete render-ready dashboard state. It is rebuilt
// from scratch on every load and swapped in whole; nothing mutates it
// field by field after Load returns. Every numeric field is finite —
// the client's coercion layer guarantees that at the boundary.
type ViewModel struct {
	Account wellness.Account
	Week    wellness.WeeklyOverview

	WaterToday int
	WaterWeek  []wellness.WaterDay

	MoodRecent  []wellness.MoodEntry
	MoodAverage float64 // 1-5 scale, 0 when no check-ins

	StudyStreak  wellness.StudyStreak
	StudyTasks   wellness.StudyTasks
	StudyHistory []wellness.StudySession

	WorkoutHistory []wellness.WorkoutSession
	FocusHistory   []wellness.FocusSession

	GratitudeRecent []wellness.GratitudeEntry
	JournalRecent   []wellness.JournalEntry

	Goals wellness.Goals

	RefreshedAt time.Time
}

// newViewModel returns a ViewModel with every best-effort slice at its
// documented default, indistinguishable from legitimately empty data.
func newViewModel() *ViewModel {
	return &ViewModel{
		WaterWeek:       []wellness.WaterDay{},
		MoodRecent:      []wellness.MoodEntry{},
		StudyTasks:      wellness.StudyTasks{Pending: []wellness.StudyTask{}, Completed: []wellness.StudyTask{}},
		StudyHistory:    []wellness.StudySession{},
		WorkoutHistory:  []wellness.WorkoutSession{},
		FocusHistory:    []wellness.FocusSession{},
		GratitudeRecent: []wellness.GratitudeEntry{},
		JournalRecent:   []wellness.JournalEntry{},
		Goals:           *wellness.DefaultGoals(),
	}
}

// fillWaterWeek re-normalizes the 7-day series to exactly seven days
// ending today, zero-filling any the server omitted.
func fillWaterWeek(days []wellness.WaterDay, today time.Time) []wellness.WaterDay {
	const layout = "2006-01-02"

	byDate := make(map[string]int, len(days))
	for _, d := range days {
		byDate[d.Date] = d.Glasses
	}

	week := make([]wellness.WaterDay, 0, 7)
	for i := 6; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(layout)
		week = append(week, wellness.WaterDay{Date: date, Glasses: byDate[date]})
	}
	return week
}
