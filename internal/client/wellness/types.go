package wellness

import "time"

type Account struct {
	ID       int64
	Username string
	Email    string
	FullName string
}

// WeeklyOverview is the server-side 7-day aggregate behind the main
// dashboard stats row.
type WeeklyOverview struct {
	Workouts       int
	StudyHours     float64
	StudyStreak    int
	MoodAverage    float64
	WaterAverage   float64
	FocusSessions  int
	CaloriesBurned float64
}

type WaterDay struct {
	Date    string // YYYY-MM-DD
	Glasses int
}

type MoodEntry struct {
	ID        int64
	Score     float64 // 1-5 scale
	Notes     string
	CreatedAt time.Time
}

type StudyStreak struct {
	Current int
	Longest int
}

type StudyTask struct {
	ID            int64
	Name          string
	EstimatedTime float64 // minutes
	ActualTime    float64 // minutes
	Completed     bool
	CreatedAt     time.Time
	CompletedAt   time.Time
}

type StudyTasks struct {
	Pending   []StudyTask
	Completed []StudyTask
}

type StudySession struct {
	ID           int64
	StartTime    time.Time
	EndTime      time.Time
	Duration     float64 // seconds
	Pomodoros    int
	Distractions int
}

type WorkoutSession struct {
	ID             int64
	StartTime      time.Time
	EndTime        time.Time
	Duration       float64 // seconds
	CaloriesBurned float64
	Exercises      []Exercise
}

type Exercise struct {
	ID             int64
	Type           string
	Reps           int
	Duration       float64 // seconds
	CaloriesBurned float64
	CompletedAt    time.Time
}

type FocusSession struct {
	ID               int64
	Type             string // breathing, meditation, or ambient
	Duration         float64 // seconds
	BreathingPattern string
	AmbientSound     string
	CompletedAt      time.Time
}

type GratitudeEntry struct {
	ID        int64
	Text      string
	Date      string // YYYY-MM-DD
	CreatedAt time.Time
}

type JournalEntry struct {
	ID        int64
	Text      string
	CreatedAt time.Time
}

type Goals struct {
	WaterGlassesPerDay float64
	CaloriesPerWeek    float64
	StudyHoursPerWeek  float64
}
