package wellness

import "context"

type AccountService interface {
	Get(ctx context.Context) (*Account, error)
	Login(ctx context.Context, email, passwordHash string) (*Account, string, error)
	Logout(ctx context.Context) error
}

type StatsService interface {
	Overview(ctx context.Context) (*WeeklyOverview, error)
}

type WaterService interface {
	Today(ctx context.Context) (*WaterDay, error)
	Week(ctx context.Context) ([]WaterDay, error)
}

type MoodService interface {
	Recent(ctx context.Context) ([]MoodEntry, error)
	Average(ctx context.Context) (float64, error)
}

type StudyService interface {
	Streak(ctx context.Context) (*StudyStreak, error)
	Tasks(ctx context.Context) (*StudyTasks, error)
	History(ctx context.Context) ([]StudySession, error)
}

type WorkoutService interface {
	History(ctx context.Context) ([]WorkoutSession, error)
}

type FocusService interface {
	History(ctx context.Context) ([]FocusSession, error)
}

type GratitudeService interface {
	Recent(ctx context.Context) ([]GratitudeEntry, error)
}

type JournalService interface {
	Recent(ctx context.Context) ([]JournalEntry, error)
}

type GoalsService interface {
	Get(ctx context.Context) (*Goals, error)
}
