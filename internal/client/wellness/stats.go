package wellness

import (
	"context"
	"net/http"
)

type statsService struct {
	client *Client
}

type rawOverview struct {
	WorkoutsThisWeek        Number `json:"workouts_this_week"`
	StudyHoursThisWeek      Number `json:"study_hours_this_week"`
	CurrentStudyStreak      Number `json:"current_study_streak"`
	AvgMood7Days            Number `json:"avg_mood_7days"`
	WaterAvg7Days           Number `json:"water_avg_7days"`
	FocusSessionsThisWeek   Number `json:"focus_sessions_this_week"`
	TotalCaloriesBurnedWeek Number `json:"total_calories_burned_week"`
}

func (s *statsService) Overview(ctx context.Context) (*WeeklyOverview, error) {
	const route = "/stats/overview"

	var raw rawOverview
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &raw); err != nil {
		return nil, err
	}

	return &WeeklyOverview{
		Workouts:       raw.WorkoutsThisWeek.Int(),
		StudyHours:     raw.StudyHoursThisWeek.Float64(),
		StudyStreak:    raw.CurrentStudyStreak.Int(),
		MoodAverage:    raw.AvgMood7Days.Float64(),
		WaterAverage:   raw.WaterAvg7Days.Float64(),
		FocusSessions:  raw.FocusSessionsThisWeek.Int(),
		CaloriesBurned: raw.TotalCaloriesBurnedWeek.Float64(),
	}, nil
}
