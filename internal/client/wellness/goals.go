package wellness

import (
	"context"
	"net/http"
)

type goalsService struct {
	client *Client
}

// Defaults applied when the server has no saved goals or omits a field.
const (
	DefaultWaterGlassesPerDay = 8
	DefaultCaloriesPerWeek    = 2000
	DefaultStudyHoursPerWeek  = 10
)

type rawGoals struct {
	WaterPerDayGlasses *Number `json:"water_per_day_glasses"`
	CaloriesPerWeek    *Number `json:"calories_per_week"`
	StudyHoursPerWeek  *Number `json:"study_hours_per_week"`
}

func DefaultGoals() *Goals {
	return &Goals{
		WaterGlassesPerDay: DefaultWaterGlassesPerDay,
		CaloriesPerWeek:    DefaultCaloriesPerWeek,
		StudyHoursPerWeek:  DefaultStudyHoursPerWeek,
	}
}

func (s *goalsService) Get(ctx context.Context) (*Goals, error) {
	const route = "/goals"

	var raw rawGoals
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &raw); err != nil {
		return nil, err
	}

	goals := DefaultGoals()
	if raw.WaterPerDayGlasses != nil && raw.WaterPerDayGlasses.Float64() > 0 {
		goals.WaterGlassesPerDay = raw.WaterPerDayGlasses.Float64()
	}
	if raw.CaloriesPerWeek != nil && raw.CaloriesPerWeek.Float64() > 0 {
		goals.CaloriesPerWeek = raw.CaloriesPerWeek.Float64()
	}
	if raw.StudyHoursPerWeek != nil && raw.StudyHoursPerWeek.Float64() > 0 {
		goals.StudyHoursPerWeek = raw.StudyHoursPerWeek.Float64()
	}
	return goals, nil
}
