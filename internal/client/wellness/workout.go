package wellness

import (
	"context"
	"net/http"
)

type workoutService struct {
	client *Client
}

type rawExercise struct {
	ID             Number `json:"id"`
	ExerciseType   string `json:"exercise_type"`
	Reps           Number `json:"reps"`
	Duration       Number `json:"duration"`
	CaloriesBurned Number `json:"calories_burned"`
	CompletedAt    string `json:"completed_at"`
}

type rawWorkout struct {
	ID                  Number        `json:"id"`
	StartTime           string        `json:"start_time"`
	EndTime             string        `json:"end_time"`
	TotalDuration       Number        `json:"total_duration"`
	TotalCaloriesBurned Number        `json:"total_calories_burned"`
	Exercises           []rawExercise `json:"exercises"`
}

func (s *workoutService) History(ctx context.Context) ([]WorkoutSession, error) {
	const route = "/workout/history"

	env := newListEnvelope[rawWorkout]("workouts", "history")
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, env); err != nil {
		return nil, err
	}

	sessions := make([]WorkoutSession, 0, len(env.items))
	for _, raw := range env.items {
		exercises := make([]Exercise, 0, len(raw.Exercises))
		for _, ex := range raw.Exercises {
			exercises = append(exercises, Exercise{
				ID:             int64(ex.ID),
				Type:           ex.ExerciseType,
				Reps:           ex.Reps.Int(),
				Duration:       ex.Duration.Float64(),
				CaloriesBurned: ex.CaloriesBurned.Float64(),
				CompletedAt:    parseTime(ex.CompletedAt),
			})
		}
		sessions = append(sessions, WorkoutSession{
			ID:             int64(raw.ID),
			StartTime:      parseTime(raw.StartTime),
			EndTime:        parseTime(raw.EndTime),
			Duration:       raw.TotalDuration.Float64(),
			CaloriesBurned: raw.TotalCaloriesBurned.Float64(),
			Exercises:      exercises,
		})
	}
	return sessions, nil
}
