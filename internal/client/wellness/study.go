package wellness

import (
	"context"
	"net/http"
)

type studyService struct {
	client *Client
}

type rawStreak struct {
	CurrentStreak Number `json:"current_streak"`
	LongestStreak Number `json:"longest_streak"`
}

func (s *studyService) Streak(ctx context.Context) (*StudyStreak, error) {
	const route = "/study/streak"

	var raw rawStreak
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &raw); err != nil {
		return nil, err
	}
	return &StudyStreak{
		Current: raw.CurrentStreak.Int(),
		Longest: raw.LongestStreak.Int(),
	}, nil
}

type rawTask struct {
	ID            Number `json:"id"`
	TaskName      string `json:"task_name"`
	EstimatedTime Number `json:"estimated_time"`
	ActualTime    Number `json:"actual_time"`
	Completed     bool   `json:"completed"`
	CreatedAt     string `json:"created_at"`
	CompletedAt   string `json:"completed_at"`
}

func (r rawTask) task() StudyTask {
	return StudyTask{
		ID:            int64(r.ID),
		Name:          r.TaskName,
		EstimatedTime: r.EstimatedTime.Float64(),
		ActualTime:    r.ActualTime.Float64(),
		Completed:     r.Completed,
		CreatedAt:     parseTime(r.CreatedAt),
		CompletedAt:   parseTime(r.CompletedAt),
	}
}

func (s *studyService) Tasks(ctx context.Context) (*StudyTasks, error) {
	const route = "/study/tasks"

	var raw struct {
		Pending   []rawTask `json:"pending"`
		Completed []rawTask `json:"completed"`
	}
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &raw); err != nil {
		return nil, err
	}

	tasks := &StudyTasks{
		Pending:   make([]StudyTask, 0, len(raw.Pending)),
		Completed: make([]StudyTask, 0, len(raw.Completed)),
	}
	for _, t := range raw.Pending {
		tasks.Pending = append(tasks.Pending, t.task())
	}
	for _, t := range raw.Completed {
		tasks.Completed = append(tasks.Completed, t.task())
	}
	return tasks, nil
}

type rawStudySession struct {
	ID               Number `json:"id"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	TotalDuration    Number `json:"total_duration"`
	PomodoroCount    Number `json:"pomodoro_count"`
	DistractionCount Number `json:"distraction_count"`
}

func (s *studyService) History(ctx context.Context) ([]StudySession, error) {
	const route = "/study/history"

	env := newListEnvelope[rawStudySession]("sessions", "history")
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, env); err != nil {
		return nil, err
	}

	sessions := make([]StudySession, 0, len(env.items))
	for _, raw := range env.items {
		sessions = append(sessions, StudySession{
			ID:           int64(raw.ID),
			StartTime:    parseTime(raw.StartTime),
			EndTime:      parseTime(raw.EndTime),
			Duration:     raw.TotalDuration.Float64(),
			Pomodoros:    raw.PomodoroCount.Int(),
			Distractions: raw.DistractionCount.Int(),
		})
	}
	return sessions, nil
}
