package wellness

import (
	"context"
	"net/http"
)

type focusService struct {
	client *Client
}

type rawFocusSession struct {
	ID               Number `json:"id"`
	SessionType      string `json:"session_type"`
	Duration         Number `json:"duration"`
	BreathingPattern string `json:"breathing_pattern"`
	AmbientSound     string `json:"ambient_sound"`
	CompletedAt      string `json:"completed_at"`
}

func (s *focusService) History(ctx context.Context) ([]FocusSession, error) {
	const route = "/focus/history"

	env := newListEnvelope[rawFocusSession]("sessions", "history")
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, env); err != nil {
		return nil, err
	}

	sessions := make([]FocusSession, 0, len(env.items))
	for _, raw := range env.items {
		sessions = append(sessions, FocusSession{
			ID:               int64(raw.ID),
			Type:             raw.SessionType,
			Duration:         raw.Duration.Float64(),
			BreathingPattern: raw.BreathingPattern,
			AmbientSound:     raw.AmbientSound,
			CompletedAt:      parseTime(raw.CompletedAt),
		})
	}
	return sessions, nil
}
