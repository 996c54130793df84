package wellness

import (
	"bytes"
	"context"
	"net/http"

	go_json "github.com/goccy/go-json"
)

type moodService struct {
	client *Client
}

type rawMood struct {
	ID        Number `json:"id"`
	MoodScore Number `json:"mood_score"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"created_at"`
}

func (s *moodService) Recent(ctx context.Context) ([]MoodEntry, error) {
	const route = "/mood/recent"

	env := newListEnvelope[rawMood]("moods", "entries", "recent")
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, env); err != nil {
		return nil, err
	}

	entries := make([]MoodEntry, 0, len(env.items))
	for _, raw := range env.items {
		entries = append(entries, MoodEntry{
			ID:        int64(raw.ID),
			Score:     raw.MoodScore.Float64(),
			Notes:     raw.Notes,
			CreatedAt: parseTime(raw.CreatedAt),
		})
	}
	return entries, nil
}

// moodAverage accepts `{"average": 3.4}`, the older `{"avg": 3.4}`, and
// the oldest bare-number body.
type moodAverage struct {
	value Number
}

func (m *moodAverage) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Average *Number `json:"average"`
			Avg     *Number `json:"avg"`
		}
		if err := go_json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Average != nil {
			m.value = *obj.Average
		} else if obj.Avg != nil {
			m.value = *obj.Avg
		}
		return nil
	}
	return m.value.UnmarshalJSON(data)
}

func (s *moodService) Average(ctx context.Context) (float64, error) {
	const route = "/mood/average"

	var avg moodAverage
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &avg); err != nil {
		return 0, err
	}
	return avg.value.Float64(), nil
}
