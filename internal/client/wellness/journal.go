package wellness

import (
	"context"
	"net/http"
)

type gratitudeService struct {
	client *Client
}

type rawGratitude struct {
	ID        Number `json:"id"`
	EntryText string `json:"entry_text"`
	Date      string `json:"date"`
	CreatedAt string `json:"created_at"`
}

func (s *gratitudeService) Recent(ctx context.Context) ([]GratitudeEntry, error) {
	const route = "/gratitude/recent"

	env := newListEnvelope[rawGratitude]("entries", "recent")
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, env); err != nil {
		return nil, err
	}

	entries := make([]GratitudeEntry, 0, len(env.items))
	for _, raw := range env.items {
		createdAt := parseTime(raw.CreatedAt)
		if createdAt.IsZero() {
			// older rows only carry the entry date
			createdAt = parseTime(raw.Date)
		}
		entries = append(entries, GratitudeEntry{
			ID:        int64(raw.ID),
			Text:      raw.EntryText,
			Date:      raw.Date,
			CreatedAt: createdAt,
		})
	}
	return entries, nil
}

type journalService struct {
	client *Client
}

type rawJournal struct {
	ID        Number `json:"id"`
	EntryText string `json:"entry_text"`
	Preview   string `json:"preview"`
	CreatedAt string `json:"created_at"`
}

func (s *journalService) Recent(ctx context.Context) ([]JournalEntry, error) {
	const route = "/journal/recent"

	env := newListEnvelope[rawJournal]("entries", "recent")
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, env); err != nil {
		return nil, err
	}

	entries := make([]JournalEntry, 0, len(env.items))
	for _, raw := range env.items {
		text := raw.EntryText
		if text == "" {
			text = raw.Preview
		}
		entries = append(entries, JournalEntry{
			ID:        int64(raw.ID),
			Text:      text,
			CreatedAt: parseTime(raw.CreatedAt),
		})
	}
	return entries, nil
}
