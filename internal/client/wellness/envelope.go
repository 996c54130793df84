package wellness

import (
	"bytes"
	"time"

	go_json "github.com/goccy/go-json"
)

// The backend's list endpoints have shipped three response shapes over
// time: a bare array, `{"entries": [...]}`, and an object keyed by the
// domain name (`{"moods": [...]}`, `{"workouts": [...]}`, ...). Each
// endpoint declares its accepted wrapper keys once, in priority order,
// and decoding resolves the variants here rather than at call sites.
type listEnvelope[T any] struct {
	keys  []string
	items []T
}

func newListEnvelope[T any](keys ...string) *listEnvelope[T] {
	return &listEnvelope[T]{keys: keys}
}

func (e *listEnvelope[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		e.items = nil
		return nil
	}

	if data[0] == '[' {
		return go_json.Unmarshal(data, &e.items)
	}

	var obj map[string]go_json.RawMessage
	if err := go_json.Unmarshal(data, &obj); err != nil {
		return err
	}
	for _, key := range e.keys {
		raw, ok := obj[key]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}
		return go_json.Unmarshal(raw, &e.items)
	}

	e.items = nil
	return nil
}

// parseTime accepts the backend's ISO 8601 timestamps with or without a
// zone designator. Unparseable or missing values yield the zero time,
// which downstream consumers rank last.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999",
		"2006-01-02T15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
