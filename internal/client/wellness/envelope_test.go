package wellness

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	go_json "github.com/goccy/go-json"
)

func TestListEnvelopeShapes(t *testing.T) {
	t.Parallel()

	type item struct {
		ID Number `json:"id"`
	}

	tests := []struct {
		name     string
		payload  string
		expected []int
	}{
		{
			name:     "bare array",
			payload:  `[{"id": 1}, {"id": 2}]`,
			expected: []int{1, 2},
		},
		{
			name:     "entries wrapper",
			payload:  `{"entries": [{"id": 3}]}`,
			expected: []int{3},
		},
		{
			name:     "domain wrapper",
			payload:  `{"moods": [{"id": 4}]}`,
			expected: []int{4},
		},
		{
			name:     "priority order prefers first key",
			payload:  `{"entries": [{"id": 9}], "moods": [{"id": 5}]}`,
			expected: []int{5},
		},
		{
			name:     "null body",
			payload:  `null`,
			expected: nil,
		},
		{
			name:     "null wrapper value falls through",
			payload:  `{"moods": null, "entries": [{"id": 6}]}`,
			expected: []int{6},
		},
		{
			name:     "unrecognized wrapper",
			payload:  `{"data": [{"id": 7}]}`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newListEnvelope[item]("moods", "entries", "recent")
			if err := go_json.Unmarshal([]byte(tt.payload), env); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			var ids []int
			for _, it := range env.items {
				ids = append(ids, it.ID.Int())
			}
			if diff := cmp.Diff(tt.expected, ids); diff != "" {
				t.Errorf("ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "rfc3339",
			input:    "2026-01-10T08:30:00Z",
			expected: time.Date(2026, 1, 10, 8, 30, 0, 0, time.UTC),
		},
		{
			name:     "no zone",
			input:    "2026-01-10T08:30:00",
			expected: time.Date(2026, 1, 10, 8, 30, 0, 0, time.UTC),
		},
		{
			name:     "fractional seconds no zone",
			input:    "2026-01-10T08:30:00.123456",
			expected: time.Date(2026, 1, 10, 8, 30, 0, 123456000, time.UTC),
		},
		{
			name:     "date only",
			input:    "2026-01-10",
			expected: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{name: "empty", input: "", expected: time.Time{}},
		{name: "junk", input: "not-a-time", expected: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := parseTime(tt.input); !got.Equal(tt.expected) {
				t.Errorf("parseTime(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
