package wellness

import (
	"math"
	"testing"

	go_json "github.com/goccy/go-json"
)

func TestAsNumber(t *testing.T) {
	t.Parallel()

	const fallback = -1.0

	tests := []struct {
		name     string
		value    any
		expected float64
	}{
		{name: "nil", value: nil, expected: fallback},
		{name: "junk string", value: "abc", expected: fallback},
		{name: "empty string", value: "", expected: fallback},
		{name: "NaN", value: math.NaN(), expected: fallback},
		{name: "positive infinity", value: math.Inf(1), expected: fallback},
		{name: "negative infinity", value: math.Inf(-1), expected: fallback},
		{name: "object", value: map[string]any{}, expected: fallback},
		{name: "array", value: []any{}, expected: fallback},
		{name: "bool", value: true, expected: fallback},
		{name: "numeric string", value: "42", expected: 42},
		{name: "float string", value: "3.14", expected: 3.14},
		{name: "padded numeric string", value: " 7 ", expected: 7},
		{name: "float64", value: 42.0, expected: 42},
		{name: "int", value: 42, expected: 42},
		{name: "json number", value: go_json.Number("2.5"), expected: 2.5},
		{name: "junk json number", value: go_json.Number("x"), expected: fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := AsNumber(tt.value, fallback); got != tt.expected {
				t.Errorf("AsNumber(%v) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestNumberUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		payload  string
		expected float64
	}{
		{name: "number", payload: `{"n": 3}`, expected: 3},
		{name: "float", payload: `{"n": 3.5}`, expected: 3.5},
		{name: "numeric string", payload: `{"n": "12"}`, expected: 12},
		{name: "null", payload: `{"n": null}`, expected: 0},
		{name: "missing", payload: `{}`, expected: 0},
		{name: "junk string", payload: `{"n": "twelve"}`, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out struct {
				N Number `json:"n"`
			}
			if err := go_json.Unmarshal([]byte(tt.payload), &out); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if out.N.Float64() != tt.expected {
				t.Errorf("decoded %v, want %v", out.N.Float64(), tt.expected)
			}
		})
	}
}

func TestNumberNeverFinite(t *testing.T) {
	t.Parallel()

	// a payload that parses to +Inf must still land on a finite value
	var out struct {
		N Number `json:"n"`
	}
	if err := go_json.Unmarshal([]byte(`{"n": "1e999"}`), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if math.IsInf(out.N.Float64(), 0) || math.IsNaN(out.N.Float64()) {
		t.Errorf("decoded non-finite %v", out.N.Float64())
	}
}
