package wellness

import (
	"math"
	"strconv"
	"strings"

	go_json "github.com/goccy/go-json"
)

// AsNumber converts an arbitrary decoded JSON value into a finite
// float64. Numbers and numeric strings pass through; everything else
// (nil, junk strings, objects, arrays, NaN, ±Inf) lands on fallback.
// Every externally sourced numeric enters the view model through here
// or through Number.
func AsNumber(v any, fallback float64) float64 {
	switch x := v.(type) {
	case float64:
		return finiteOr(x, fallback)
	case float32:
		return finiteOr(float64(x), fallback)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case go_json.Number:
		f, err := x.Float64()
		if err != nil {
			return fallback
		}
		return finiteOr(f, fallback)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return fallback
		}
		return finiteOr(f, fallback)
	default:
		return fallback
	}
}

func finiteOr(f, fallback float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return f
}

// Number is a float64 that decodes from a JSON number, a numeric
// string, or null. Anything unparseable decodes to zero instead of
// failing the surrounding payload.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Number(finiteOr(f, 0))
	return nil
}

func (n Number) Float64() float64 { return float64(n) }

func (n Number) Int() int { return int(n) }
