package wellness

import (
	"context"
	"net/http"
)

type waterService struct {
	client *Client
}

// rawWaterToday has carried three field names for the same count over
// the backend's lifetime. First non-nil wins, in this order.
type rawWaterToday struct {
	Glasses      *Number `json:"glasses"`
	TotalGlasses *Number `json:"total_glasses"`
	Count        *Number `json:"count"`
	Date         string  `json:"date"`
}

func (r rawWaterToday) glasses() int {
	for _, n := range []*Number{r.Glasses, r.TotalGlasses, r.Count} {
		if n != nil {
			return n.Int()
		}
	}
	return 0
}

type rawWaterDay struct {
	Date    string `json:"date"`
	Glasses Number `json:"glasses"`
}

func (s *waterService) Today(ctx context.Context) (*WaterDay, error) {
	const route = "/water/today"

	var raw rawWaterToday
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &raw); err != nil {
		return nil, err
	}
	return &WaterDay{Date: raw.Date, Glasses: raw.glasses()}, nil
}

func (s *waterService) Week(ctx context.Context) ([]WaterDay, error) {
	const route = "/water/week"

	env := newListEnvelope[rawWaterDay]("week", "entries")
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, env); err != nil {
		return nil, err
	}

	days := make([]WaterDay, 0, len(env.items))
	for _, raw := range env.items {
		days = append(days, WaterDay{
			Date:    raw.Date,
			Glasses: raw.Glasses.Int(),
		})
	}
	return days, nil
}
