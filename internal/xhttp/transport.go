package xhttp

import (
	"fmt"
	"net/http"

	"github.com/ivanpetrovic/brio/internal/version"
)

type brioTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*brioTransport)(nil)

func (t *brioTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "brio/"+version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper with standard brio headers.
func NewTransport() http.RoundTripper {
	return &brioTransport{base: http.DefaultTransport}
}
