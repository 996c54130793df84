package wellness

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/ivanpetrovic/brio/internal/version"
	"github.com/ivanpetrovic/brio/internal/xhttp"
	"github.com/ivanpetrovic/brio/internal/xslog"
)

type Client struct {
	Account   AccountService
	Stats     StatsService
	Water     WaterService
	Mood      MoodService
	Study     StudyService
	Workout   WorkoutService
	Focus     FocusService
	Gratitude GratitudeService
	Journal   JournalService
	Goals     GoalsService

	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// SessionSource yields the current session cookie value, or "" when the
// user has no stored session.
type SessionSource interface {
	SessionToken() string
}

func New(sessions SessionSource, opts ...Option) *Client {
	const baseURL = "http://localhost:5000/api"

	cfg := &clientConfig{
		baseURL:  baseURL,
		sessions: sessions,
		logger:   slog.Default(),
		timeout:  10 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	transport := &sessionTransport{
		base:     xhttp.NewTransport(),
		sessions: cfg.sessions,
	}

	c := &Client{
		baseURL:    cfg.baseURL,
		httpClient: &http.Client{Transport: transport, Timeout: cfg.timeout},
		logger:     cfg.logger,
	}

	c.Account = &accountService{client: c}
	c.Stats = &statsService{client: c}
	c.Water = &waterService{client: c}
	c.Mood = &moodService{client: c}
	c.Study = &studyService{client: c}
	c.Workout = &workoutService{client: c}
	c.Focus = &focusService{client: c}
	c.Gratitude = &gratitudeService{client: c}
	c.Journal = &journalService{client: c}
	c.Goals = &goalsService{client: c}

	return c
}

type clientConfig struct {
	baseURL  string
	sessions SessionSource
	logger   *slog.Logger
	timeout  time.Duration
}

type Option func(*clientConfig)

func WithBaseURL(baseURL string) Option {
	return func(cfg *clientConfig) { cfg.baseURL = baseURL }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body any, result any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := go_json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		xhttp.SetRequestHeaderContentTypeApplicationJSON(req)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.DebugContext(ctx, "api request",
		xslog.Endpoint(path),
		xslog.HTTPStatus(resp.StatusCode),
		xslog.Duration(time.Since(start)))

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}
		if err := go_json.NewDecoder(bytes.NewReader(raw)).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w\nbody: %s", err, string(raw))
		}
	}

	return nil
}

// sessionTransport attaches the session cookie and client identification
// headers to every outbound request.
type sessionTransport struct {
	base     http.RoundTripper
	sessions SessionSource
}

var _ http.RoundTripper = (*sessionTransport)(nil)

func (t *sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.sessions != nil {
		if token := t.sessions.SessionToken(); token != "" {
			req.AddCookie(&http.Cookie{Name: xhttp.SessionCookie, Value: token})
		}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(xhttp.XRequestID, uuid.NewString())
	req.Header.Set(version.Header, version.Get())

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return resp, nil
}
