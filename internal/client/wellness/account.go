package wellness

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	go_json "github.com/goccy/go-json"

	"github.com/ivanpetrovic/brio/internal/xhttp"
)

type accountService struct {
	client *Client
}

type rawAccount struct {
	ID       Number `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// accountEnvelope accepts both `{user: {...}}` (current) and the bare
// profile object (pre-session-rework).
type accountEnvelope struct {
	User    *rawAccount `json:"user"`
	rawAccount
}

func (e accountEnvelope) account() *Account {
	raw := e.rawAccount
	if e.User != nil {
		raw = *e.User
	}
	return &Account{
		ID:       int64(raw.ID),
		Username: raw.Username,
		Email:    raw.Email,
		FullName: raw.FullName,
	}
}

func (s *accountService) Get(ctx context.Context) (*Account, error) {
	const route = "/account"

	var env accountEnvelope
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &env); err != nil {
		return nil, err
	}
	return env.account(), nil
}

// Login authenticates with email and a client-side password hash,
// returning the account and the session cookie value issued by the
// server.
func (s *accountService) Login(ctx context.Context, email, passwordHash string) (*Account, string, error) {
	const route = "/login"

	payload := map[string]string{
		"email":         email,
		"password_hash": passwordHash,
	}
	buf, err := go_json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.client.baseURL+route, bytes.NewReader(buf))
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}
	xhttp.SetRequestHeaderContentTypeApplicationJSON(req)

	resp, err := s.client.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, "", parseAPIError(resp)
	}

	var env accountEnvelope
	if err := go_json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, "", fmt.Errorf("decoding response: %w", err)
	}

	var token string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == xhttp.SessionCookie {
			token = cookie.Value
			break
		}
	}
	if token == "" {
		return nil, "", fmt.Errorf("login response did not set a %s cookie", xhttp.SessionCookie)
	}

	return env.account(), token, nil
}

func (s *accountService) Logout(ctx context.Context) error {
	const route = "/logout"
	return s.client.do(ctx, http.MethodPost, route, nil, nil, nil)
}
