// Package client is a Go client for the Career Advisor API. It manages the
// bearer-token session, including forced logout when the server rejects a
// token, and keeps only the latest resume extraction result.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ErrSessionExpired is returned when a token-gated call comes back 401. The
// stored session is cleared before it is returned; the caller must log in
// again.
var ErrSessionExpired = errors.New("session expired, log in again")

// ErrNotLoggedIn is returned by token-gated calls when no session is held.
var ErrNotLoggedIn = errors.New("not logged in")

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client talks to one Career Advisor API server. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	store   SessionStore

	mu      sync.RWMutex
	session *Session

	// extractGen tracks the newest resume extraction; older in-flight
	// extractions are discarded when it moves past them.
	extractGen atomic.Uint64
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithSessionStore persists the session across processes. Without it the
// session lives only in memory.
func WithSessionStore(store SessionStore) Option {
	return func(c *Client) { c.store = store }
}

// New builds a Client for the API at baseURL. If a session store is given
// and holds a stored session, that session is restored.
func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.store != nil {
		session, err := c.store.Load()
		if err != nil {
			return nil, fmt.Errorf("client: restore session: %w", err)
		}
		c.session = session
	}
	return c, nil
}

// Session returns a copy of the current session, or nil when logged out.
func (c *Client) Session() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil
	}
	copied := *c.session
	return &copied
}

// IsLoggedIn reports whether a session is held.
func (c *Client) IsLoggedIn() bool {
	return c.Session() != nil
}

func (c *Client) setSession(s *Session) error {
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()

	if c.store == nil {
		return nil
	}
	if s == nil {
		return c.store.Clear()
	}
	return c.store.Save(s)
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return ""
	}
	return c.session.Token
}

// doJSON sends a JSON request and decodes a JSON response into out. When
// authed is true the bearer token is attached and a 401 clears the session.
func (c *Client) doJSON(ctx context.Context, method, path string, authed bool, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token := c.token()
		if token == "" {
			return ErrNotLoggedIn
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(req, authed, out)
}

func (c *Client) send(req *http.Request, authed bool, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && authed {
		// The server no longer accepts our token. Drop the session so the
		// caller lands back at the login flow.
		_ = c.setSession(nil)
		return ErrSessionExpired
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("client: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: apiMessage(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}

// apiMessage pulls the error text out of the server's {"error": ...}
// envelope, falling back to the raw body.
func apiMessage(raw []byte) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return strings.TrimSpace(string(raw))
}
