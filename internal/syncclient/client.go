// Package syncclient talks to rpm-server. Bulk sync moves the whole date map
// in one request; there is no merge, the receiving side is overwritten.
package syncclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/rpm-planner/internal/config"
	"github.com/saulo-duarte/rpm-planner/internal/planning"
)

var (
	ErrAuthRequired = errors.New("sign in required")
	ErrNotFound     = errors.New("no data found on server")
)

// TransportError reports a request that failed for any reason other than
// missing authentication or absent data. Status is zero when no response was
// received.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("sync transport: %v", e.Err)
	}
	return fmt.Sprintf("sync transport: status %d: %v", e.Status, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// TokenSource yields the bearer token of the signed-in user.
type TokenSource interface {
	AccessToken() (string, bool)
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Upload replaces the server copy with data.
func (c *Client) Upload(ctx context.Context, data map[string]planning.Snapshot) error {
	if data == nil {
		data = map[string]planning.Snapshot{}
	}
	return c.do(ctx, http.MethodPut, "/rpm-data", true, data, nil)
}

// Download fetches the server copy. ErrNotFound means the user never
// uploaded; an empty map means they uploaded an empty store.
func (c *Client) Download(ctx context.Context) (map[string]planning.Snapshot, error) {
	var data map[string]planning.Snapshot
	if err := c.do(ctx, http.MethodGet, "/rpm-data", true, nil, &data); err != nil {
		return nil, err
	}
	if data == nil {
		data = map[string]planning.Snapshot{}
	}
	return data, nil
}

func (c *Client) token() (string, error) {
	if c.tokens == nil {
		return "", ErrAuthRequired
	}
	tok, ok := c.tokens.AccessToken()
	if !ok || tok == "" {
		return "", ErrAuthRequired
	}
	return tok, nil
}

func (c *Client) do(ctx context.Context, method, path string, authed bool, in, out any) error {
	log := config.WithContext(ctx).WithFields(logrus.Fields{"method": method, "path": path})

	var token string
	if authed {
		var err error
		if token, err = c.token(); err != nil {
			return err
		}
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &TransportError{Err: err}
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Warn("Request to sync server failed")
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrAuthRequired
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.WithField("status", resp.StatusCode).Warn("Sync server returned an error")
		return &TransportError{Status: resp.StatusCode, Err: errors.New(strings.TrimSpace(string(msg)))}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	log.Debug("Sync request completed")
	return nil
}
