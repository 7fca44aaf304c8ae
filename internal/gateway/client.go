// Package gateway issues CRUD calls against the remote user endpoint and
// normalizes the outcome into a decoded JSON payload or a TransportError.
//
// The gateway does not look at HTTP status codes. A non-2xx response whose
// body is valid JSON is returned as a success; Response.Status is kept so a
// caller can inspect it, but no console action currently does.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nfrund/userdesk/internal/credential"
	"github.com/nfrund/userdesk/internal/domain"
)

// Client provides JSON access to the remote user endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      credential.Provider
	metrics    *Metrics
}

// Option customises client instantiation.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithCredentials sets the token source used by CallAuthenticated.
func WithCredentials(p credential.Provider) Option {
	return func(c *Client) {
		c.creds = p
	}
}

// WithMetrics records every call into m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New constructs a Client pointing at the provided endpoint base URL.
func New(base string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		return nil, fmt.Errorf("endpoint base url is empty")
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "http://" + trimmed
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("invalid endpoint base url: %w", err)
	}
	cli := &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		creds:      credential.StaticProvider{},
	}
	for _, opt := range opts {
		opt(cli)
	}
	return cli, nil
}

// BaseURL returns the normalized endpoint base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call performs an unauthenticated request. body is encoded as JSON when
// non-nil.
func (c *Client) Call(ctx context.Context, method, path string, body any) (*Response, error) {
	return c.do(ctx, method, path, body, "")
}

// CallAuthenticated performs a request carrying the bearer credential. With
// no credential it fails with domain.ErrAuthenticationRequired and never
// touches the network.
func (c *Client) CallAuthenticated(ctx context.Context, method, path string, body any) (*Response, error) {
	token, ok := c.creds.CurrentCredential(ctx)
	if !ok {
		c.metrics.observe(method, outcomeAuthRequired, 0)
		return nil, domain.ErrAuthenticationRequired
	}
	return c.do(ctx, method, path, body, token)
}

func (c *Client) do(ctx context.Context, method, path string, body any, token string) (*Response, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	op := method + " " + path
	start := time.Now()

	resp, err := c.roundTrip(ctx, op, method, path, body, token)
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeTransportError
		slog.DebugContext(ctx, "Endpoint call failed", "op", op, "error", err)
	} else {
		slog.DebugContext(ctx, "Endpoint call completed", "op", op, "status", resp.Status)
	}
	c.metrics.observe(method, outcome, time.Since(start))
	return resp, err
}

func (c *Client) roundTrip(ctx context.Context, op, method, path string, body any, token string) (*Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, domain.NewTransportError(op, fmt.Errorf("encode request body: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, domain.NewTransportError(op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewTransportError(op, err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, domain.NewTransportError(op, err)
	}

	var payload json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, domain.NewTransportError(op, err)
	}

	return &Response{Status: httpResp.StatusCode, Payload: payload}, nil
}
