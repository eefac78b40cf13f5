package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout       = 30 * time.Second
	DefaultHealthTimeout = 5 * time.Second
	healthPath           = "/healthz"
	// TokenHeader carries the shared secret of a protected webhook.
	TokenHeader = "X-Webhook-Token"
	maxErrorBody         = 4 << 10
)

// Client is the HTTP wrapper for the voice-calendar workflow webhook.
type Client struct {
	webhookURL    string
	healthURL     string
	timeout       time.Duration
	healthTimeout time.Duration
	token         string
	httpClient    *http.Client
}

// Option customizes a Client.
type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithHealthTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.healthTimeout = d
		}
	}
}

// WithToken sends token in TokenHeader on every Submit.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a workflow client for webhookURL.
// The health probe targets the same host with the path replaced by /healthz.
func NewClient(webhookURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(webhookURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, webhookURL)
	}
	health := *u
	health.Path = healthPath
	health.RawQuery = ""

	c := &Client{
		webhookURL:    webhookURL,
		healthURL:     health.String(),
		timeout:       DefaultTimeout,
		healthTimeout: DefaultHealthTimeout,
		httpClient:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// URL returns the webhook URL.
func (c *Client) URL() string { return c.webhookURL }

// Submit posts req to the webhook and decodes the reply.
func (c *Client) Submit(ctx context.Context, req Request) (Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("failed to marshal workflow request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("failed to build workflow request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set(TokenHeader, c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return Response{}, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Response{}, fmt.Errorf("failed to decode workflow response: %w", err)
	}
	return out, nil
}

// Health probes the workflow host. Any 2xx answer counts as healthy.
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.healthURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build health request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return nil
}

// SplitStartTime splits an ISO-8601 instant into its date part and HH:MM.
// "2024-05-02T15:00:00+08:00" gives "2024-05-02", "15:00".
func SplitStartTime(startTime string) (string, string, error) {
	date, clock, ok := strings.Cut(startTime, "T")
	if !ok || date == "" || len(clock) < 5 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidStartTime, startTime)
	}
	return date, clock[:5], nil
}
