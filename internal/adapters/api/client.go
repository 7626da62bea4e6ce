// Package api
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"amigofiel/internal/domain"
	"amigofiel/internal/logger"
)

const RequestIDHeader = "X-Request-Id"

type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Status)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
	requestIDs bool
}

type Option func(*Client)

// WithRequestIDs tags every request with a fresh X-Request-Id. Off by
// default: endpoints whose CORS allow-list names only Content-Type would
// reject the preflight.
func WithRequestIDs() Option {
	return func(c *Client) {
		c.requestIDs = true
	}
}

var _ domain.AuthGateway = (*Client)(nil)

// NewClient builds a client for the endpoint at baseURL. A nil httpClient
// gets a plain client without timeout.
func NewClient(baseURL string, httpClient *http.Client, log logger.Logger, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Signup(ctx context.Context, req domain.SignupRequest) error {
	return c.post(ctx, domain.SignupPath, req)
}

func (c *Client) Login(ctx context.Context, req domain.LoginRequest) error {
	return c.post(ctx, domain.LoginPath, req)
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s body: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build request: %w", domain.ErrUnreachable, err)
	}

	req.Header.Set("Content-Type", "application/json")

	var requestID string
	if c.requestIDs {
		requestID = uuid.NewString()
		req.Header.Set(RequestIDHeader, requestID)
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("api: request failed", "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %w", domain.ErrUnreachable, err)
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	c.log.Debug("api: request completed",
		"path", path,
		"request_id", requestID,
		"status", res.StatusCode,
		"elapsed", time.Since(start),
	)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("%w: %w", domain.ErrRejected, &StatusError{Status: res.StatusCode})
	}

	return nil
}
