// Package sidecar checks the health of the ComfyUI sidecar process over
// HTTP. The sidecar is considered healthy when its queue endpoint answers
// with 200.
package sidecar

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "http://localhost:8188"
	healthEndpoint = "/queue"
)

// Client polls the sidecar's HTTP interface.
type Client struct {
	baseURL string
	client  *http.Client
	retries int
	delay   time.Duration
}

func New(baseURL string, timeout time.Duration, retries int, delay time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if retries < 1 {
		retries = 1
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		retries: retries,
		delay:   delay,
	}
}

// URL returns the health endpoint the client polls.
func (c *Client) URL() string {
	return c.baseURL + healthEndpoint
}

// Retries returns the attempt budget for Wait.
func (c *Client) Retries() int {
	return c.retries
}

// Check performs a single health request against the queue endpoint.
func (c *Client) Check(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(), nil)
	if err != nil {
		return fmt.Errorf("could not create health request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("could not reach sidecar at %s: %w", c.URL(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sidecar health check failed with status %d", resp.StatusCode)
	}
	return nil
}

// Wait polls the health endpoint until it answers or the attempt budget is
// exhausted. onAttempt, when non-nil, is invoked after every attempt with
// its outcome.
func (c *Client) Wait(ctx context.Context, onAttempt func(attempt int, err error)) error {
	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		err := c.Check(ctx)
		if onAttempt != nil {
			onAttempt(attempt, err)
		}
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == c.retries {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.delay):
		}
	}
	return fmt.Errorf("sidecar failed health check after %d attempts: %w", c.retries, lastErr)
}
