// Package client talks to the UI generator API.
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
	"time"

	"github.com/Shreerajan/UI-Generator/internal/api"
	"github.com/Shreerajan/UI-Generator/internal/generation"
	"github.com/Shreerajan/UI-Generator/internal/uischema"
)

var (
	// ErrRequestFailed means the server answered with a non-2xx status.
	ErrRequestFailed = errors.New("AI request failed")
	// ErrInvalidResponse means the server answered with something that is
	// not a valid plan.
	ErrInvalidResponse = errors.New("invalid AI response structure")
)

const maxResponseBytes = 4 << 20

// Client fetches plans from the /api/plan endpoint.
type Client struct {
	baseURL string
	http    *http.Client
	now     func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithClock replaces time.Now for result timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPlan posts the prompt and validates the returned plan.
func (c *Client) FetchPlan(ctx context.Context, prompt string) (uischema.UIPlan, error) {
	body, err := json.Marshal(api.PromptRequest{Prompt: prompt})
	if err != nil {
		return uischema.UIPlan{}, fmt.Errorf("client: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/plan", bytes.NewReader(body))
	if err != nil {
		return uischema.UIPlan{}, fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return uischema.UIPlan{}, fmt.Errorf("client: %w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return uischema.UIPlan{}, fmt.Errorf("client: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return uischema.UIPlan{}, fmt.Errorf("client: %w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	plan, err := uischema.DecodePlan(raw)
	if err != nil {
		return uischema.UIPlan{}, fmt.Errorf("client: %w: %v", ErrInvalidResponse, err)
	}
	return plan, nil
}

// Generate fetches a plan and derives code and explanation locally.
func (c *Client) Generate(ctx context.Context, prompt string) (uischema.GenerationResult, error) {
	plan, err := c.FetchPlan(ctx, prompt)
	if err != nil {
		return uischema.GenerationResult{}, err
	}
	return generation.Build(plan, c.now()), nil
}
