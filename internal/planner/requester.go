// Package planner asks a chat-completion model for a UI plan and extracts the
// JSON object from its reply.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Shreerajan/UI-Generator/internal/observability"
	"github.com/Shreerajan/UI-Generator/internal/ratelimit"
)

const (
	DefaultBaseURL             = "https://api.groq.com/openai/v1"
	DefaultModel               = "llama-3.1-8b-instant"
	DefaultTemperature float32 = 0.4
)

// Config describes the upstream chat-completion service.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	// Timeout of zero leaves the transport default in place.
	Timeout time.Duration
}

// ChatModel is the slice of eino's chat model the requester needs.
type ChatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// ModelFactory builds a chat model for one request.
type ModelFactory func(ctx context.Context, cfg Config) (ChatModel, error)

// NewChatModel creates an OpenAI-compatible chat model.
func NewChatModel(ctx context.Context, cfg Config) (ChatModel, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("planner: %w", ErrConfig)
	}
	temperature := cfg.Temperature
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Temperature: &temperature,
		Timeout:     cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("planner: create chat model: %w", err)
	}
	return cm, nil
}

// Requester issues plan requests. It holds no per-request state.
type Requester struct {
	cfg      Config
	newModel ModelFactory
	limiter  *ratelimit.UpstreamLimiter
	metrics  *observability.Metrics
}

// Option configures a Requester.
type Option func(*Requester)

// WithModelFactory replaces the eino OpenAI factory.
func WithModelFactory(f ModelFactory) Option {
	return func(r *Requester) { r.newModel = f }
}

// WithLimiter throttles calls to the upstream service.
func WithLimiter(l *ratelimit.UpstreamLimiter) Option {
	return func(r *Requester) { r.limiter = l }
}

// WithMetrics records upstream latency and failures.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Requester) { r.metrics = m }
}

// New creates a Requester. Empty config fields fall back to the defaults.
func New(cfg Config, opts ...Option) *Requester {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	r := &Requester{cfg: cfg, newModel: NewChatModel}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// emptyChoices is the error text eino-ext's openai client returns when the
// completion has no choices. That is an empty reply, not a transport failure.
const emptyChoices = "received empty choices"

// Request sends one prompt and returns the JSON object found in the reply.
// The result is not checked against the plan schema. There is no retry.
func (r *Requester) Request(ctx context.Context, prompt string) (json.RawMessage, error) {
	if r.cfg.APIKey == "" {
		return nil, fmt.Errorf("planner: %w", ErrConfig)
	}

	ctx, span := otel.Tracer("uigen/planner").Start(ctx, "planner.Request")
	defer span.End()
	span.SetAttributes(
		attribute.String("llm.model", r.cfg.Model),
		attribute.Int("prompt.length", len(prompt)),
	)

	raw, err := r.request(ctx, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, Kind(err))
		return nil, err
	}
	return raw, nil
}

func (r *Requester) request(ctx context.Context, prompt string) (json.RawMessage, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}

	cm, err := r.newModel(ctx, r.cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := cm.Generate(ctx, Messages(prompt),
		model.WithModel(r.cfg.Model),
		model.WithTemperature(r.cfg.Temperature),
	)
	r.metrics.RecordUpstream(ctx, time.Since(start), err)
	if err != nil {
		if strings.Contains(err.Error(), emptyChoices) {
			return nil, fmt.Errorf("planner: %w: %w", ErrEmptyResponse, err)
		}
		return nil, fmt.Errorf("planner: chat completion: %w", err)
	}
	if resp == nil || resp.Content == "" {
		return nil, fmt.Errorf("planner: %w", ErrEmptyResponse)
	}

	slog.Debug("plan reply received", "model", r.cfg.Model, "chars", len(resp.Content), "duration", time.Since(start))
	return Extract(resp.Content)
}
