// Package generation runs one prompt through planning, validation and the
// deterministic code and explanation steps.
package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Shreerajan/UI-Generator/internal/codegen"
	"github.com/Shreerajan/UI-Generator/internal/explain"
	"github.com/Shreerajan/UI-Generator/internal/uischema"
)

// PlanRequester returns the raw JSON plan for a prompt.
type PlanRequester interface {
	Request(ctx context.Context, prompt string) (json.RawMessage, error)
}

// Build bundles a validated plan with its code and explanation.
func Build(plan uischema.UIPlan, now time.Time) uischema.GenerationResult {
	return uischema.GenerationResult{
		Plan:        plan,
		Code:        codegen.Plan(plan),
		Explanation: explain.Plan(plan),
		Timestamp:   now.UnixMilli(),
	}
}

// Service turns prompts into validated plans.
type Service struct {
	requester PlanRequester
	strict    bool
	now       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithStrictTypes rejects plans that use component types outside the
// allowed list instead of leaving them to the renderer's placeholder.
func WithStrictTypes(strict bool) Option {
	return func(s *Service) { s.strict = strict }
}

// WithClock replaces time.Now for result timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service.
func NewService(req PlanRequester, opts ...Option) *Service {
	s := &Service{requester: req, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Plan requests and validates a plan.
func (s *Service) Plan(ctx context.Context, prompt string) (uischema.UIPlan, error) {
	raw, err := s.requester.Request(ctx, prompt)
	if err != nil {
		return uischema.UIPlan{}, err
	}
	plan, err := uischema.DecodePlan(raw, uischema.Strict(s.strict))
	if err != nil {
		return uischema.UIPlan{}, fmt.Errorf("generation: %w", err)
	}
	slog.Debug("plan decoded", "layout", plan.Layout, "components", len(plan.Components))
	return plan, nil
}

// Generate requests a plan and bundles it.
func (s *Service) Generate(ctx context.Context, prompt string) (uischema.GenerationResult, error) {
	plan, err := s.Plan(ctx, prompt)
	if err != nil {
		return uischema.GenerationResult{}, err
	}
	return Build(plan, s.now()), nil
}
