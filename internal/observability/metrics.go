package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds OTel metric instruments for plan generation.
// A nil *Metrics records nothing.
type Metrics struct {
	PlanRequests         metric.Int64Counter
	UpstreamLatency      metric.Float64Histogram
	UpstreamErrors       metric.Int64Counter
	UnresolvedComponents metric.Int64Counter
}

// NewMetrics creates the instruments on the global meter provider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter("uigen")

	planRequests, err := meter.Int64Counter("uigen.plan.requests",
		metric.WithDescription("Plan requests by route and outcome"),
	)
	if err != nil {
		return nil, err
	}

	upstreamLatency, err := meter.Float64Histogram("uigen.upstream.latency_seconds",
		metric.WithDescription("Chat completion round trip time"),
	)
	if err != nil {
		return nil, err
	}

	upstreamErrors, err := meter.Int64Counter("uigen.upstream.errors",
		metric.WithDescription("Failed chat completion calls"),
	)
	if err != nil {
		return nil, err
	}

	unresolved, err := meter.Int64Counter("uigen.render.unresolved_components",
		metric.WithDescription("Component nodes rendered as unknown placeholders"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		PlanRequests:         planRequests,
		UpstreamLatency:      upstreamLatency,
		UpstreamErrors:       upstreamErrors,
		UnresolvedComponents: unresolved,
	}, nil
}

// RecordPlanRequest records one handled plan request. kind is empty on success.
func (m *Metrics) RecordPlanRequest(ctx context.Context, route, outcome, kind string) {
	if m == nil {
		return
	}
	m.PlanRequests.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("route", route),
			attribute.String("outcome", outcome),
			attribute.String("kind", kind),
		),
	)
}

// RecordUpstream records the latency of one chat completion call.
func (m *Metrics) RecordUpstream(ctx context.Context, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.UpstreamLatency.Record(ctx, d.Seconds())
	if err != nil {
		m.UpstreamErrors.Add(ctx, 1)
	}
}

// RecordUnresolved records a component type that had no registry entry.
func (m *Metrics) RecordUnresolved(ctx context.Context, componentType string) {
	if m == nil {
		return
	}
	m.UnresolvedComponents.Add(ctx, 1,
		metric.WithAttributes(attribute.String("component", componentType)),
	)
}
