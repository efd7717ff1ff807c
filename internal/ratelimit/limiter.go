// Package ratelimit guards the chat-completion upstream with a token bucket
// and caps plan requests per client within a time window.
package ratelimit

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// UpstreamLimiter rate-limits calls to the chat-completion service.
// A nil *UpstreamLimiter never blocks.
type UpstreamLimiter struct {
	limiter *rate.Limiter
}

// NewUpstreamLimiter allows rps requests per second with a burst of at least
// one. A non-positive rps disables limiting and returns nil.
func NewUpstreamLimiter(rps float64) *UpstreamLimiter {
	if rps <= 0 {
		return nil
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	return &UpstreamLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Wait blocks until a token is available, or ctx is cancelled.
func (l *UpstreamLimiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	if err := l.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit upstream: %w", err)
	}
	return nil
}
