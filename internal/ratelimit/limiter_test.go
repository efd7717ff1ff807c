package ratelimit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpstreamLimiter_Wait(t *testing.T) {
	l := NewUpstreamLimiter(100)

	// Should not block at high rate.
	err := l.Wait(context.Background())
	require.NoError(t, err)
}

func TestUpstreamLimiter_Disabled(t *testing.T) {
	l := NewUpstreamLimiter(0)
	assert.Nil(t, l)

	// A nil limiter passes through.
	assert.NoError(t, l.Wait(context.Background()))
}

func TestUpstreamLimiter_CancelledContext(t *testing.T) {
	// Create a very restrictive limiter.
	l := NewUpstreamLimiter(0.001)

	// Consume the burst.
	_ = l.Wait(context.Background())

	// Next call with cancelled context should error.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := l.Wait(ctx)
	assert.Error(t, err)
}
