package ratelimit

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientBudget_UnderLimit(t *testing.T) {
	b := NewClientBudget(5, time.Minute)

	for i := 0; i < 5; i++ {
		require.NoError(t, b.Allow("10.0.0.1", "/api/plan"))
	}
}

func TestClientBudget_ExceedsLimit(t *testing.T) {
	b := NewClientBudget(2, time.Minute)

	require.NoError(t, b.Allow("10.0.0.1", "/api/plan"))
	require.NoError(t, b.Allow("10.0.0.1", "/api/plan"))

	err := b.Allow("10.0.0.1", "/api/plan")
	assert.ErrorIs(t, err, ErrBudgetExceeded)
	assert.Contains(t, err.Error(), "route /api/plan")

	// A refused request does not extend the count.
	assert.Equal(t, 2, b.counts[budgetKey("10.0.0.1", "/api/plan")].count)
}

func TestClientBudget_WindowReset(t *testing.T) {
	b := NewClientBudget(2, time.Minute)

	now := time.Now()
	b.now = func() time.Time { return now }

	require.NoError(t, b.Allow("10.0.0.1", "/api/plan"))
	require.NoError(t, b.Allow("10.0.0.1", "/api/plan"))
	assert.Error(t, b.Allow("10.0.0.1", "/api/plan"))

	// Advance time past window.
	b.now = func() time.Time { return now.Add(2 * time.Minute) }
	assert.NoError(t, b.Allow("10.0.0.1", "/api/plan"))
}

func TestClientBudget_DifferentClientsAndRoutes(t *testing.T) {
	b := NewClientBudget(1, time.Minute)

	require.NoError(t, b.Allow("10.0.0.1", "/api/plan"))
	assert.Error(t, b.Allow("10.0.0.1", "/api/plan"))

	// Different client and different route each have their own budget.
	assert.NoError(t, b.Allow("10.0.0.2", "/api/plan"))
	assert.NoError(t, b.Allow("10.0.0.1", "/api/generate"))
}

func TestClientBudget_DisabledIsNil(t *testing.T) {
	b := NewClientBudget(0, time.Minute)
	assert.Nil(t, b)
	assert.NoError(t, b.Allow("anyone", "/api/plan"))
}

func TestClientBudget_AllowConcurrent(t *testing.T) {
	b := NewClientBudget(10, time.Minute)

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if b.Allow("10.0.0.1", "/api/generate") == nil {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(10), allowed.Load())
}

func TestClientBudget_PrunesExpiredWindows(t *testing.T) {
	b := NewClientBudget(1, time.Minute)
	now := time.Now()
	b.now = func() time.Time { return now }

	for i := 0; i < pruneAt; i++ {
		require.NoError(t, b.Allow(fmt.Sprintf("client-%d", i), "/api/plan"))
	}
	require.Len(t, b.counts, pruneAt)

	b.now = func() time.Time { return now.Add(2 * time.Minute) }
	require.NoError(t, b.Allow("fresh", "/api/plan"))
	assert.Len(t, b.counts, 1)
}
