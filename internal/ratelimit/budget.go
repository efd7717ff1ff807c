package ratelimit

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrBudgetExceeded is returned once a client has used its window.
var ErrBudgetExceeded = errors.New("request budget exceeded")

const pruneAt = 1024

// ClientBudget tracks per-client request counts within time windows.
// A nil *ClientBudget allows everything.
type ClientBudget struct {
	mu     sync.Mutex
	counts map[string]*windowCounter

	maxPerWindow int
	windowSize   time.Duration
	now          func() time.Time
}

type windowCounter struct {
	count     int
	windowEnd time.Time
}

// NewClientBudget creates a budget limiter.
// maxPerWindow limits calls per (client, route) within windowSize. A
// non-positive maxPerWindow or window disables the budget and returns nil.
func NewClientBudget(maxPerWindow int, windowSize time.Duration) *ClientBudget {
	if maxPerWindow <= 0 || windowSize <= 0 {
		return nil
	}
	return &ClientBudget{
		counts:       make(map[string]*windowCounter),
		maxPerWindow: maxPerWindow,
		windowSize:   windowSize,
		now:          time.Now,
	}
}

func budgetKey(client, route string) string {
	return client + "|" + route
}

// Allow records a request for client on route, or returns ErrBudgetExceeded
// when the current window is full. Expired windows are pruned once the map
// grows past pruneAt entries.
func (b *ClientBudget) Allow(client, route string) error {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	if len(b.counts) >= pruneAt {
		for k, wc := range b.counts {
			if now.After(wc.windowEnd) {
				delete(b.counts, k)
			}
		}
	}

	key := budgetKey(client, route)
	wc, ok := b.counts[key]
	if !ok || now.After(wc.windowEnd) {
		b.counts[key] = &windowCounter{count: 1, windowEnd: now.Add(b.windowSize)}
		return nil
	}
	if wc.count >= b.maxPerWindow {
		return fmt.Errorf("%w: client %s route %s (%d/%d in window)",
			ErrBudgetExceeded, client, route, wc.count, b.maxPerWindow)
	}
	wc.count++
	return nil
}
