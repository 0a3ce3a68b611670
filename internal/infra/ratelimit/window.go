package ratelimit

import (
	"context"
	"sync"
	"time"

	"giftsafer/internal/pkg/clock"
	"giftsafer/internal/pkg/config"
)

// SlidingWindow is an in-process per-identity rate limiter. Denied
// attempts are not recorded: a client hammering the endpoint recovers
// as soon as its oldest allowed attempt ages out, rather than being
// locked out indefinitely.
type SlidingWindow struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	window   time.Duration
	max      int
	clock    clock.Clock
}

func NewSlidingWindow(cfg config.RateLimitConfig, clk clock.Clock) *SlidingWindow {
	return &SlidingWindow{
		attempts: make(map[string][]time.Time),
		window:   cfg.Window,
		max:      cfg.MaxRequests,
		clock:    clk,
	}
}

func (w *SlidingWindow) Allow(_ context.Context, identity string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.clock.Now()
	cutoff := now.Add(-w.window)

	kept := w.attempts[identity][:0]
	for _, at := range w.attempts[identity] {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}

	if len(kept) >= w.max {
		w.attempts[identity] = kept
		return false
	}

	w.attempts[identity] = append(kept, now)
	return true
}

func (w *SlidingWindow) Window() (int, int) {
	return w.max, int(w.window.Seconds())
}
