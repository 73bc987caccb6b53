package ratelimit

import (
	"context"
	"math/rand"
	"time"
)

// Limiter paces outbound calls to a shared external API, with optional jitter
// so bursts of concurrent enrichments do not fire in lockstep.
// It is safe for concurrent use by multiple goroutines.
type Limiter struct {
	ticker   *time.Ticker
	jitter   float64 // 0.0 to 1.0
	interval time.Duration
	ch       <-chan time.Time
}

// NewLimiter creates a limiter allowing rps operations per second. Jitter is a
// fraction of the interval (0.0 to 1.0) added randomly after each tick.
// If rps <= 0 the limiter never blocks.
func NewLimiter(rps float64, jitter float64) *Limiter {
	if rps <= 0 {
		return &Limiter{jitter: jitter}
	}

	if jitter < 0 {
		jitter = 0
	} else if jitter > 1 {
		jitter = 1
	}

	interval := time.Duration(float64(time.Second) / rps)
	ticker := time.NewTicker(interval)

	return &Limiter{
		ticker:   ticker,
		jitter:   jitter,
		interval: interval,
		ch:       ticker.C,
	}
}

// Wait blocks until the next operation may proceed, or until the context is
// canceled.
func (l *Limiter) Wait(ctx context.Context) error {
	if l.ch == nil {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.ch:
		return l.sleepJitter(ctx)
	}
}

// sleepJitter adds a random extra delay of up to jitter*interval. A ticker
// already enforces the minimum interval, so only positive jitter is applied.
func (l *Limiter) sleepJitter(ctx context.Context) error {
	if l.jitter <= 0 {
		return nil
	}
	extra := time.Duration(float64(l.interval) * l.jitter * rand.Float64())
	if extra <= 0 {
		return nil
	}
	select {
	case <-time.After(extra):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop releases any resources associated with the limiter.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
}
