// Package ratelimit paces external collector launches.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter gates collector invocations that hit the same upstream API.
// Rates are fractional: 0.5/sec means one launch every two seconds.
type Limiter struct {
	limiter *rate.Limiter
	mu      sync.RWMutex
}

func New(perSec float64) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(perSec), 1),
	}
}

func (l *Limiter) Wait(ctx context.Context) error {
	l.mu.RLock()
	limiter := l.limiter
	limit := limiter.Limit()
	l.mu.RUnlock()

	// A zero rate means no pacing at all, not "block forever".
	if limit == 0 {
		return nil
	}
	return limiter.Wait(ctx)
}

func (l *Limiter) SetRate(perSec float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.limiter.SetLimit(rate.Limit(perSec))
}
