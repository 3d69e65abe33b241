// Package ratelimit caps how many resolver processes are started per second.
package ratelimit

import (
	"context"
	"math"

	"golang.org/x/time/rate"
)

// Limiter is a token bucket shared by all workers. A nil *Limiter never waits.
type Limiter struct {
	inner *rate.Limiter
}

// New returns a Limiter allowing qps queries per second with a burst of one
// second's worth of queries. It returns nil, meaning unlimited, when qps <= 0.
func New(qps float64) *Limiter {
	if qps <= 0 {
		return nil
	}
	burst := max(1, int(math.Ceil(qps)))
	return &Limiter{inner: rate.NewLimiter(rate.Limit(qps), burst)}
}

// Wait blocks until a query may start or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return ctx.Err()
	}
	return l.inner.Wait(ctx)
}
