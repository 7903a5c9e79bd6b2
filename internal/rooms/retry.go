// ABOUTME: Retry helper for LiveKit server API calls
// ABOUTME: Exponential backoff with jitter, bounded by the caller's context
package rooms

import (
	"context"
	"math/rand/v2"
	"time"
)

const (
	retryAttempts  = 3
	retryBaseDelay = 100 * time.Millisecond
	retryMaxDelay  = 2 * time.Second
)

// backoff returns exponential backoff with jitter
// Base delay is doubled each attempt, with random jitter up to 25%
func backoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	// Cap attempt to avoid overflow in bit shift
	if attempt > 30 {
		attempt = 30
	}
	// Exponential: 2^attempt * base
	d := baseDelay * time.Duration(1<<uint(attempt))
	if d > retryMaxDelay {
		d = retryMaxDelay
	}
	// Add jitter: -25% to +25% using auto-seeded math/rand/v2
	jitter := time.Duration(rand.Int64N(int64(d)/2)) - d/4
	return d + jitter
}

// withRetry runs fn up to retryAttempts times with backoff between
// attempts. Stops early when the context is done and returns its error.
func withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= retryAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == retryAttempts {
			break
		}
		select {
		case <-time.After(backoff(retryBaseDelay, attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
