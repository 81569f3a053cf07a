// Package retry runs a fallible operation a bounded number of times with
// exponential backoff between attempts.
package retry

import (
	"log"
	"time"
)

// Outcome reports how a retried operation ended. Exhaustion is a value the
// caller branches on, not an error unwinding through it; LastErr is kept for
// logging.
type Outcome[T any] struct {
	Success  bool
	Result   T
	Attempts int
	LastErr  error
}

// sleep is a seam so tests can observe the backoff schedule.
var sleep = time.Sleep

// WithBackoff invokes op sequentially up to maxAttempts times, stopping at
// the first success. After failed attempt i (1-based) it waits
// baseDelay * 2^(i-1) before the next try; a single-attempt call never
// sleeps. The op must be safe to repeat: a prior attempt that timed out may
// still have committed remotely.
func WithBackoff[T any](op func() (T, error), maxAttempts int, baseDelay time.Duration) Outcome[T] {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := op()
		if err == nil {
			return Outcome[T]{Success: true, Result: result, Attempts: attempt}
		}

		lastErr = err
		log.Printf("attempt %d/%d failed: %v", attempt, maxAttempts, err)

		if attempt < maxAttempts {
			sleep(baseDelay << (attempt - 1))
		}
	}

	return Outcome[T]{Attempts: maxAttempts, LastErr: lastErr}
}
