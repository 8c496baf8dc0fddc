// Package retry runs an operation with bounded attempts and a backoff
// schedule on an injectable clock.
package retry

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jonboulle/clockwork"
)

type Action int

const (
	Stop  Action = iota // permanent error, abort immediately
	Retry               // transient error, wait and try again
)

// Backoff returns the delay before the given zero-based attempt.
type Backoff func(attempt int) time.Duration

type Policy struct {
	MaxAttempts int
	Backoff     Backoff
	Clock       clockwork.Clock
	OnRetry     func(attempt int, err error, delay time.Duration)
}

type Classify func(err error) Action

type Operation[T any] func(ctx context.Context, attempt int) (T, error)

// Linear waits attempt*step plus up to jitter, so the first attempt waits
// only the jitter.
func Linear(step, jitter time.Duration) Backoff {
	return func(attempt int) time.Duration {
		d := time.Duration(attempt) * step
		if jitter > 0 {
			d += rand.N(jitter)
		}
		return d
	}
}

// Exponential waits base, 2*base, 4*base... before retries. The first
// attempt runs at once.
func Exponential(base time.Duration) Backoff {
	return func(attempt int) time.Duration {
		if attempt == 0 {
			return 0
		}
		return base * time.Duration(1<<(attempt-1))
	}
}

// Do runs op until it succeeds, classify returns Stop, or the attempts are
// exhausted. Backoff(n) is waited before attempt n runs, attempt 0
// included. OnRetry only fires for retries.
func Do[T any](ctx context.Context, p Policy, classify Classify, op Operation[T]) (T, error) {
	var zero T
	if p.MaxAttempts < 1 {
		return zero, fmt.Errorf("retry policy needs at least one attempt")
	}
	clock := p.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	var lastErr error
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if p.Backoff != nil {
			delay := p.Backoff(attempt)
			if attempt > 0 && p.OnRetry != nil {
				p.OnRetry(attempt, lastErr, delay)
			}
			if err := Sleep(ctx, clock, delay); err != nil {
				return zero, fmt.Errorf("context cancelled before attempt %d: %w", attempt, err)
			}
		}

		val, err := op(ctx, attempt)
		if err == nil {
			return val, nil
		}
		lastErr = err

		if classify(err) == Stop {
			return zero, &PermanentError{Err: err}
		}
	}

	return zero, &ExhaustedError{Attempts: p.MaxAttempts, Err: lastErr}
}

// DoVoid is Do for operations without a result.
func DoVoid(ctx context.Context, p Policy, classify Classify, op func(ctx context.Context, attempt int) error) error {
	_, err := Do(ctx, p, classify, func(ctx context.Context, attempt int) (struct{}, error) {
		return struct{}{}, op(ctx, attempt)
	})
	return err
}

// Sleep waits d on clock or until ctx is done.
func Sleep(ctx context.Context, clock clockwork.Clock, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-clock.After(d):
		return nil
	}
}

type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("failed after %d attempts: %v", e.Attempts, e.Err)
}
func (e *ExhaustedError) Unwrap() error { return e.Err }
