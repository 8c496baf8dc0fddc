package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgnsrekt/livecomment/internal/retry"
)

var errTransient = errors.New("transient")

func alwaysRetry(error) retry.Action { return retry.Retry }

func immediate(int) time.Duration { return 0 }

func TestDo_SuccessFirstAttempt(t *testing.T) {
	calls := 0
	val, err := retry.Do(context.Background(), retry.Policy{MaxAttempts: 3, Backoff: immediate}, alwaysRetry,
		func(ctx context.Context, attempt int) (int, error) {
			calls++
			return 42, nil
		})
	require.NoError(t, err)
	assert.Equal(t, 42, val)
	assert.Equal(t, 1, calls)
}

func TestDo_SuccessAfterRetries(t *testing.T) {
	var attempts []int
	_, err := retry.Do(context.Background(), retry.Policy{MaxAttempts: 5, Backoff: immediate}, alwaysRetry,
		func(ctx context.Context, attempt int) (struct{}, error) {
			attempts = append(attempts, attempt)
			if attempt < 2 {
				return struct{}{}, errTransient
			}
			return struct{}{}, nil
		})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, attempts)
}

func TestDo_Exhausted(t *testing.T) {
	calls := 0
	err := retry.DoVoid(context.Background(), retry.Policy{MaxAttempts: 5, Backoff: immediate}, alwaysRetry,
		func(ctx context.Context, attempt int) error {
			calls++
			return errTransient
		})

	var exhausted *retry.ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 5, exhausted.Attempts)
	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 5, calls)
}

func TestDo_StopIsPermanent(t *testing.T) {
	calls := 0
	err := retry.DoVoid(context.Background(), retry.Policy{MaxAttempts: 5, Backoff: immediate},
		func(error) retry.Action { return retry.Stop },
		func(ctx context.Context, attempt int) error {
			calls++
			return errTransient
		})

	var permanent *retry.PermanentError
	require.ErrorAs(t, err, &permanent)
	assert.Equal(t, 1, calls)
}

func TestDo_LinearBackoffOnFakeClock(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var delays []time.Duration
	policy := retry.Policy{
		MaxAttempts: 3,
		Backoff:     retry.Linear(5*time.Second, 0),
		Clock:       clock,
		OnRetry:     func(attempt int, err error, d time.Duration) { delays = append(delays, d) },
	}

	done := make(chan error, 1)
	go func() {
		done <- retry.DoVoid(context.Background(), policy, alwaysRetry, func(ctx context.Context, attempt int) error {
			return errTransient
		})
	}()

	clock.BlockUntil(1)
	clock.Advance(5 * time.Second)
	clock.BlockUntil(1)
	clock.Advance(10 * time.Second)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, errTransient)
	case <-time.After(2 * time.Second):
		t.Fatal("retry did not finish")
	}
	assert.Equal(t, []time.Duration{5 * time.Second, 10 * time.Second}, delays)
}

func TestDo_FirstAttemptWaitsBackoff(t *testing.T) {
	clock := clockwork.NewFakeClock()
	calls := make(chan int, 1)
	var retried bool
	policy := retry.Policy{
		MaxAttempts: 2,
		Backoff:     func(int) time.Duration { return 80 * time.Millisecond },
		Clock:       clock,
		OnRetry:     func(int, error, time.Duration) { retried = true },
	}

	done := make(chan error, 1)
	go func() {
		done <- retry.DoVoid(context.Background(), policy, alwaysRetry, func(ctx context.Context, attempt int) error {
			calls <- attempt
			return nil
		})
	}()

	clock.BlockUntil(1)
	select {
	case <-calls:
		t.Fatal("first attempt ran before its backoff elapsed")
	default:
	}
	clock.Advance(80 * time.Millisecond)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("retry did not finish")
	}
	assert.Equal(t, 0, <-calls)
	assert.False(t, retried, "the first attempt is not a retry")
}

func TestDo_CancelDuringWait(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ctx, cancel := context.WithCancel(context.Background())
	policy := retry.Policy{MaxAttempts: 3, Backoff: retry.Linear(time.Minute, 0), Clock: clock}

	done := make(chan error, 1)
	go func() {
		done <- retry.DoVoid(ctx, policy, alwaysRetry, func(ctx context.Context, attempt int) error {
			return errTransient
		})
	}()

	clock.BlockUntil(1)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("retry ignored cancellation")
	}
}

func TestBackoffSchedules(t *testing.T) {
	exp := retry.Exponential(100 * time.Millisecond)
	assert.Equal(t, time.Duration(0), exp(0))
	assert.Equal(t, 100*time.Millisecond, exp(1))
	assert.Equal(t, 400*time.Millisecond, exp(3))

	lin := retry.Linear(5*time.Second, 100*time.Millisecond)
	for attempt := 0; attempt < 5; attempt++ {
		d := lin(attempt)
		assert.GreaterOrEqual(t, d, time.Duration(attempt)*5*time.Second)
		assert.Less(t, d, time.Duration(attempt)*5*time.Second+100*time.Millisecond)
	}
}

func TestDo_RejectsEmptyPolicy(t *testing.T) {
	err := retry.DoVoid(context.Background(), retry.Policy{}, alwaysRetry, func(ctx context.Context, attempt int) error {
		return nil
	})
	assert.Error(t, err)
}
