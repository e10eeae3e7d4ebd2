package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flaggedError struct {
	transient bool
}

func (e *flaggedError) Error() string   { return "flagged" }
func (e *flaggedError) Retryable() bool { return e.transient }

func TestPolicyDo_SucceedsFirstTry(t *testing.T) {
	t.Parallel()

	calls := 0
	err := Policy{MaxAttempts: 3, BaseDelay: time.Millisecond}.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestPolicyDo_RetriesTransientFailures(t *testing.T) {
	t.Parallel()

	calls := 0
	err := Policy{MaxAttempts: 3, BaseDelay: time.Millisecond}.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return &flaggedError{transient: true}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestPolicyDo_StopsOnNonRetryable(t *testing.T) {
	t.Parallel()

	calls := 0
	fatal := &flaggedError{transient: false}
	err := Policy{MaxAttempts: 5, BaseDelay: time.Millisecond}.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return fatal
	})
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, fatal)
}

func TestPolicyDo_Exhaustion(t *testing.T) {
	t.Parallel()

	calls := 0
	underlying := errors.New("boom")
	err := Policy{MaxAttempts: 3, BaseDelay: time.Millisecond}.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return underlying
	})
	assert.Equal(t, 3, calls)

	var ex *ExhaustedError
	require.ErrorAs(t, err, &ex)
	assert.Equal(t, 3, ex.Attempts)
	assert.ErrorIs(t, err, underlying)
}

func TestPolicyDo_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Policy{MaxAttempts: 5, BaseDelay: time.Minute}.Do(ctx, func(ctx context.Context) error {
		calls++
		cancel() // cancel while waiting for the next attempt
		return errors.New("transient")
	})
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPolicyDo_ZeroAttemptsRunsOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	err := Policy{}.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDefaultPolicy(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()
	assert.Equal(t, 3, p.MaxAttempts)
	assert.Equal(t, time.Second, p.BaseDelay)
}
