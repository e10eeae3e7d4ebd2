// Package retry provides bounded retry with exponential backoff for model
// provider calls. The generation core itself is retry-free by design;
// retries belong to the provider boundary only.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Policy controls how often and how quickly an operation is retried.
type Policy struct {
	// MaxAttempts is the total number of tries, including the first.
	MaxAttempts int
	// BaseDelay is the wait before the second attempt; it doubles after
	// every failure.
	BaseDelay time.Duration
}

// DefaultPolicy matches the configured provider defaults: three attempts
// starting at one second.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: 3, BaseDelay: time.Second}
}

// retryable is implemented by errors that know whether trying again can
// help (e.g. rate limits yes, bad credentials no).
type retryable interface {
	Retryable() bool
}

// Do runs fn until it succeeds, returns a non-retryable error, the context
// is cancelled, or attempts run out.
func (p Policy) Do(ctx context.Context, fn func(context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := p.BaseDelay

	var last error
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		last = fn(ctx)
		if last == nil {
			return nil
		}
		var r retryable
		if errors.As(last, &r) && !r.Retryable() {
			return last
		}

		if i < attempts-1 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			delay *= 2
		}
	}
	return &ExhaustedError{Attempts: attempts, Last: last}
}

// ExhaustedError indicates the retry limit was reached without success.
type ExhaustedError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("retry limit exhausted after %d attempt(s): %v", e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error { return e.Last }
