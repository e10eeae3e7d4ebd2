// Package provider adapts model providers behind a single completion
// interface. The pipeline treats a provider as a black box producing a text
// blob; connection handling, retry/backoff, and the error taxonomy for the
// network boundary all live here.
package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"protoforge/internal/retry"
)

// Config selects and tunes a provider. It is built by the caller from
// loaded configuration; this package reads no config files itself.
type Config struct {
	Provider   string // "openai" or "gemini"
	Model      string // provider-specific model name, empty for the default
	MaxRetries int    // total attempts per completion call
	Timeout    time.Duration // per-attempt timeout, 0 for none
}

// Client produces one completion for one prompt.
type Client interface {
	// Name identifies the provider in errors and run history.
	Name() string
	// Complete sends the prompt and returns the raw completion text.
	Complete(ctx context.Context, prompt string) (string, error)
}

// New returns the client selected by cfg.Provider.
func New(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai", "":
		return newOpenAI(cfg)
	case "gemini", "google":
		return newGemini(cfg)
	default:
		return nil, fmt.Errorf("unknown provider %q (supported: openai, gemini)", cfg.Provider)
	}
}

// Complete runs one completion call under the retry policy derived from
// cfg, applying the per-attempt timeout.
func Complete(ctx context.Context, c Client, cfg Config, prompt string) (string, error) {
	policy := retry.DefaultPolicy()
	if cfg.MaxRetries > 0 {
		policy.MaxAttempts = cfg.MaxRetries
	}

	var out string
	err := policy.Do(ctx, func(ctx context.Context) error {
		if cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()
		}
		text, err := c.Complete(ctx, prompt)
		if err != nil {
			return err
		}
		out = text
		return nil
	})
	return out, err
}

// MissingKeyError reports a known provider whose API key environment
// variable is unset. Distinct from an unknown-provider error so callers can
// tell the user which variable to set.
type MissingKeyError struct {
	Provider string
	EnvVar   string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s environment variable not set (required for provider %s)", e.EnvVar, e.Provider)
}

// Error wraps a provider failure with its origin and whether a retry can
// help (rate limits and server errors yes, bad credentials no).
type Error struct {
	Provider  string
	Err       error
	Transient bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether the failure is worth retrying.
func (e *Error) Retryable() bool { return e.Transient }
