// Package retryx wraps sethvargo/go-retry with the backoff policy every
// remote-write path shares: exponential growth with full jitter, a delay cap,
// and a bounded number of retries.
package retryx

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// Policy parameterizes a retry loop.
type Policy struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries uint64
	// BaseDelay is the first backoff delay; each subsequent delay doubles.
	BaseDelay time.Duration
	// MaxDelay caps a single backoff delay (applied after jitter).
	MaxDelay time.Duration
}

// DefaultPolicy matches the sync engine contract: 1s base, x2 growth,
// full jitter, capped delays, at most 3 retries.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
	}
}

func (p Policy) backoff() retry.Backoff {
	b := retry.NewExponential(p.BaseDelay)
	b = retry.WithJitter(p.BaseDelay, b)
	b = retry.WithCappedDuration(p.MaxDelay, b)
	return retry.WithMaxRetries(p.MaxRetries, b)
}

// Do runs op until it succeeds, the policy is exhausted, or ctx is canceled.
// Every error from op is treated as transient; the final error is returned
// unwrapped once retries run out.
func Do(ctx context.Context, p Policy, op func(ctx context.Context) error) error {
	return retry.Do(ctx, p.backoff(), func(ctx context.Context) error {
		if err := op(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}
