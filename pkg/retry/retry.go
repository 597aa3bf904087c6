// Package retry runs an operation again when it fails with one of a set of
// retryable errors, backing off exponentially between attempts.
package retry

import (
	"context"
	"errors"
	"time"

	goretry "github.com/sethvargo/go-retry"
)

type Policy struct {
	// Attempts is the number of retries after the first call.
	Attempts  uint64
	BaseDelay time.Duration
	// OnRetry is called for every retryable failure.
	OnRetry func(err error)
}

// Do calls fn until it succeeds, fails with an error that does not match any
// of retryable, or the policy is exhausted. The last error is returned as is.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error, retryable ...error) error {
	base := p.BaseDelay
	if base <= 0 {
		base = time.Millisecond
	}
	b := goretry.WithMaxRetries(p.Attempts, goretry.WithJitterPercent(20, goretry.NewExponential(base)))

	return goretry.Do(ctx, b, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		for _, target := range retryable {
			if errors.Is(err, target) {
				if p.OnRetry != nil {
					p.OnRetry(err)
				}
				return goretry.RetryableError(err)
			}
		}
		return err
	})
}
