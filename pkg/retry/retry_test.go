package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errConflict = errors.New("conflict")

func TestPolicy_Do(t *testing.T) {
	tests := []struct {
		name      string
		failures  int
		err       error
		attempts  uint64
		wantCalls int
		wantErr   error
	}{
		{name: "succeeds first time", wantCalls: 1, attempts: 3},
		{name: "succeeds after conflicts", failures: 2, err: errConflict, attempts: 3, wantCalls: 3},
		{name: "exhausted", failures: 10, err: errConflict, attempts: 2, wantCalls: 3, wantErr: errConflict},
		{name: "non retryable error", failures: 10, err: errors.New("boom"), attempts: 3, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls, retries := 0, 0
			p := Policy{Attempts: tt.attempts, BaseDelay: time.Microsecond, OnRetry: func(error) { retries++ }}

			err := p.Do(context.Background(), func(ctx context.Context) error {
				calls++
				if calls <= tt.failures {
					return tt.err
				}
				return nil
			}, errConflict)

			assert.Equal(t, tt.wantCalls, calls)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.failures > 0 && !errors.Is(tt.err, errConflict):
				assert.ErrorIs(t, err, tt.err)
			default:
				assert.NoError(t, err)
			}
			if errors.Is(tt.err, errConflict) {
				assert.Equal(t, min(tt.failures, calls), retries)
			}
		})
	}
}

func TestPolicy_WrappedRetryable(t *testing.T) {
	calls := 0
	err := Policy{Attempts: 1, BaseDelay: time.Microsecond}.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return errors.Join(errors.New("tx 42"), errConflict)
	}, errConflict)

	assert.Equal(t, 2, calls)
	assert.ErrorIs(t, err, errConflict)
}
