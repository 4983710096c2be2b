package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("transient")

func fastConfig(attempts int) Config {
	return Config{Attempts: attempts, Backoff: time.Millisecond, MaxBackoff: 2 * time.Millisecond}
}

func TestDo_Success(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(3), func() error {
		calls++
		return nil
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_SuccessAfterRetries(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(5), func() error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	}, func(err error) bool { return errors.Is(err, errTransient) })

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustedAttempts(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(3), func() error {
		calls++
		return errTransient
	}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errTransient)
	assert.Contains(t, err.Error(), "failed after 3 attempts")
	assert.Equal(t, 3, calls)
}

func TestDo_NonRetryableError(t *testing.T) {
	permanent := errors.New("permanent")
	calls := 0
	err := Do(context.Background(), fastConfig(5), func() error {
		calls++
		return permanent
	}, func(err error) bool { return errors.Is(err, errTransient) })

	assert.Equal(t, permanent, err)
	assert.Equal(t, 1, calls)
}

func TestDo_SingleAttemptReturnsErrorUnwrapped(t *testing.T) {
	err := Do(context.Background(), Config{}, func() error { return errTransient }, nil)
	assert.Equal(t, errTransient, err)
}

func TestDo_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Do(ctx, Config{Attempts: 5, Backoff: time.Hour}, func() error {
		calls++
		cancel()
		return errTransient
	}, nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestBackoff(t *testing.T) {
	cfg := Config{Backoff: 10 * time.Millisecond, MaxBackoff: 50 * time.Millisecond}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{attempt: 1, want: 10 * time.Millisecond},
		{attempt: 2, want: 20 * time.Millisecond},
		{attempt: 3, want: 40 * time.Millisecond},
		{attempt: 4, want: 50 * time.Millisecond},
		{attempt: 10, want: 50 * time.Millisecond},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, backoff(cfg, tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestBackoff_Uncapped(t *testing.T) {
	cfg := Config{Backoff: time.Millisecond}
	assert.Equal(t, 8*time.Millisecond, backoff(cfg, 4))
}
