// Package retry re-runs operations that fail transiently, backing off
// exponentially between attempts.
//
// The metadata store uses it when replacing the metadata file: on some
// platforms the rename fails while another process still has the old file
// open.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Config defines the retry behavior.
type Config struct {
	// Attempts is the maximum number of times the operation runs.
	// Values below 1 are treated as 1.
	Attempts int

	// Backoff is the wait before the second attempt. It doubles after
	// every further failure.
	Backoff time.Duration

	// MaxBackoff caps the wait between attempts. Zero means no cap.
	MaxBackoff time.Duration
}

// Default is used for file replacement.
var Default = Config{
	Attempts:   5,
	Backoff:    20 * time.Millisecond,
	MaxBackoff: 500 * time.Millisecond,
}

// ShouldRetryFunc reports whether err is transient. A nil ShouldRetryFunc
// retries every error.
type ShouldRetryFunc func(error) bool

// Do runs fn until it succeeds, returns a non-retryable error, the attempts
// run out, or ctx is done. When attempts run out the last error is wrapped.
func Do(ctx context.Context, cfg Config, fn func() error, shouldRetry ShouldRetryFunc) error {
	attempts := max(cfg.Attempts, 1)

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(backoff(cfg, attempt))
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}

		err := fn()
		if err == nil {
			return nil
		}
		if shouldRetry != nil && !shouldRetry(err) {
			return err
		}
		lastErr = err
	}

	if attempts == 1 {
		return lastErr
	}
	return fmt.Errorf("failed after %d attempts: %w", attempts, lastErr)
}

// backoff returns the wait before attempt (1-based count of prior failures).
func backoff(cfg Config, attempt int) time.Duration {
	d := cfg.Backoff
	for i := 1; i < attempt; i++ {
		d *= 2
		if cfg.MaxBackoff > 0 && d >= cfg.MaxBackoff {
			return cfg.MaxBackoff
		}
	}
	if cfg.MaxBackoff > 0 && d > cfg.MaxBackoff {
		return cfg.MaxBackoff
	}
	return d
}
