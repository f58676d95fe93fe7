package httputil

import (
	"context"
	"errors"
	"time"
)

// PermanentError wraps an error that must not be retried.
type PermanentError struct{ Err error }

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

// Permanent marks err so that [Retry] returns it without further attempts.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// Retry executes fn up to attempts times with linear backoff: after the
// n-th failed attempt it waits n*delay. fn receives the 1-based attempt
// number. Returns the last error if all attempts fail, or ctx.Err() if
// cancelled while waiting.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func(attempt int) error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := 1; i <= attempts; i++ {
		if err := fn(i); err == nil {
			return nil
		} else if lastErr = err; isPermanent(err) {
			return err
		}

		if i < attempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(i) * delay):
			}
		}
	}
	return lastErr
}

func isPermanent(err error) bool {
	return errors.As(err, new(*PermanentError))
}
