// Package storage holds the cross-domain storage failure taxonomy: bounded
// timeouts for every repository call and the classification of low-level
// failures into one service-visible sentinel.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable indicates the backing store could not serve the operation
// in time. Callers surface it as a retryable service condition; they never
// retry mutations themselves.
var ErrUnavailable = errors.New("storage unavailable")

// DefaultTimeout bounds every repository call issued by the services.
const DefaultTimeout = 5 * time.Second

// WithTimeout derives a bounded context for a storage operation. A
// non-positive duration falls back to DefaultTimeout.
func WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = DefaultTimeout
	}
	return context.WithTimeout(ctx, d)
}

// Classify maps low-level storage failures onto ErrUnavailable where the
// caller can treat them as transient. Deadline and cancellation failures
// become ErrUnavailable; anything else passes through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrUnavailable
	}
	return err
}
