package devrev

import (
	"context"
	"math"
	"time"
)

// RetryConfig configures retry behavior for failed HTTP requests. The same
// configuration is shared by the request executor and the startup token
// validator; only the exponent offset differs between the two call sites.
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts after the first.
	MaxRetries int
	// BaseDelay is the unit delay; the wait before exponent n is
	// BaseDelay * Multiplier^n.
	BaseDelay time.Duration
	// MaxDelay caps the wait between attempts.
	MaxDelay time.Duration
	// Multiplier is the factor by which the delay grows per exponent.
	Multiplier float64
}

// DefaultRetryConfig returns the default retry configuration: 3 retries
// with waits of 2s, 4s and 8s between request attempts.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
	}
}

// Delay returns the wait for the given exponent.
func (r *RetryConfig) Delay(exponent int) time.Duration {
	delay := float64(r.BaseDelay) * math.Pow(r.Multiplier, float64(exponent))
	if delay > float64(r.MaxDelay) {
		delay = float64(r.MaxDelay)
	}
	return time.Duration(delay)
}

// Wait blocks for the delay of the given exponent, or until the context
// is cancelled.
func (r *RetryConfig) Wait(ctx context.Context, exponent int) error {
	timer := time.NewTimer(r.Delay(exponent))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
