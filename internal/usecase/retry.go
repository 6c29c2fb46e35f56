package usecase

import (
	"context"
	"time"
)

// RetryPolicy reemplaza los decoradores de retry: un helper explícito que
// recibe la operación y la política (intentos + backoff).
type RetryPolicy struct {
	Attempts int
	Backoff  func(attempt int) time.Duration
}

// LinearBackoff: 1×base, 2×base, 3×base...
func LinearBackoff(base time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * base
	}
}

// DefaultRetryPolicy: hasta 3 intentos con backoff lineal de 1s, 2s, 3s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Attempts: 3, Backoff: LinearBackoff(time.Second)}
}

// Retry ejecuta op hasta agotar intentos. Respeta la cancelación del
// contexto entre intentos.
func Retry(ctx context.Context, policy RetryPolicy, op func(context.Context) error) error {
	var lastErr error
	for attempt := 1; attempt <= policy.Attempts; attempt++ {
		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if attempt == policy.Attempts {
			break
		}

		wait := time.Second
		if policy.Backoff != nil {
			wait = policy.Backoff(attempt)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return lastErr
}
