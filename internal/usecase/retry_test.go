package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryExitoAlPrimerIntento(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), DefaultRetryPolicy(), func(ctx context.Context) error {
		calls++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryRecuperaDespuesDeFallas(t *testing.T) {
	policy := RetryPolicy{Attempts: 3, Backoff: func(int) time.Duration { return time.Millisecond }}
	calls := 0
	err := Retry(context.Background(), policy, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transitorio")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryAgotaIntentos(t *testing.T) {
	policy := RetryPolicy{Attempts: 3, Backoff: func(int) time.Duration { return time.Millisecond }}
	calls := 0
	errFinal := errors.New("permanente")
	err := Retry(context.Background(), policy, func(ctx context.Context) error {
		calls++
		return errFinal
	})
	assert.ErrorIs(t, err, errFinal)
	assert.Equal(t, 3, calls)
}

func TestRetryRespetaCancelacion(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	policy := RetryPolicy{Attempts: 3, Backoff: func(int) time.Duration { return time.Hour }}
	calls := 0
	err := Retry(ctx, policy, func(ctx context.Context) error {
		calls++
		return errors.New("falla")
	})

	// Con el contexto cancelado no se espera el backoff
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestLinearBackoffEscala(t *testing.T) {
	backoff := LinearBackoff(time.Second)
	assert.Equal(t, time.Second, backoff(1))
	assert.Equal(t, 2*time.Second, backoff(2))
	assert.Equal(t, 3*time.Second, backoff(3))
}
