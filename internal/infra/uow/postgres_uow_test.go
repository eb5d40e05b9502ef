//go:build unit

package uow

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < maxRetries; attempt++ {
		floor := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5+time.Nanosecond)
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgErrCodeSerializationFailure}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: pgErrCodeDeadlockDetected}, want: true},
		{name: "exclusion violation", err: &pgconn.PgError{Code: "23P01"}, want: false},
		{name: "plain error", err: assert.AnError, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	retryable := &pgconn.PgError{Code: pgErrCodeSerializationFailure}
	assert.True(t, shouldRetry(retryable, 0))
	assert.False(t, shouldRetry(retryable, maxRetries))
	assert.False(t, shouldRetry(assert.AnError, 0))
}

func TestCryptoRandInt63n(t *testing.T) {
	assert.Zero(t, cryptoRandInt63n(0))
	for range 50 {
		v := cryptoRandInt63n(10)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(10))
	}
}
