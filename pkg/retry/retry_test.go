package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voicecart/voicecart/pkg/retry"
)

var errTest = errors.New("test error")

func TestDoWithResult(t *testing.T) {
	cfg := retry.Config{
		MaxAttempts: 3,
		Backoff:     retry.ConstantBackoff(time.Millisecond),
	}

	t.Run("FirstAttemptSucceeds", func(t *testing.T) {
		calls := 0
		got, err := retry.DoWithResult(t.Context(), cfg, func() (int, error) {
			calls++
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, 1, calls)
	})

	t.Run("RecoversAfterFailures", func(t *testing.T) {
		calls := 0
		got, err := retry.DoWithResult(t.Context(), cfg, func() (string, error) {
			calls++
			if calls < 3 {
				return "", errTest
			}
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, 3, calls)
	})

	t.Run("ExhaustsAttempts", func(t *testing.T) {
		calls := 0
		_, err := retry.DoWithResult(t.Context(), cfg, func() (int, error) {
			calls++
			return 0, errTest
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, errTest)
		assert.Equal(t, 3, calls)
	})

	t.Run("NonRetryableStopsImmediately", func(t *testing.T) {
		permanent := errors.New("permanent")
		cfg := retry.Config{
			MaxAttempts: 5,
			Backoff:     retry.ConstantBackoff(time.Millisecond),
			ShouldRetry: func(err error) bool {
				return !errors.Is(err, permanent)
			},
		}

		calls := 0
		_, err := retry.DoWithResult(t.Context(), cfg, func() (int, error) {
			calls++
			return 0, permanent
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("CanceledContextBeforeStart", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		calls := 0
		_, err := retry.DoWithResult(ctx, cfg, func() (int, error) {
			calls++
			return 0, nil
		})
		require.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, calls)
	})

	t.Run("CanceledDuringBackoff", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cfg := retry.Config{
			MaxAttempts: 3,
			Backoff:     retry.ConstantBackoff(time.Minute),
		}

		calls := 0
		done := make(chan error, 1)
		go func() {
			_, err := retry.DoWithResult(ctx, cfg, func() (int, error) {
				calls++
				return 0, errTest
			})
			done <- err
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
			assert.ErrorIs(t, err, errTest)
			assert.Equal(t, 1, calls)
		case <-time.After(5 * time.Second):
			t.Fatal("retry did not observe cancellation")
		}
	})
}

func TestDo(t *testing.T) {
	calls := 0
	err := retry.Do(t.Context(), retry.Config{
		MaxAttempts: 2,
		Backoff:     retry.ConstantBackoff(time.Millisecond),
	}, func() error {
		calls++
		if calls == 1 {
			return errTest
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestBackoff(t *testing.T) {
	t.Run("Constant", func(t *testing.T) {
		b := retry.ConstantBackoff(50 * time.Millisecond)
		assert.Equal(t, 50*time.Millisecond, b(1))
		assert.Equal(t, 50*time.Millisecond, b(4))
	})

	t.Run("ExponentialGrows", func(t *testing.T) {
		b := retry.ExponentialBackoff(100 * time.Millisecond)
		first := b(1)
		third := b(3)
		assert.GreaterOrEqual(t, first, 200*time.Millisecond)
		assert.GreaterOrEqual(t, third, 800*time.Millisecond)
		assert.Less(t, third, 1600*time.Millisecond)
	})
}
