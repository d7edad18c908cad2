package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCircuitBreaker_Call(t *testing.T) {
	t.Parallel()
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := New(10, time.Second, 0.3, 2).(*circuitBreaker)
	cb.now = func() time.Time { return clock }

	ok := func() error { return nil }
	errBackend := errors.New("backend down")
	fail := func() error { return errBackend }

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(ok))
	}
	require.Equal(t, Closed, cb.State())

	for i := 0; i < 3; i++ {
		require.ErrorIs(t, cb.Call(fail), errBackend)
	}
	require.Equal(t, Open, cb.State())

	called := false
	err := cb.Call(func() error { called = true; return nil })
	require.ErrorIs(t, err, ErrOpenCB)
	require.False(t, called)

	clock = clock.Add(2 * time.Second)
	require.NoError(t, cb.Call(ok))
	require.Equal(t, HalfOpen, cb.State())

	require.ErrorIs(t, cb.Call(fail), errBackend)
	require.Equal(t, Open, cb.State())

	clock = clock.Add(2 * time.Second)
	require.NoError(t, cb.Call(ok))
	require.NoError(t, cb.Call(ok))
	require.Equal(t, Closed, cb.State())
}

func TestCircuitBreaker_Reset(t *testing.T) {
	t.Parallel()
	cb := New(2, time.Minute, 0.5, 1)
	_ = cb.Call(func() error { return errors.New("boom") })
	require.Equal(t, Open, cb.State())

	cb.Reset()
	require.Equal(t, Closed, cb.State())
	require.NoError(t, cb.Call(func() error { return nil }))
}

func TestCircuitBreaker_HalfOpenLimitsInFlight(t *testing.T) {
	t.Parallel()
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := New(1, time.Second, 0.5, 2).(*circuitBreaker)
	cb.now = func() time.Time { return clock }

	_ = cb.Call(func() error { return errors.New("boom") })
	require.Equal(t, Open, cb.State())
	clock = clock.Add(2 * time.Second)

	release := make(chan struct{})
	started := make(chan struct{}, 2)
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			results <- cb.Call(func() error {
				started <- struct{}{}
				<-release
				return nil
			})
		}()
	}
	<-started
	<-started
	require.Equal(t, HalfOpen, cb.State())

	called := false
	err := cb.Call(func() error { called = true; return nil })
	require.ErrorIs(t, err, ErrOpenCB)
	require.False(t, called)

	close(release)
	require.NoError(t, <-results)
	require.NoError(t, <-results)
	require.Equal(t, Closed, cb.State())
	require.NoError(t, cb.Call(func() error { return nil }))
}
