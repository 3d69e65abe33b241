package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbckr/dnsdumper/internal/ratelimit"
)

func TestNew_Unlimited(t *testing.T) {
	assert.Nil(t, ratelimit.New(0))
	assert.Nil(t, ratelimit.New(-3))

	var l *ratelimit.Limiter
	for range 1000 {
		require.NoError(t, l.Wait(context.Background()))
	}
}

func TestWait_NilLimiterHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var l *ratelimit.Limiter
	assert.ErrorIs(t, l.Wait(ctx), context.Canceled)
}

func TestWait_BurstIsImmediate(t *testing.T) {
	l := ratelimit.New(50)
	start := time.Now()
	for range 50 {
		require.NoError(t, l.Wait(context.Background()))
	}
	assert.Less(t, time.Since(start), 200*time.Millisecond)
}

func TestWait_Throttles(t *testing.T) {
	l := ratelimit.New(10)
	for range 10 {
		require.NoError(t, l.Wait(context.Background()))
	}

	start := time.Now()
	require.NoError(t, l.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond, "bucket exhausted, next token is ~100ms away")
}

func TestWait_ContextCancelled(t *testing.T) {
	l := ratelimit.New(1)
	require.NoError(t, l.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, l.Wait(ctx))
}
