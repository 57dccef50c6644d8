package sandbox

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastSettle() SettleOptions {
	return SettleOptions{
		Interval:      time.Millisecond,
		StableSamples: 3,
		Timeout:       time.Second,
		Fallback:      5 * time.Millisecond,
	}
}

func TestSettle_WaitsForStableHeight(t *testing.T) {
	s := &fakeSurface{heights: []int{100, 400, 900, 1200, 1200, 1200}}

	res, err := Settle(context.Background(), s, fastSettle())
	require.NoError(t, err)

	assert.Equal(t, OutcomeStable, res.Outcome)
	assert.Equal(t, 1200, res.Height)
	assert.Equal(t, 6, res.Samples)
}

func TestSettle_ResetsStreakOnChange(t *testing.T) {
	s := &fakeSurface{heights: []int{500, 500, 600, 600, 600}}

	res, err := Settle(context.Background(), s, fastSettle())
	require.NoError(t, err)

	assert.Equal(t, 600, res.Height)
	assert.Equal(t, 5, res.Samples)
}

func TestSettle_TimesOutWithLastHeight(t *testing.T) {
	heights := make([]int, 10000)
	for i := range heights {
		heights[i] = i
	}
	s := &fakeSurface{heights: heights}
	opts := fastSettle()
	opts.Timeout = 20 * time.Millisecond

	res, err := Settle(context.Background(), s, opts)
	require.NoError(t, err)

	assert.Equal(t, OutcomeTimedOut, res.Outcome)
	assert.Positive(t, res.Samples)
	assert.Equal(t, res.Samples-1, res.Height)
}

func TestSettle_FallsBackWhenProbeFails(t *testing.T) {
	s := &fakeSurface{heightErr: errBoom}
	opts := fastSettle()
	opts.Fallback = 15 * time.Millisecond

	start := time.Now()
	res, err := Settle(context.Background(), s, opts)
	require.NoError(t, err)

	assert.Equal(t, OutcomeFallback, res.Outcome)
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
}

func TestSettle_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &fakeSurface{heightErr: errBoom}

	_, err := Settle(ctx, s, fastSettle())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSettleOptions_Defaults(t *testing.T) {
	o := SettleOptions{Fallback: -1}.withDefaults()
	d := DefaultSettleOptions()

	assert.Equal(t, d.Interval, o.Interval)
	assert.Equal(t, d.StableSamples, o.StableSamples)
	assert.Equal(t, d.Timeout, o.Timeout)
	assert.Zero(t, o.Fallback)
}
