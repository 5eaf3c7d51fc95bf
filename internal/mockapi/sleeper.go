package mockapi

import (
	"context"
	"math/rand/v2"
	"time"
)

// Sleeper waits out simulated latency. Implementations must return early
// with ctx.Err() when ctx is done.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealSleeper sleeps for the full duration.
type RealSleeper struct{}

func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ScaledSleeper multiplies every delay by Scale; 0 turns latency off.
type ScaledSleeper struct {
	Scale float64
}

func (s ScaledSleeper) Sleep(ctx context.Context, d time.Duration) error {
	return RealSleeper{}.Sleep(ctx, time.Duration(float64(d)*s.Scale))
}

// NoopSleeper never waits.
type NoopSleeper struct{}

func (NoopSleeper) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// SleeperForScale picks the cheapest sleeper for a latency scale.
func SleeperForScale(scale float64) Sleeper {
	switch {
	case scale <= 0:
		return NoopSleeper{}
	case scale == 1:
		return RealSleeper{}
	}
	return ScaledSleeper{Scale: scale}
}

// defaultJitter is the unseeded noise added to request latency. It never
// influences data or failure outcomes.
func defaultJitter() float64 {
	return rand.Float64()
}

func msDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

func sinceMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000
}
