package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdvance(t *testing.T) {
	d := NewDriver(1.0 / 60)
	var ticks []float64
	tick := func(dt float64) { ticks = append(ticks, dt) }

	assert.Equal(t, 0, d.Advance(0.01, tick))
	assert.Equal(t, 1, d.Advance(0.01, tick))
	assert.InDelta(t, 0.02-1.0/60, d.spare, 1e-12)

	ticks = nil
	assert.Equal(t, 6, d.Advance(0.11-d.spare, tick))
	assert.Len(t, ticks, 6)
	for _, dt := range ticks {
		assert.Equal(t, 1.0/60, dt)
	}
}

func TestAdvanceCapsLongFrames(t *testing.T) {
	d := NewDriver(0.1)
	n := d.Advance(30, func(float64) {})
	assert.LessOrEqual(t, n, 10)
	assert.GreaterOrEqual(t, n, 9)
	assert.Equal(t, 0, NewDriver(0.1).Advance(-5, func(float64) {}))
}

func TestRun(t *testing.T) {
	stop := errors.New("stop")
	frames := 0
	var total float64
	err := Run(context.Background(), time.Millisecond, func(elapsed float64) error {
		frames++
		total += elapsed
		if frames == 5 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 5, frames)
	assert.Positive(t, total)
}

func TestRunCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, time.Hour, func(float64) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
