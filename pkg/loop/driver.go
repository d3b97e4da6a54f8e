// Package loop decouples fixed step simulation from the frame rate.
package loop

import (
	"context"
	"time"
)

// MaxFrame caps how much wall clock time one frame may feed the
// simulation, so a stall does not turn into a burst of catch up ticks.
const MaxFrame = 1.0

// Driver accumulates elapsed time and spends it in whole steps.
type Driver struct {
	step  float64
	spare float64
}

// NewDriver creates a new driver ticking every step seconds.
func NewDriver(step float64) *Driver {
	return &Driver{step: step}
}

func (d *Driver) Step() float64 {
	return d.step
}

// Advance adds elapsed seconds and calls tick once per whole step available.
// It returns the number of ticks run.
func (d *Driver) Advance(elapsed float64, tick func(dt float64)) int {
	if elapsed < 0 {
		elapsed = 0
	}
	d.spare += min(MaxFrame, elapsed)
	n := 0
	for d.spare > d.step {
		d.spare -= d.step
		tick(d.step)
		n++
	}
	return n
}

// Run calls frame every interval with the seconds elapsed since the previous
// call until ctx is done or frame returns an error.
func Run(ctx context.Context, interval time.Duration, frame func(elapsed float64) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			elapsed := now.Sub(last).Seconds()
			last = now
			if err := frame(elapsed); err != nil {
				return err
			}
		}
	}
}
