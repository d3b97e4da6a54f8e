package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTime(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Zero(t, frameTime(time.Time{}, now))
	assert.InDelta(t, 0.016, frameTime(now, now.Add(16*time.Millisecond)), 1e-9)
	assert.Zero(t, frameTime(now, now.Add(-time.Second)))
}
