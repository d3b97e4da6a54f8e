package vehicle

import (
	"testing"

	"github.com/golangdaddy/roadrush/pkg/sprite"
	"github.com/stretchr/testify/assert"
)

func TestCarIsBody(t *testing.T) {
	var b Body = NewCar(1, sprite.Car01, 200, -0.4, 3000)
	assert.Equal(t, -0.4, b.Lateral())
	assert.Equal(t, 3000.0, b.Velocity())
	assert.InDelta(t, 0.3, b.Width(), 1e-12)
}

