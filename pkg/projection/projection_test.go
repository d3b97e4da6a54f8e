package projection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCamera() Camera {
	return Camera{
		X:         0,
		Y:         1000,
		Z:         0,
		Depth:     CameraDepth(100),
		Width:     1024,
		Height:    768,
		RoadWidth: 2000,
	}
}

func TestCameraDepth(t *testing.T) {
	assert.InDelta(t, 1.0, CameraDepth(90), 1e-12)
	assert.InDelta(t, 1/math.Tan(50*math.Pi/180), CameraDepth(100), 1e-12)
}

func TestProjectIsIdempotent(t *testing.T) {
	cam := testCamera()
	p := World{X: 350, Y: 120, Z: 4000}
	a, okA := Project(p, cam)
	b, okB := Project(p, cam)
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, a, b)
}

func TestProjectBehindCamera(t *testing.T) {
	cam := testCamera()
	for _, z := range []float64{0, -1, -5000} {
		pt, ok := Project(World{Z: z}, cam)
		assert.False(t, ok, "z=%v", z)
		assert.Zero(t, pt.Scale)
		assert.False(t, math.IsNaN(pt.X) || math.IsInf(pt.X, 0))
	}
}

func TestProjectCentredRoadIsSymmetric(t *testing.T) {
	cam := testCamera()
	for z := 200.0; z < 60000; z += 200 {
		pt, ok := Project(World{Z: z}, cam)
		require.True(t, ok)
		left, right := pt.X-pt.W, pt.X+pt.W
		assert.InDelta(t, float64(cam.Width)/2, (left+right)/2, 1e-9, "z=%v", z)
	}
}

func TestProjectHorizon(t *testing.T) {
	cam := testCamera()
	near, _ := Project(World{Z: 500}, cam)
	far, _ := Project(World{Z: 50000}, cam)
	// ground below the camera rises towards the horizon with distance
	assert.Greater(t, near.Y, far.Y)
	assert.Greater(t, far.Y, float64(cam.Height)/2)
	assert.Greater(t, near.W, far.W)
}
