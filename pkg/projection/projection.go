// Package projection maps track space onto the screen.
//
// Track space has X across the road (the road spans -RoadWidth..RoadWidth),
// Y up and Z along the track. The camera looks straight down +Z.
package projection

import "math"

// World is a point in track space.
type World struct {
	X, Y, Z float64
}

// Camera describes the viewer for a single Project call.
type Camera struct {
	X, Y, Z   float64
	Depth     float64 // distance to the projection plane, see CameraDepth
	Width     int
	Height    int
	RoadWidth float64
}

// Point is the result of projecting a World point.
type Point struct {
	World  World
	Camera World // camera relative coordinates
	Scale  float64
	X, Y   float64 // screen position, rounded to whole pixels
	W      float64 // screen half width of the road at this point
}

// CameraDepth converts a field of view in degrees to a projection plane
// distance.
func CameraDepth(fieldOfView float64) float64 {
	return 1 / math.Tan((fieldOfView/2)*math.Pi/180)
}

// Project returns the screen position of p. ok is false when p is on or
// behind the camera plane, in which case only Point.World and Point.Camera
// are set.
func Project(p World, cam Camera) (Point, bool) {
	out := Point{
		World: p,
		Camera: World{
			X: p.X - cam.X,
			Y: p.Y - cam.Y,
			Z: p.Z - cam.Z,
		},
	}
	if out.Camera.Z <= 0 {
		return out, false
	}
	halfW := float64(cam.Width) / 2
	halfH := float64(cam.Height) / 2

	out.Scale = cam.Depth / out.Camera.Z
	out.X = math.Round(halfW + out.Scale*out.Camera.X*halfW)
	out.Y = math.Round(halfH - out.Scale*out.Camera.Y*halfH)
	out.W = math.Round(out.Scale * cam.RoadWidth * halfW)
	return out, true
}
