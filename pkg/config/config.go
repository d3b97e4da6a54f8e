package config

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/roadrush/pkg/projection"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// MaxFogDensity is the densest fog Validate accepts.
const MaxFogDensity = 10

// Config holds every tunable of a race. Changing SegmentLength or
// RumbleLength requires the track to be rebuilt, see NeedsRebuild.
type Config struct {
	Width        int
	Height       int
	Lanes        int
	RoadWidth    float64 // half the road width, the road spans -RoadWidth..RoadWidth
	CameraHeight float64
	DrawDistance int // number of segments to draw
	FogDensity   float64
	FieldOfView  float64 // degrees

	SegmentLength float64
	RumbleLength  int // segments per colour band

	TotalCars   int
	Seed        int64 // 0 picks a time based seed
	FPS         int
	Centrifugal float64

	ProfilePath string
	AssetDir    string
}

// Default returns the classic racer settings.
func Default() Config {
	return Config{
		Width:         1024,
		Height:        768,
		Lanes:         3,
		RoadWidth:     2000,
		CameraHeight:  1000,
		DrawDistance:  300,
		FogDensity:    5,
		FieldOfView:   100,
		SegmentLength: 200,
		RumbleLength:  3,
		TotalCars:     200,
		FPS:           60,
		Centrifugal:   0.3,
	}
}

// Validate checks every option is usable. The returned error wraps
// ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Lanes < 1 || c.Lanes > 6:
		return fmt.Errorf("%w: lanes %d not in 1..6", ErrInvalidConfig, c.Lanes)
	case c.RoadWidth <= 0:
		return fmt.Errorf("%w: road width %v", ErrInvalidConfig, c.RoadWidth)
	case c.CameraHeight <= 0:
		return fmt.Errorf("%w: camera height %v", ErrInvalidConfig, c.CameraHeight)
	case c.DrawDistance < 1:
		return fmt.Errorf("%w: draw distance %d", ErrInvalidConfig, c.DrawDistance)
	case c.FogDensity < 0 || c.FogDensity > MaxFogDensity:
		return fmt.Errorf("%w: fog density %v not in 0..%v", ErrInvalidConfig, c.FogDensity, MaxFogDensity)
	case c.FieldOfView <= 0 || c.FieldOfView >= 180:
		return fmt.Errorf("%w: field of view %v not in (0,180)", ErrInvalidConfig, c.FieldOfView)
	case c.SegmentLength <= 0:
		return fmt.Errorf("%w: segment length %v", ErrInvalidConfig, c.SegmentLength)
	case c.RumbleLength < 1:
		return fmt.Errorf("%w: rumble length %d", ErrInvalidConfig, c.RumbleLength)
	case c.TotalCars < 0:
		return fmt.Errorf("%w: total cars %d", ErrInvalidConfig, c.TotalCars)
	case c.FPS < 1:
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.FPS)
	}
	return nil
}

// NeedsRebuild reports whether moving from old to next invalidates the built
// track. Projection options never do.
func NeedsRebuild(old, next Config) bool {
	return old.SegmentLength != next.SegmentLength ||
		old.RumbleLength != next.RumbleLength ||
		old.TotalCars != next.TotalCars ||
		old.Seed != next.Seed
}

// Step is the fixed physics step in seconds.
func (c Config) Step() float64 {
	return 1 / float64(c.FPS)
}

// CameraDepth is the projection plane distance derived from the field of view.
func (c Config) CameraDepth() float64 {
	return projection.CameraDepth(c.FieldOfView)
}

// PlayerZ is the distance from the camera to the player car.
func (c Config) PlayerZ() float64 {
	return c.CameraHeight * c.CameraDepth()
}

// Resolution scales sprite jitter and parallax to the viewport height.
func (c Config) Resolution() float64 {
	return float64(c.Height) / 480
}

// MaxSpeed is one segment per step, the fastest the player can go without
// skipping segments.
func (c Config) MaxSpeed() float64 {
	return c.SegmentLength / c.Step()
}
