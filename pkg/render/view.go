package render

import (
	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/road"
	"github.com/golangdaddy/roadrush/pkg/sprite"
)

// View is everything the rasterizer needs to draw one frame.
type View struct {
	Track    *road.Track
	Position float64 // camera Z
	PlayerX  float64
	Speed    float64
	Steer    float64 // -1, 0 or 1
	// Parallax is the horizontal scroll of each background layer in [0,1).
	Parallax [3]float64
	// Bounce is the vertical jitter of the player sprite in pixels.
	Bounce float64
}

// Offset returns the scroll of layer l.
func (v View) Offset(l sprite.Layer) float64 {
	return v.Parallax[l]
}

// Params are the projection and drawing settings.
type Params struct {
	Width        int
	Height       int
	Lanes        int
	RoadWidth    float64
	CameraHeight float64
	CameraDepth  float64
	DrawDistance int
	FogDensity   float64
	PlayerZ      float64
	Resolution   float64
	MaxSpeed     float64
}

// NewParams takes the drawing settings from cfg.
func NewParams(cfg config.Config) Params {
	return Params{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Lanes:        cfg.Lanes,
		RoadWidth:    cfg.RoadWidth,
		CameraHeight: cfg.CameraHeight,
		CameraDepth:  cfg.CameraDepth(),
		DrawDistance: cfg.DrawDistance,
		FogDensity:   cfg.FogDensity,
		PlayerZ:      cfg.PlayerZ(),
		Resolution:   cfg.Resolution(),
		MaxSpeed:     cfg.MaxSpeed(),
	}
}
