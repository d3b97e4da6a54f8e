package physics

import "github.com/golangdaddy/roadrush/pkg/config"

// Params are the driving model constants, all in world units per second.
type Params struct {
	MaxSpeed     float64
	Accel        float64
	Braking      float64
	Decel        float64
	OffRoadDecel float64
	OffRoadLimit float64 // off road deceleration stops below this speed
	Centrifugal  float64
	SteerRate    float64 // road half widths per second at full speed
	MaxX         float64 // hard lateral clamp
	PlayerZ      float64
}

// NewParams derives the model from a config. Everything scales with the top
// speed, which is one segment per physics step.
func NewParams(cfg config.Config) Params {
	max := cfg.MaxSpeed()
	return Params{
		MaxSpeed:     max,
		Accel:        max / 5,
		Braking:      -max,
		Decel:        -max / 5,
		OffRoadDecel: -max / 2,
		OffRoadLimit: max / 4,
		Centrifugal:  cfg.Centrifugal,
		SteerRate:    2,
		MaxX:         3,
		PlayerZ:      cfg.PlayerZ(),
	}
}
