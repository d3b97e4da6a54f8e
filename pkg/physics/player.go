// Package physics integrates the player car.
package physics

import (
	"math"

	"github.com/golangdaddy/roadrush/pkg/input"
	"github.com/golangdaddy/roadrush/pkg/mathutil"
	"github.com/golangdaddy/roadrush/pkg/road"
	"github.com/golangdaddy/roadrush/pkg/sprite"
)

const (
	// CarHitPercent shrinks both boxes so only a firm hit counts.
	CarHitPercent = 0.8
	// propReach is how far from the centre line props can be hit.
	propReach = 2
)

// Collision names what the player hit during a step.
type Collision int

const (
	NoCollision Collision = iota
	HitProp
	HitCar
)

// Player is the player's car and lap clock. BestLap is 0 until a lap has
// been completed.
type Player struct {
	Position   float64 // camera Z, the car is PlayerZ ahead of it
	X          float64
	Speed      float64
	CurrentLap float64
	LastLap    float64
	BestLap    float64
}

// Events reports what happened during one Step.
type Events struct {
	Segment       *road.Segment // segment under the car at the start of the step
	StartPosition float64
	Collision     Collision
	LapCompleted  bool
	NewBest       bool
}

// Width is the player's footprint in road units.
func (p *Player) Width() float64 {
	return sprite.PlayerStraight.Width()
}

func (p *Player) Lateral() float64  { return p.X }
func (p *Player) Velocity() float64 { return p.Speed }

// SpeedPercent is the speed as a fraction of params.MaxSpeed.
func (p *Player) SpeedPercent(params Params) float64 {
	return p.Speed / params.MaxSpeed
}

// Step advances the player by dt seconds. Traffic must already have been
// updated for this tick.
func (p *Player) Step(dt float64, in input.Intents, track *road.Track, params Params) Events {
	length := track.Length()
	seg := track.FindSegment(p.Position + params.PlayerZ)
	speedPercent := p.SpeedPercent(params)
	dx := dt * params.SteerRate * speedPercent
	ev := Events{
		Segment:       seg,
		StartPosition: p.Position,
	}

	p.Position = mathutil.Increase(p.Position, dt*p.Speed, length)

	// steering first, then the pull to the outside of the curve
	p.X += dx * in.Steer()
	p.X -= dx * speedPercent * seg.Curve * params.Centrifugal

	switch {
	case in.Faster:
		p.Speed = mathutil.Accelerate(p.Speed, params.Accel, dt)
	case in.Slower:
		p.Speed = mathutil.Accelerate(p.Speed, params.Braking, dt)
	default:
		p.Speed = mathutil.Accelerate(p.Speed, params.Decel, dt)
	}

	if p.X < -1 || p.X > 1 {
		if p.Speed > params.OffRoadLimit {
			p.Speed = mathutil.Accelerate(p.Speed, params.OffRoadDecel, dt)
		}
		if p.hitProp(seg, params, length) {
			ev.Collision = HitProp
		}
	}

	if p.hitCar(seg, params, length) {
		ev.Collision = HitCar
	}

	p.X = mathutil.Limit(p.X, -params.MaxX, params.MaxX)
	p.Speed = mathutil.Limit(p.Speed, 0, params.MaxSpeed)

	// a bounce can carry the car backwards across the wrap, which is not a
	// crossing of the start line
	forward := mathutil.Delta(ev.StartPosition, p.Position, length) > 0
	if p.Position > params.PlayerZ {
		if p.CurrentLap > 0 && ev.StartPosition < params.PlayerZ && forward {
			ev.LapCompleted = true
			ev.NewBest = p.finishLap()
		} else {
			p.CurrentLap += dt
		}
	}
	return ev
}

// hitProp bounces the player back to the start of seg if it drives into a
// roadside prop. Props are hit on their road facing side.
func (p *Player) hitProp(seg *road.Segment, params Params, length float64) bool {
	for _, prop := range seg.Props {
		if math.Abs(prop.Offset) > propReach {
			continue
		}
		w := prop.Kind.Width() * prop.Kind.HitFraction()
		side := 1.0
		if prop.Offset <= 0 {
			side = -1
		}
		if mathutil.Overlap(p.X, p.Width(), prop.Offset+w/2*side, w, 1) {
			p.Speed = params.MaxSpeed / 5
			p.Position = mathutil.Increase(seg.P1.Z, -params.PlayerZ, length)
			return true
		}
	}
	return false
}

// hitCar slows the player to below the speed of a car it runs into and drops
// it in behind.
func (p *Player) hitCar(seg *road.Segment, params Params, length float64) bool {
	for _, car := range seg.Cars {
		if p.Speed <= car.Speed {
			continue
		}
		if mathutil.Overlap(p.X, p.Width(), car.Offset, car.Width(), CarHitPercent) {
			p.Speed = car.Speed * (car.Speed / p.Speed)
			p.Position = mathutil.Increase(car.Z, -params.PlayerZ, length)
			return true
		}
	}
	return false
}

// finishLap rolls the lap clock and reports whether the lap was the best so
// far. Equalling the best counts.
func (p *Player) finishLap() bool {
	p.LastLap = p.CurrentLap
	p.CurrentLap = 0
	if p.BestLap == 0 || p.LastLap <= p.BestLap {
		p.BestLap = p.LastLap
		return true
	}
	return false
}
