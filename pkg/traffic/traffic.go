// Package traffic moves the AI cars around the ring and steers them around
// slower traffic and the player.
package traffic

import (
	"github.com/golangdaddy/roadrush/pkg/mathutil"
	"github.com/golangdaddy/roadrush/pkg/road"
	"github.com/golangdaddy/roadrush/pkg/vehicle"
)

const (
	// Lookahead is how many segments ahead a car scans for obstacles.
	Lookahead = 20
	// AvoidPercent widens both boxes when looking for something to pass.
	AvoidPercent = 1.2
	// softEdge is where a car with a clear road starts drifting back.
	softEdge   = 0.9
	returnRate = 0.1
)

// Params are the tunables the simulator reads every tick.
type Params struct {
	MaxSpeed     float64
	DrawDistance int
}

// Player is the player as seen by traffic.
type Player struct {
	Segment *road.Segment // segment under the player car
	X       float64
	W       float64
	Speed   float64
}

func (p Player) Lateral() float64  { return p.X }
func (p Player) Width() float64    { return p.W }
func (p Player) Velocity() float64 { return p.Speed }

// Simulator owns the per tick update of every car on a track.
type Simulator struct {
	track  *road.Track
	cars   []*vehicle.Car
	params Params
}

// NewSimulator creates a new simulator. cars must already be registered
// with track.
func NewSimulator(track *road.Track, cars []*vehicle.Car, params Params) *Simulator {
	return &Simulator{
		track:  track,
		cars:   cars,
		params: params,
	}
}

func (s *Simulator) SetParams(p Params) {
	s.params = p
}

// Update advances every car by dt seconds.
func (s *Simulator) Update(dt float64, player Player) {
	length := s.track.Length()
	for _, car := range s.cars {
		from := s.track.FindSegment(car.Z)
		car.Offset += s.steer(car, from, player)
		car.Z = mathutil.Increase(car.Z, dt*car.Speed, length)
		car.Percent = mathutil.PercentRemaining(car.Z, s.track.SegmentLength())
		to := s.track.FindSegment(car.Z)
		if to != from {
			s.track.MoveCar(car, from, to)
		}
	}
}

// steer returns the lateral change for car this tick. The nearest conflict
// wins and closer conflicts steer harder.
func (s *Simulator) steer(car *vehicle.Car, carSeg *road.Segment, player Player) float64 {
	if player.Segment != nil && carSeg.Index-player.Segment.Index > s.params.DrawDistance {
		return 0
	}
	for i := 1; i < Lookahead; i++ {
		seg := s.track.Segment(carSeg.Index + i)
		if seg == player.Segment {
			if d, ok := s.avoid(car, player, i); ok {
				return d
			}
		}
		for _, other := range seg.Cars {
			if other == car {
				continue
			}
			if d, ok := s.avoid(car, other, i); ok {
				return d
			}
		}
	}
	switch {
	case car.Offset < -softEdge:
		return returnRate
	case car.Offset > softEdge:
		return -returnRate
	}
	return 0
}

// avoid reports whether car is catching obstacle, i segments ahead, and
// how far to move away from it.
func (s *Simulator) avoid(car *vehicle.Car, obstacle vehicle.Body, i int) (float64, bool) {
	if car.Speed <= obstacle.Velocity() {
		return 0, false
	}
	x := obstacle.Lateral()
	if !mathutil.Overlap(car.Offset, car.Width(), x, obstacle.Width(), AvoidPercent) {
		return 0, false
	}
	strength := 1 / float64(i) * (car.Speed - obstacle.Velocity()) / s.params.MaxSpeed
	switch {
	case x > 0.5:
		return -strength, true
	case x < -0.5:
		return strength, true
	case car.Offset > x:
		return strength, true
	}
	return -strength, true
}
