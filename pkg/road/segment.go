package road

import (
	"github.com/golangdaddy/roadrush/pkg/projection"
	"github.com/golangdaddy/roadrush/pkg/sprite"
	"github.com/golangdaddy/roadrush/pkg/vehicle"
)

// Band is the colour band of a segment.
type Band int

const (
	BandLight Band = iota
	BandDark
	BandStart
	BandFinish
)

func (b Band) String() string {
	switch b {
	case BandLight:
		return "light"
	case BandDark:
		return "dark"
	case BandStart:
		return "start"
	case BandFinish:
		return "finish"
	}
	return "unknown"
}

// Prop is a roadside decoration. Offset is in road half widths, negative is
// left of centre.
type Prop struct {
	Kind   sprite.Kind
	Offset float64
}

// Segment is one fixed length slice of the track. P1 is the near edge and P2
// the far edge, both on the road centre line.
type Segment struct {
	Index int
	P1    projection.World
	P2    projection.World
	Curve float64
	Band  Band
	Props []Prop
	// Cars currently inside this segment. Only Track mutates it.
	Cars []*vehicle.Car
}

// Slope is the elevation change across the segment.
func (s *Segment) Slope() float64 {
	return s.P2.Y - s.P1.Y
}
