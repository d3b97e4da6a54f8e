package road

import (
	"errors"
	"fmt"
	"math"

	"github.com/golangdaddy/roadrush/pkg/mathutil"
	"github.com/golangdaddy/roadrush/pkg/projection"
	"github.com/golangdaddy/roadrush/pkg/sprite"
)

var (
	// ErrBadShape is returned when a shape generator gets arguments that
	// cannot produce segments.
	ErrBadShape = errors.New("bad road shape")
	// ErrEmptyTrack is returned by Build when no segments were added.
	ErrEmptyTrack = errors.New("track has no segments")
	// ErrMembership reports cars missing from, or duplicated across, segments.
	ErrMembership = errors.New("car membership out of sync")
)

// Section lengths in segments.
const (
	LengthNone   = 0
	LengthShort  = 25
	LengthMedium = 50
	LengthLong   = 100
)

// Hill heights in segment lengths.
const (
	HillNone   = 0
	HillLow    = 20
	HillMedium = 40
	HillHigh   = 60
)

// Curve strengths.
const (
	CurveNone   = 0
	CurveEasy   = 2
	CurveMedium = 4
	CurveHard   = 6
)

// Builder appends road sections one after another. The first error stops
// all further work and is returned by Build.
type Builder struct {
	segmentLength float64
	rumbleLength  int
	segments      []*Segment
	err           error
}

// NewBuilder creates a new builder for segments of the given length, banded
// every rumbleLength segments.
func NewBuilder(segmentLength float64, rumbleLength int) *Builder {
	b := &Builder{
		segmentLength: segmentLength,
		rumbleLength:  rumbleLength,
	}
	if segmentLength <= 0 || rumbleLength <= 0 {
		b.err = fmt.Errorf("%w: segment length %v, rumble length %d", ErrBadShape, segmentLength, rumbleLength)
	}
	return b
}

func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) Len() int {
	return len(b.segments)
}

func (b *Builder) lastY() float64 {
	if len(b.segments) == 0 {
		return 0
	}
	return b.segments[len(b.segments)-1].P2.Y
}

func (b *Builder) addSegment(curve, y float64) {
	n := len(b.segments)
	band := BandLight
	if (n/b.rumbleLength)%2 == 1 {
		band = BandDark
	}
	b.segments = append(b.segments, &Segment{
		Index: n,
		P1:    projection.World{Y: b.lastY(), Z: float64(n) * b.segmentLength},
		P2:    projection.World{Y: y, Z: float64(n+1) * b.segmentLength},
		Curve: curve,
		Band:  band,
	})
}

// AddRoad appends enter+hold+leave segments. Curvature eases in over enter,
// holds, then eases out over leave. Elevation climbs by height segment
// lengths with a smoothstep over the whole section.
func (b *Builder) AddRoad(enter, hold, leave int, curve, height float64) *Builder {
	if b.err != nil {
		return b
	}
	if enter <= 0 || leave <= 0 || hold < 0 {
		b.err = fmt.Errorf("%w: enter=%d hold=%d leave=%d", ErrBadShape, enter, hold, leave)
		return b
	}
	startY := b.lastY()
	endY := startY + math.Trunc(height)*b.segmentLength
	total := float64(enter + hold + leave)

	for n := 0; n < enter; n++ {
		b.addSegment(mathutil.EaseIn(0, curve, float64(n)/float64(enter)), mathutil.EaseInOut(startY, endY, float64(n)/total))
	}
	for n := 0; n < hold; n++ {
		b.addSegment(curve, mathutil.EaseInOut(startY, endY, float64(enter+n)/total))
	}
	for n := 0; n < leave; n++ {
		b.addSegment(mathutil.EaseInOut(curve, 0, float64(n)/float64(leave)), mathutil.EaseInOut(startY, endY, float64(enter+hold+n)/total))
	}
	return b
}

func (b *Builder) Straight(num int) *Builder {
	return b.AddRoad(num, num, num, 0, 0)
}

func (b *Builder) Hill(num int, height float64) *Builder {
	return b.AddRoad(num, num, num, 0, height)
}

func (b *Builder) Curve(num int, curve, height float64) *Builder {
	return b.AddRoad(num, num, num, curve, height)
}

// LowRollingHills is six sections of gentle rises and dips.
func (b *Builder) LowRollingHills(num int, height float64) *Builder {
	b.AddRoad(num, num, num, 0, height/2)
	b.AddRoad(num, num, num, 0, -height)
	b.AddRoad(num, num, num, 0, height)
	b.AddRoad(num, num, num, 0, 0)
	b.AddRoad(num, num, num, 0, height/2)
	return b.AddRoad(num, num, num, 0, 0)
}

// SCurves alternates easy curves, each one rumble band long.
func (b *Builder) SCurves() *Builder {
	n := b.rumbleLength
	for _, c := range []float64{-CurveEasy, CurveEasy, -CurveEasy, CurveEasy} {
		b.AddRoad(n, n, n, c, 0)
	}
	return b
}

// Bumps is a run of short sharp elevation changes.
func (b *Builder) Bumps() *Builder {
	for _, h := range []float64{5, -2, -5, 8, 5, -7, 5, -2} {
		b.AddRoad(10, 10, 10, 0, h)
	}
	return b
}

// DownhillToEnd brings the road back down to the starting elevation so the
// ring closes.
func (b *Builder) DownhillToEnd(num int) *Builder {
	if b.err != nil {
		return b
	}
	return b.AddRoad(num, num, num, 0, -b.lastY()/b.segmentLength)
}

// AddProp decorates segment n. Indices outside the built road are ignored.
func (b *Builder) AddProp(n int, kind sprite.Kind, offset float64) *Builder {
	if b.err != nil || n < 0 || n >= len(b.segments) {
		return b
	}
	seg := b.segments[n]
	seg.Props = append(seg.Props, Prop{Kind: kind, Offset: offset})
	return b
}

// Build finishes the ring. The two segments just past the player's
// position at the start of the race become the start line and the last
// rumble band the finish line. The builder must not be used afterwards.
func (b *Builder) Build(playerZ float64) (*Track, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.segments) == 0 {
		return nil, ErrEmptyTrack
	}
	t := &Track{
		segments:      b.segments,
		segmentLength: b.segmentLength,
		rumbleLength:  b.rumbleLength,
	}
	start := t.FindSegment(playerZ).Index
	t.Segment(start + 2).Band = BandStart
	t.Segment(start + 3).Band = BandStart
	for n := 0; n < b.rumbleLength && n < len(b.segments); n++ {
		b.segments[len(b.segments)-1-n].Band = BandFinish
	}
	b.segments = nil
	return t, nil
}
