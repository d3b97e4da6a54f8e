package road

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golangdaddy/roadrush/pkg/sprite"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStraightRunIsFlat(t *testing.T) {
	b := NewBuilder(200, 3)
	b.AddRoad(10, 30, 10, 0, 0)
	track, err := b.Build(0)
	require.NoError(t, err)
	require.Equal(t, 50, track.Len())
	for _, seg := range track.Segments() {
		assert.Zero(t, seg.Curve)
		assert.Zero(t, seg.P1.Y)
		assert.Zero(t, seg.P2.Y)
	}
}

func TestAddRoadEasing(t *testing.T) {
	b := NewBuilder(100, 3)
	b.AddRoad(5, 5, 5, CurveHard, 10)
	track, err := b.Build(0)
	require.NoError(t, err)
	segs := track.Segments()

	assert.Zero(t, segs[0].Curve, "entry starts straight")
	for i := 1; i < 5; i++ {
		assert.Greater(t, segs[i].Curve, segs[i-1].Curve, "entry eases in")
	}
	for i := 5; i < 10; i++ {
		assert.Equal(t, float64(CurveHard), segs[i].Curve)
	}
	assert.Equal(t, float64(CurveHard), segs[10].Curve, "exit starts at full curve")
	for i := 11; i < 15; i++ {
		assert.Less(t, segs[i].Curve, segs[i-1].Curve, "exit eases out")
	}

	for i := 1; i < len(segs); i++ {
		assert.Equal(t, segs[i-1].P2.Y, segs[i].P1.Y, "elevation is continuous")
		assert.GreaterOrEqual(t, segs[i].P2.Y, segs[i].P1.Y)
	}
	assert.Less(t, segs[14].P2.Y, 1000.0)
}

func TestBuilderBands(t *testing.T) {
	b := NewBuilder(200, 3)
	b.Straight(10)
	track, err := b.Build(0)
	require.NoError(t, err)
	segs := track.Segments()
	assert.Equal(t, BandLight, segs[0].Band)
	assert.Equal(t, BandLight, segs[1].Band)
	assert.Equal(t, BandStart, segs[2].Band)
	assert.Equal(t, BandStart, segs[3].Band)
	assert.Equal(t, BandDark, segs[4].Band)
	assert.Equal(t, BandLight, segs[6].Band)
	assert.Equal(t, BandDark, segs[9].Band)
	for _, s := range segs[27:] {
		assert.Equal(t, BandFinish, s.Band)
	}
	assert.NotEqual(t, BandFinish, segs[26].Band)
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Builder
		want  error
	}{
		{"zero entry ramp", func() *Builder { return NewBuilder(200, 3).AddRoad(0, 5, 5, 0, 0) }, ErrBadShape},
		{"zero exit ramp", func() *Builder { return NewBuilder(200, 3).AddRoad(5, 5, 0, 0, 0) }, ErrBadShape},
		{"negative hold", func() *Builder { return NewBuilder(200, 3).AddRoad(5, -1, 5, 0, 0) }, ErrBadShape},
		{"zero straight", func() *Builder { return NewBuilder(200, 3).Straight(0) }, ErrBadShape},
		{"bad segment length", func() *Builder { return NewBuilder(0, 3).Straight(5) }, ErrBadShape},
		{"bad rumble length", func() *Builder { return NewBuilder(200, 0).Straight(5) }, ErrBadShape},
		{"empty", func() *Builder { return NewBuilder(200, 3) }, ErrEmptyTrack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track, err := tt.build().Build(0)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, track)
		})
	}
}

func TestErrorStopsBuilding(t *testing.T) {
	b := NewBuilder(200, 3)
	b.Straight(5).AddRoad(0, 0, 0, 0, 0).Straight(5)
	assert.Equal(t, 15, b.Len())
	assert.ErrorIs(t, b.Err(), ErrBadShape)
}

func TestAddPropOutOfRange(t *testing.T) {
	b := NewBuilder(200, 3).Straight(2)
	b.AddProp(-1, sprite.Tree1, 0).AddProp(6, sprite.Tree1, 0).AddProp(5, sprite.Tree2, 1.5)
	track, err := b.Build(0)
	require.NoError(t, err)
	assert.Equal(t, []Prop{{Kind: sprite.Tree2, Offset: 1.5}}, track.Segment(5).Props)
}

func defaultOptions() Options {
	return Options{
		SegmentLength: 200,
		RumbleLength:  3,
		PlayerZ:       1000 * 0.8390996311772799,
		TotalCars:     200,
		MaxSpeed:      12000,
	}
}

func TestBuildDefault(t *testing.T) {
	track, cars, err := BuildDefault(defaultOptions(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, 5013, track.Len())
	assert.Equal(t, 5013*200.0, track.Length())
	require.Len(t, cars, 200)
	require.NoError(t, track.CheckMembership(cars))

	last := track.Segment(track.Len() - 1)
	assert.Less(t, math.Abs(last.P2.Y), 2*track.SegmentLength(), "downhill closes the loop")

	for _, car := range cars {
		assert.LessOrEqual(t, math.Abs(car.Offset), 0.8)
		assert.GreaterOrEqual(t, car.Speed, 3000.0)
		if car.Kind == sprite.Semi {
			assert.LessOrEqual(t, car.Speed, 6000.0)
		} else {
			assert.LessOrEqual(t, car.Speed, 9000.0)
		}
		assert.Zero(t, math.Mod(car.Z, 200))
	}

	assert.Equal(t, BandStart, track.Segment(track.FindSegment(defaultOptions().PlayerZ).Index+2).Band)
	assert.Equal(t, []Prop{{Kind: sprite.Billboard07, Offset: -1}}, track.Segment(20).Props)
}

func TestBuildDefaultIsDeterministic(t *testing.T) {
	a, carsA, err := BuildDefault(defaultOptions(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, carsB, err := BuildDefault(defaultOptions(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	props := func(tr *Track) [][]Prop {
		out := make([][]Prop, tr.Len())
		for i, s := range tr.Segments() {
			out[i] = s.Props
		}
		return out
	}
	assert.Empty(t, cmp.Diff(props(a), props(b)))
	assert.Empty(t, cmp.Diff(carsA, carsB))
}
