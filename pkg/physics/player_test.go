package physics

import (
	"testing"

	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/input"
	"github.com/golangdaddy/roadrush/pkg/road"
	"github.com/golangdaddy/roadrush/pkg/sprite"
	"github.com/golangdaddy/roadrush/pkg/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

func testParams() Params {
	return NewParams(config.Default())
}

// flat 50 segment track, optionally curving and decorated
func testTrack(t *testing.T, curve float64, props ...func(*road.Builder)) *road.Track {
	t.Helper()
	b := road.NewBuilder(200, 3)
	b.AddRoad(1, 48, 1, curve, 0)
	for _, p := range props {
		p(b)
	}
	track, err := b.Build(0)
	require.NoError(t, err)
	return track
}

func TestParams(t *testing.T) {
	p := testParams()
	assert.InDelta(t, 12000, p.MaxSpeed, 1e-9)
	assert.InDelta(t, 2400, p.Accel, 1e-9)
	assert.InDelta(t, -12000, p.Braking, 1e-9)
	assert.InDelta(t, -2400, p.Decel, 1e-9)
	assert.InDelta(t, -6000, p.OffRoadDecel, 1e-9)
	assert.InDelta(t, 3000, p.OffRoadLimit, 1e-9)
}

func TestNoSteeringAtRest(t *testing.T) {
	track := testTrack(t, 0)
	p := &Player{}
	p.Step(dt, input.Intents{Left: true}, track, testParams())
	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, 0.0, p.Position)

	// throttle is applied after steering so the first tick still cannot turn
	p = &Player{}
	p.Step(dt, input.Intents{Left: true, Faster: true}, track, testParams())
	assert.Equal(t, 0.0, p.X)
	assert.InDelta(t, 40, p.Speed, 1e-9)
}

func TestSteering(t *testing.T) {
	track := testTrack(t, 0)
	params := testParams()
	p := &Player{Speed: params.MaxSpeed / 2}
	p.Step(dt, input.Intents{Right: true}, track, params)
	assert.InDelta(t, dt*2*0.5, p.X, 1e-12)

	p = &Player{Speed: params.MaxSpeed / 2}
	p.Step(dt, input.Intents{Left: true, Right: true}, track, params)
	assert.InDelta(t, -dt*2*0.5, p.X, 1e-12)
}

func TestCentrifugalPull(t *testing.T) {
	track := testTrack(t, road.CurveHard)
	params := testParams()
	p := &Player{Position: 2000, Speed: params.MaxSpeed}
	p.Step(dt, input.Intents{}, track, params)
	assert.InDelta(t, -(dt * 2 * 1 * road.CurveHard * 0.3), p.X, 1e-12)
}

func TestSpeedModel(t *testing.T) {
	tests := []struct {
		name  string
		in    input.Intents
		x     float64
		start float64
		want  float64
	}{
		{"accelerate", input.Intents{Faster: true}, 0, 0, 40},
		{"brake", input.Intents{Slower: true}, 0, 6000, 5800},
		{"coast", input.Intents{}, 0, 6000, 5960},
		{"off road", input.Intents{}, 1.5, 6000, 5860},
		{"off road slow", input.Intents{}, 1.5, 2000, 1960},
		{"top speed", input.Intents{Faster: true}, 0, 12000, 12000},
		{"stopped", input.Intents{Slower: true}, 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track := testTrack(t, 0)
			p := &Player{X: tt.x, Speed: tt.start, Position: 3000}
			p.Step(dt, tt.in, track, testParams())
			assert.InDelta(t, tt.want, p.Speed, 1e-9)
		})
	}
}

func TestLateralClamp(t *testing.T) {
	track := testTrack(t, 0)
	params := testParams()
	p := &Player{X: 2.99, Speed: params.MaxSpeed}
	p.Step(dt, input.Intents{Right: true}, track, params)
	assert.Equal(t, 3.0, p.X)
}

func TestPropCollision(t *testing.T) {
	params := testParams()
	seg := int(params.PlayerZ / 200)
	track := testTrack(t, 0, func(b *road.Builder) {
		b.AddProp(seg, sprite.Column, 1.1)
		b.AddProp(seg, sprite.Tree1, -2.5)
	})

	p := &Player{X: 1.5, Speed: 6000}
	ev := p.Step(dt, input.Intents{}, track, params)
	assert.Equal(t, HitProp, ev.Collision)
	assert.InDelta(t, params.MaxSpeed/5, p.Speed, 1e-9)
	assert.InDelta(t, track.Length()+float64(seg*200)-params.PlayerZ, p.Position, 1e-6)

	// far props are out of reach
	p = &Player{X: -2.5, Speed: 6000}
	ev = p.Step(dt, input.Intents{}, track, params)
	assert.Equal(t, NoCollision, ev.Collision)

	// on the road props are never hit
	p = &Player{X: 0.9, Speed: 6000}
	ev = p.Step(dt, input.Intents{}, track, params)
	assert.Equal(t, NoCollision, ev.Collision)
}

func TestCarCollision(t *testing.T) {
	params := testParams()
	track := testTrack(t, 0)
	seg := track.FindSegment(params.PlayerZ)
	car := vehicle.NewCar(0, sprite.Car01, seg.P1.Z, 0, 3000)
	track.AddCar(car)

	p := &Player{Speed: 6000}
	ev := p.Step(dt, input.Intents{}, track, params)
	assert.Equal(t, HitCar, ev.Collision)
	assert.InDelta(t, 3000*3000/5960.0, p.Speed, 1e-9)
	assert.InDelta(t, track.Length()+seg.P1.Z-params.PlayerZ, p.Position, 1e-6)

	// slower than the car, no hit
	p = &Player{Speed: 1000}
	ev = p.Step(dt, input.Intents{}, track, params)
	assert.Equal(t, NoCollision, ev.Collision)

	// side by side
	p = &Player{Speed: 6000, X: -0.6}
	ev = p.Step(dt, input.Intents{}, track, params)
	assert.Equal(t, NoCollision, ev.Collision)
}

func TestLapCompletion(t *testing.T) {
	params := testParams()
	track := testTrack(t, 0)
	p := &Player{
		Position:   params.PlayerZ - 10,
		Speed:      1200,
		CurrentLap: 65.3,
		LastLap:    80,
		BestLap:    70,
	}
	ev := p.Step(dt, input.Intents{Faster: true}, track, params)
	assert.True(t, ev.LapCompleted)
	assert.True(t, ev.NewBest)
	assert.Equal(t, 65.3, p.LastLap)
	assert.Equal(t, 0.0, p.CurrentLap)
	assert.Equal(t, 65.3, p.BestLap)
}

func TestSlowLapKeepsBest(t *testing.T) {
	params := testParams()
	track := testTrack(t, 0)
	p := &Player{Position: params.PlayerZ - 10, Speed: 1200, CurrentLap: 75, BestLap: 70}
	ev := p.Step(dt, input.Intents{}, track, params)
	assert.True(t, ev.LapCompleted)
	assert.False(t, ev.NewBest)
	assert.Equal(t, 75.0, p.LastLap)
	assert.Equal(t, 70.0, p.BestLap)
}

func TestFirstLapIsBest(t *testing.T) {
	params := testParams()
	track := testTrack(t, 0)
	p := &Player{Position: params.PlayerZ - 10, Speed: 1200, CurrentLap: 90}
	ev := p.Step(dt, input.Intents{}, track, params)
	assert.True(t, ev.NewBest)
	assert.Equal(t, 90.0, p.BestLap)
}

func TestBounceBackAcrossWrapKeepsLap(t *testing.T) {
	params := testParams()
	track := testTrack(t, 0)
	seg := track.FindSegment(100 + params.PlayerZ)
	track.AddCar(vehicle.NewCar(0, sprite.Car01, seg.P1.Z, 0, 3000))

	p := &Player{Position: 100, Speed: 6000, CurrentLap: 60, BestLap: 70}
	ev := p.Step(dt, input.Intents{}, track, params)
	require.Equal(t, HitCar, ev.Collision)
	require.Greater(t, p.Position, track.Length()/2, "bounce wraps behind the line")
	assert.False(t, ev.LapCompleted)
	assert.InDelta(t, 60+dt, p.CurrentLap, 1e-9)

	// short of a second lap
	laps := 0
	for range 90 {
		ev = p.Step(dt, input.Intents{Faster: true}, track, params)
		if ev.LapCompleted {
			laps++
			assert.Greater(t, p.LastLap, 60.0)
		}
	}
	assert.Equal(t, 1, laps)
	assert.Greater(t, p.BestLap, 60.0)
}

func TestLapClock(t *testing.T) {
	params := testParams()
	track := testTrack(t, 0)

	p := &Player{Position: 3000, Speed: 1200, CurrentLap: 1}
	ev := p.Step(dt, input.Intents{}, track, params)
	assert.False(t, ev.LapCompleted)
	assert.InDelta(t, 1+dt, p.CurrentLap, 1e-12)

	// before the start line the clock is stopped
	p = &Player{Position: 0, Speed: 0}
	p.Step(dt, input.Intents{}, track, params)
	assert.Zero(t, p.CurrentLap)
}

func TestFormatLap(t *testing.T) {
	assert.Equal(t, "5.2", FormatLap(5.25))
	assert.Equal(t, "59.9", FormatLap(59.95))
	assert.Equal(t, "1.05.5", FormatLap(65.5))
	assert.Equal(t, "2.00.0", FormatLap(120))
}

func TestReadout(t *testing.T) {
	assert.Equal(t, 0, Readout(0))
	assert.Equal(t, 120, Readout(12000))
	assert.Equal(t, 60, Readout(6100))
}
