// Package world owns the whole simulation: the track, the traffic and the
// player. Nothing outside a World holds simulation state.
package world

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/golangdaddy/roadrush/log"
	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/input"
	"github.com/golangdaddy/roadrush/pkg/mathutil"
	"github.com/golangdaddy/roadrush/pkg/physics"
	"github.com/golangdaddy/roadrush/pkg/render"
	"github.com/golangdaddy/roadrush/pkg/road"
	"github.com/golangdaddy/roadrush/pkg/sprite"
	"github.com/golangdaddy/roadrush/pkg/telemetry"
	"github.com/golangdaddy/roadrush/pkg/traffic"
	"github.com/golangdaddy/roadrush/pkg/vehicle"
)

type World struct {
	cfg     config.Config
	params  physics.Params
	track   *road.Track
	cars    []*vehicle.Car
	traffic *traffic.Simulator
	player  physics.Player
	steer   float64
	// parallax scroll per background layer
	parallax [3]float64
	// jitter is kept apart from the track generator so drawing never
	// changes the layout of a rebuilt track
	jitter *rand.Rand
	sink   telemetry.Sink
}

// New builds a world from cfg. A nil sink discards readings.
func New(cfg config.Config, sink telemetry.Sink) (*World, error) {
	if sink == nil {
		sink = telemetry.Nop{}
	}
	w := &World{sink: sink}
	if err := w.Reset(cfg); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset applies cfg. The track and traffic are rebuilt, and the player put
// back on the grid, only when cfg changes the track itself. Projection and
// driving settings take effect immediately.
func (w *World) Reset(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	rebuild := w.track == nil || config.NeedsRebuild(w.cfg, cfg)
	old := w.cfg
	w.cfg = cfg
	w.params = physics.NewParams(cfg)
	if !rebuild {
		w.traffic.SetParams(w.trafficParams())
		log.Debug("world settings updated",
			log.Float64("fov", cfg.FieldOfView),
			log.Int("drawDistance", cfg.DrawDistance))
		return nil
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	start := time.Now()
	track, cars, err := road.BuildDefault(road.Options{
		SegmentLength: cfg.SegmentLength,
		RumbleLength:  cfg.RumbleLength,
		PlayerZ:       w.params.PlayerZ,
		TotalCars:     cfg.TotalCars,
		MaxSpeed:      w.params.MaxSpeed,
	}, rand.New(rand.NewSource(seed)))
	if err != nil {
		w.cfg = old
		return fmt.Errorf("reset world: %w", err)
	}
	w.track = track
	w.cars = cars
	w.traffic = traffic.NewSimulator(track, cars, w.trafficParams())
	best := w.player.BestLap
	w.player = physics.Player{BestLap: best}
	w.parallax = [3]float64{}
	w.jitter = rand.New(rand.NewSource(seed + 1))

	log.Info("track built",
		log.Int64("seed", seed),
		log.Int("segments", track.Len()),
		log.Float64("length", track.Length()),
		log.Int("cars", len(cars)),
		log.Duration("took", time.Since(start)))
	return nil
}

func (w *World) trafficParams() traffic.Params {
	return traffic.Params{
		MaxSpeed:     w.params.MaxSpeed,
		DrawDistance: w.cfg.DrawDistance,
	}
}

// Advance runs one physics tick of dt seconds. Traffic moves first so the
// player collides with where cars are now.
func (w *World) Advance(dt float64, in input.Intents) physics.Events {
	seg := w.track.FindSegment(w.player.Position + w.params.PlayerZ)
	w.traffic.Update(dt, traffic.Player{
		Segment: seg,
		X:       w.player.X,
		W:       w.player.Width(),
		Speed:   w.player.Speed,
	})

	ev := w.player.Step(dt, in, w.track, w.params)
	w.steer = in.Steer()

	travelled := mathutil.Delta(ev.StartPosition, w.player.Position, w.track.Length()) / w.cfg.SegmentLength
	for _, l := range sprite.Layers {
		w.parallax[l] = mathutil.Increase(w.parallax[l], l.Speed()*ev.Segment.Curve*travelled, 1)
	}

	if ev.LapCompleted {
		w.sink.LapCompleted(w.player.LastLap)
		if ev.NewBest {
			w.sink.BestLap(w.player.BestLap)
		}
		w.audit()
	}
	w.sink.CurrentLap(w.player.CurrentLap)
	w.sink.Speed(w.player.Speed)
	return ev
}

// View captures the state needed to draw a frame.
func (w *World) View() render.View {
	bounce := 1.5 * w.jitter.Float64() * w.player.SpeedPercent(w.params) * w.cfg.Resolution() * mathutil.RandomSign(w.jitter)
	return render.View{
		Track:    w.track,
		Position: w.player.Position,
		PlayerX:  w.player.X,
		Speed:    w.player.Speed,
		Steer:    w.steer,
		Parallax: w.parallax,
		Bounce:   bounce,
	}
}

// SetBestLap seeds the best lap, normally from a stored profile.
func (w *World) SetBestLap(seconds float64) {
	if seconds <= 0 {
		return
	}
	w.player.BestLap = seconds
	w.sink.BestLap(seconds)
}

func (w *World) Player() physics.Player {
	return w.player
}

func (w *World) Config() config.Config {
	return w.cfg
}

func (w *World) Track() *road.Track {
	return w.track
}

func (w *World) Cars() []*vehicle.Car {
	return w.cars
}

// audit runs CheckInvariants once per lap when debug logging is on. A broken
// membership set is a programming error.
func (w *World) audit() {
	if !log.DebugEnabled() {
		return
	}
	if err := w.CheckInvariants(); err != nil {
		panic(fmt.Sprintf("world: %v", err))
	}
	log.Debug("membership verified", log.Int("cars", len(w.cars)))
}

// CheckInvariants verifies car membership. It is meant for tests and debug
// builds, it walks every segment.
func (w *World) CheckInvariants() error {
	return w.track.CheckMembership(w.cars)
}
