package game

import (
	"time"

	"github.com/golangdaddy/roadrush/pkg/background"
	"github.com/golangdaddy/roadrush/pkg/hud"
	"github.com/golangdaddy/roadrush/pkg/loop"
	"github.com/golangdaddy/roadrush/pkg/render"
	"github.com/golangdaddy/roadrush/pkg/render/ebitensurface"
	"github.com/golangdaddy/roadrush/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RaceScreen runs the simulation at a fixed step against the wall clock and
// draws it every frame.
type RaceScreen struct {
	world   *world.World
	raster  *render.Rasterizer
	surface *ebitensurface.Surface
	hud     *hud.HUD
	driver  *loop.Driver
	last    time.Time
	onExit  func()
}

// NewRaceScreen creates a new race screen
func NewRaceScreen(w *world.World, sheets background.Sheets, h *hud.HUD, onExit func()) *RaceScreen {
	cfg := w.Config()
	return &RaceScreen{
		world:   w,
		raster:  render.NewRasterizer(render.NewParams(cfg)),
		surface: ebitensurface.New(sheets.Background, sheets.Sprites),
		hud:     h,
		driver:  loop.NewDriver(cfg.Step()),
		onExit:  onExit,
	}
}

// Resume restarts the clock so time spent on other screens is not
// simulated.
func (rs *RaceScreen) Resume() {
	rs.last = time.Time{}
}

// Update advances the world by the wall time since the last frame.
func (rs *RaceScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if rs.onExit != nil {
			rs.onExit()
		}
		return nil
	}

	now := time.Now()
	elapsed := frameTime(rs.last, now)
	rs.last = now

	in := readKeyboard()
	rs.driver.Advance(elapsed, func(dt float64) {
		rs.world.Advance(dt, in)
		rs.hud.Update(dt)
	})
	return nil
}

// Draw renders the current screen
func (rs *RaceScreen) Draw(screen *ebiten.Image) {
	rs.surface.Bind(screen)
	rs.raster.Render(rs.surface, rs.world.View())
	rs.hud.Draw(screen)
}

// frameTime is the seconds between two frames, zero for the first one.
func frameTime(last, now time.Time) float64 {
	if last.IsZero() || now.Before(last) {
		return 0
	}
	return now.Sub(last).Seconds()
}
