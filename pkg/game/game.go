// Package game wires a World into an ebiten window: a title screen, then the
// race until the driver presses escape.
package game

import (
	"github.com/golangdaddy/roadrush/log"
	"github.com/golangdaddy/roadrush/pkg/background"
	"github.com/golangdaddy/roadrush/pkg/hud"
	"github.com/golangdaddy/roadrush/pkg/ui"
	"github.com/golangdaddy/roadrush/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	world         *world.World
	race          *RaceScreen
	title         *ui.TitleScreen
	currentScreen Screen
}

// NewGame creates a new game instance. h must already be one of the sinks
// the world reports to.
func NewGame(w *world.World, sheets background.Sheets, h *hud.HUD) *Game {
	g := &Game{world: w}
	g.race = NewRaceScreen(w, sheets, h, g.showTitle)
	g.title = ui.NewTitleScreen(w.Player().BestLap, g.startRace)
	g.currentScreen = g.title
	return g
}

func (g *Game) startRace() {
	log.Debug("race started")
	g.race.Resume()
	g.currentScreen = g.race
}

func (g *Game) showTitle() {
	log.Debug("race paused", log.Float64("position", g.world.Player().Position))
	g.title.SetBestLap(g.world.Player().BestLap)
	g.currentScreen = g.title
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	cfg := g.world.Config()
	return cfg.Width, cfg.Height
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	cfg := g.world.Config()
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Roadrush")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)
	return ebiten.RunGame(g)
}
