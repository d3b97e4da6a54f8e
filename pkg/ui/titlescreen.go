// Package ui holds the menu screens shown around a race.
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/golangdaddy/roadrush/pkg/physics"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	bestLap        float64
	face           text.Face
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen. bestLap is shown when it is
// above zero.
func NewTitleScreen(bestLap float64, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		bestLap:        bestLap,
		face:           text.NewGoXFace(bitmapfont.Face),
		onStartPressed: onStartPressed,
	}
}

// SetBestLap updates the record shown under the title.
func (ts *TitleScreen) SetBestLap(seconds float64) {
	ts.bestLap = seconds
}

// BestLine is the record line, empty when no lap has been set.
func (ts *TitleScreen) BestLine() string {
	if ts.bestLap <= 0 {
		return ""
	}
	return "Best lap " + physics.FormatLap(ts.bestLap)
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Pulsing scale effect (1.0 to 1.1)
	titleScale := 8.0 * (1.0 + 0.1*math.Sin(elapsed*2.0))
	brightness := min(1.0+0.2*math.Sin(elapsed*1.5), 1.0)
	ts.drawCentered(screen, "ROADRUSH", centerX, centerY-8, titleScale, color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	})
	ts.drawCentered(screen, "Outrun the traffic", centerX, centerY+80, 2.0, color.RGBA{180, 180, 200, 255})

	if line := ts.BestLine(); line != "" {
		ts.drawCentered(screen, line, centerX, centerY+130, 2.0, color.RGBA{255, 200, 50, 255})
	}

	// Blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		ts.drawCentered(screen, "Press ENTER or SPACE to Start", centerX, float64(height)-100, 1.5, color.RGBA{150, 200, 255, 255})
	}
	ts.drawCentered(screen, "Arrows or WASD to drive, ESC for this screen", centerX, float64(height)-60, 1.0, color.RGBA{110, 120, 140, 255})

	drawDecorativeElements(screen, width, height)
}

func (ts *TitleScreen) drawCentered(screen *ebiten.Image, s string, centerX, y, scale float64, c color.Color) {
	w := text.Advance(s, ts.face) * scale
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-w/2, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, ts.face, op)
}

// drawDecorativeElements draws the two rules framing the title.
func drawDecorativeElements(screen *ebiten.Image, width, height int) {
	lineColor := color.RGBA{50, 60, 80, 100}
	for _, y := range []int{height / 6, height * 5 / 6} {
		r := image.Rect(0, y, width, y+2).Intersect(screen.Bounds())
		if !r.Empty() {
			screen.SubImage(r).(*ebiten.Image).Fill(lineColor)
		}
	}
}
