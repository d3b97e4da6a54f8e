// Package hud draws the race overlay: speed, lap clock, last and best lap.
package hud

import (
	"fmt"
	"image"
	"image/color"

	"github.com/charmbracelet/harmonica"
	"github.com/golangdaddy/roadrush/pkg/physics"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// bannerTime is how long the fastest lap banner stays up, in seconds.
const bannerTime = 3.0

var (
	panelColor = color.RGBA{0, 0, 0, 150}
	labelColor = color.RGBA{180, 180, 200, 255}
	valueColor = color.RGBA{255, 255, 255, 255}
	bestColor  = color.RGBA{255, 200, 50, 255}
	gaugeColor = color.RGBA{60, 60, 80, 255}
	needleFill = color.RGBA{255, 80, 40, 255}
)

// HUD is a telemetry.Sink that keeps the latest readings and draws them.
// The speed gauge follows the real speed through a spring so it does not
// jump on collisions.
type HUD struct {
	current float64
	last    float64
	best    float64
	speed   float64

	maxSpeed  float64
	needle    float64
	needleVel float64
	spring    harmonica.Spring
	banner    float64

	face text.Face
}

// New creates a new HUD updated fps times a second for a car whose top
// speed is maxSpeed.
func New(fps int, maxSpeed float64) *HUD {
	return &HUD{
		maxSpeed: maxSpeed,
		// critically damped, settles in about a quarter second
		spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0),
		face:   text.NewGoXFace(bitmapfont.Face),
	}
}

func (h *HUD) CurrentLap(seconds float64) { h.current = seconds }
func (h *HUD) Speed(speed float64)        { h.speed = speed }

func (h *HUD) LapCompleted(seconds float64) {
	h.last = seconds
}

func (h *HUD) BestLap(seconds float64) {
	h.best = seconds
	if seconds == h.last {
		h.banner = bannerTime
	}
}

// Update moves the gauge needle one frame towards the current speed.
func (h *HUD) Update(dt float64) {
	target := 0.0
	if h.maxSpeed > 0 {
		target = h.speed / h.maxSpeed
	}
	h.needle, h.needleVel = h.spring.Update(h.needle, h.needleVel, target)
	if h.banner > 0 {
		h.banner -= dt
	}
}

// Needle is the gauge position, 0 at rest and 1 at top speed.
func (h *HUD) Needle() float64 {
	return h.needle
}

// Lines returns the overlay text, one entry per line.
func (h *HUD) Lines() []string {
	lines := []string{
		fmt.Sprintf("SPEED %3d", physics.Readout(h.speed)),
		"TIME  " + physics.FormatLap(h.current),
	}
	if h.last > 0 {
		lines = append(lines, "LAST  "+physics.FormatLap(h.last))
	}
	if h.best > 0 {
		lines = append(lines, "BEST  "+physics.FormatLap(h.best))
	}
	return lines
}

// Banner reports whether the fastest lap banner is showing.
func (h *HUD) Banner() bool {
	return h.banner > 0
}

// Draw renders the overlay in the top left corner of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	const (
		scale   = 2.0
		lineH   = 16 * scale
		margin  = 12
		padding = 8
		gaugeW  = 200
		gaugeH  = 10
	)
	lines := h.Lines()
	panelH := padding*2 + int(lineH)*len(lines) + gaugeH + padding
	fillRect(screen, image.Rect(margin, margin, margin+gaugeW+padding*2, margin+panelH), panelColor)

	y := float64(margin + padding)
	for i, line := range lines {
		c := valueColor
		if i == 0 {
			c = labelColor
		}
		if i == len(lines)-1 && h.best > 0 {
			c = bestColor
		}
		h.drawText(screen, line, float64(margin+padding), y, scale, c)
		y += lineH
	}

	gx, gy := margin+padding, int(y)+padding/2
	fillRect(screen, image.Rect(gx, gy, gx+gaugeW, gy+gaugeH), gaugeColor)
	needle := max(0, min(h.needle, 1))
	fillRect(screen, image.Rect(gx, gy, gx+int(needle*gaugeW), gy+gaugeH), needleFill)

	if h.Banner() {
		w, hh := screen.Bounds().Dx(), screen.Bounds().Dy()
		msg := "FASTEST LAP " + physics.FormatLap(h.best)
		bannerScale := 3.0
		textW := text.Advance(msg, h.face) * bannerScale
		h.drawText(screen, msg, float64(w)/2-textW/2, float64(hh)/4, bannerScale, bestColor)
	}
}

func (h *HUD) drawText(screen *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, h.face, op)
}

// fillRect fills r on dst, clipped to its bounds.
func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	dst.SubImage(r).(*ebiten.Image).Fill(c)
}
