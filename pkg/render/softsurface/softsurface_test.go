package softsurface

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"testing"

	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/render"
	"github.com/golangdaddy/roadrush/pkg/road"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func near(t *testing.T, want color.Color, got color.Color) {
	t.Helper()
	wr, wg, wb, _ := want.RGBA()
	gr, gg, gb, _ := got.RGBA()
	const tol = 3 * 257
	assert.InDelta(t, wr, gr, tol, "red want %v got %v", want, got)
	assert.InDelta(t, wg, gg, tol, "green want %v got %v", want, got)
	assert.InDelta(t, wb, gb, tol, "blue want %v got %v", want, got)
}

func TestPrimitives(t *testing.T) {
	red := color.RGBA{0xff, 0, 0, 0xff}
	blue := color.RGBA{0, 0, 0xff, 0xff}
	yellow := color.RGBA{0xff, 0xff, 0, 0xff}

	s := New(64, 48, nil, nil)
	defer s.Close()
	w, h := s.Size()
	assert.Equal(t, 64, w)
	assert.Equal(t, 48, h)

	s.Clear(red)
	s.FillRect(10, 10, 20, 10, blue)
	s.FillPolygon([]render.Vec{{X: 40, Y: 10}, {X: 60, Y: 10}, {X: 60, Y: 40}, {X: 40, Y: 40}}, yellow)
	s.FillPolygon([]render.Vec{{X: 0, Y: 0}, {X: 1, Y: 1}}, blue)
	require.NoError(t, s.Err())

	img := s.Image()
	near(t, red, img.At(2, 40))
	near(t, blue, img.At(20, 15))
	near(t, yellow, img.At(50, 25))
}

func TestDrawImage(t *testing.T) {
	green := color.RGBA{0, 0xff, 0, 0xff}
	sheet := image.NewRGBA(image.Rect(0, 0, 32, 32))
	draw.Draw(sheet, sheet.Bounds(), &image.Uniform{C: green}, image.Point{}, draw.Src)

	s := New(64, 64, nil, sheet)
	defer s.Close()
	s.Clear(color.Black)
	s.DrawImage(render.SheetSprites, image.Rect(8, 8, 24, 24), 10, 10, 30, 30)
	// no background sheet loaded
	s.DrawImage(render.SheetBackground, image.Rect(0, 0, 32, 32), 0, 0, 64, 64)
	s.DrawImage(render.Sheet(7), image.Rect(0, 0, 32, 32), 0, 0, 64, 64)

	img := s.Image()
	near(t, green, img.At(25, 25))
	near(t, color.Black, img.At(55, 55))
	near(t, color.Black, img.At(2, 2))
}

func TestRenderFrame(t *testing.T) {
	cfg := config.Default()
	cfg.FogDensity = 0
	b := road.NewBuilder(cfg.SegmentLength, cfg.RumbleLength)
	b.Straight(100)
	track, err := b.Build(cfg.PlayerZ())
	require.NoError(t, err)

	s := New(cfg.Width, cfg.Height, nil, nil)
	defer s.Close()
	render.NewRasterizer(render.NewParams(cfg)).Render(s, render.View{Track: track})
	require.NoError(t, s.Err())

	img := s.Image()
	near(t, render.Sky, img.At(cfg.Width/2, 100))

	isOneOf := func(c color.Color, opts ...color.Color) bool {
		cr, cg, cb, _ := c.RGBA()
		for _, o := range opts {
			or, og, ob, _ := o.RGBA()
			if absDiff(cr, or) < 3*257 && absDiff(cg, og) < 3*257 && absDiff(cb, ob) < 3*257 {
				return true
			}
		}
		return false
	}
	light, dark := render.Colors(road.BandLight), render.Colors(road.BandDark)
	assert.True(t, isOneOf(img.At(cfg.Width/2, 420), light.Road, dark.Road), "road at centre")
	assert.True(t, isOneOf(img.At(5, 420), light.Grass, dark.Grass), "grass at edge")
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestSavePNG(t *testing.T) {
	s := New(16, 16, nil, nil)
	defer s.Close()
	s.Clear(color.White)
	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, s.SavePNG(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, s.SavePNG(filepath.Join(t.TempDir(), "missing", "frame.png")))
}
