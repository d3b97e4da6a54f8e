// Package ebitensurface draws frames onto an ebiten image.
package ebitensurface

import (
	"image"
	"image/color"

	"github.com/golangdaddy/roadrush/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface is a render.Surface over an ebiten image. Target is swapped every
// frame with Bind.
type Surface struct {
	target   *ebiten.Image
	sheets   [2]*ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// New creates a new Surface drawing from the given sheets.
func New(background, sprites image.Image) *Surface {
	s := &Surface{}
	if background != nil {
		s.sheets[render.SheetBackground] = ebiten.NewImageFromImage(background)
	}
	if sprites != nil {
		s.sheets[render.SheetSprites] = ebiten.NewImageFromImage(sprites)
	}
	return s
}

// Bind sets the image the next frame is drawn to.
func (s *Surface) Bind(target *ebiten.Image) {
	s.target = target
}

func (s *Surface) Size() (int, int) {
	b := s.target.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Clear(c color.Color) {
	s.target.Fill(c)
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	s.FillPolygon([]render.Vec{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}, c)
}

// FillPolygon fans the convex polygon out into triangles.
func (s *Surface) FillPolygon(points []render.Vec, c color.Color) {
	if len(points) < 3 {
		return
	}
	r, g, b, a := c.RGBA()
	cr, cg, cb, ca := float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	for _, p := range points {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	for i := 1; i < len(points)-1; i++ {
		s.indices = append(s.indices, 0, uint16(i), uint16(i+1))
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	s.target.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}

func (s *Surface) DrawImage(sheet render.Sheet, src image.Rectangle, x, y, w, h float64) {
	if int(sheet) < 0 || int(sheet) >= len(s.sheets) || s.sheets[sheet] == nil {
		return
	}
	if src.Empty() || w <= 0 || h <= 0 {
		return
	}
	sub := s.sheets[sheet].SubImage(src).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(src.Dx()), h/float64(src.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(sub, op)
}
