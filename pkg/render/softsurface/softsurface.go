// Package softsurface renders frames in memory with gogpu/gg. It backs the
// snapshot command and the terminal runner.
package softsurface

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/golangdaddy/roadrush/pkg/render"
)

// Surface is a render.Surface over a gg drawing context.
type Surface struct {
	dc     *gg.Context
	sheets [2]*gg.ImageBuf
	err    error
}

// New creates a new w x h surface. Either sheet may be nil, in which case
// images from it are skipped.
func New(w, h int, background, sprites image.Image) *Surface {
	s := &Surface{dc: gg.NewContext(w, h)}
	if background != nil {
		s.sheets[render.SheetBackground] = gg.ImageBufFromImage(background)
	}
	if sprites != nil {
		s.sheets[render.SheetSprites] = gg.ImageBufFromImage(sprites)
	}
	return s
}

func (s *Surface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

func (s *Surface) Clear(c color.Color) {
	s.dc.ClearWithColor(toRGBA(c))
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	s.dc.SetColor(c)
	s.dc.DrawRectangle(x, y, w, h)
	s.fill()
}

func (s *Surface) FillPolygon(points []render.Vec, c color.Color) {
	if len(points) < 3 {
		return
	}
	s.dc.SetColor(c)
	s.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.ClosePath()
	s.fill()
}

func (s *Surface) DrawImage(sheet render.Sheet, src image.Rectangle, x, y, w, h float64) {
	if int(sheet) < 0 || int(sheet) >= len(s.sheets) || s.sheets[sheet] == nil {
		return
	}
	if src.Empty() || w < 1 || h < 1 {
		return
	}
	s.dc.DrawImageEx(s.sheets[sheet], gg.DrawImageOptions{
		X:             x,
		Y:             y,
		DstWidth:      w,
		DstHeight:     h,
		SrcRect:       &src,
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
}

func (s *Surface) fill() {
	if err := s.dc.Fill(); err != nil && s.err == nil {
		s.err = fmt.Errorf("fill: %w", err)
	}
}

// Err returns the first drawing error since the surface was created.
func (s *Surface) Err() error {
	return s.err
}

// Image returns a copy of the current frame.
func (s *Surface) Image() *image.RGBA {
	_ = s.dc.FlushGPU()
	return s.dc.Image().(*image.RGBA)
}

// SavePNG writes the current frame to path.
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Close releases the drawing context.
func (s *Surface) Close() error {
	return s.dc.Close()
}

// toRGBA converts c to gg's straight alpha colour.
func toRGBA(c color.Color) gg.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return gg.RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}
