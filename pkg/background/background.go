package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/gogpu/gg"
	"github.com/golangdaddy/roadrush/pkg/sprite"
)

// Generator paints stand-in sprite and background sheets so the game runs
// without any image assets. Every image lands inside the rectangle the
// sprite package expects for it.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a new generator. The same seed paints the same sheets.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

func sheetSize(rects []image.Rectangle) (int, int) {
	var all image.Rectangle
	for _, r := range rects {
		all = all.Union(r)
	}
	return all.Max.X + 5, all.Max.Y + 5
}

// Background paints the sky, hills and trees layers.
func (g *Generator) Background() *image.RGBA {
	rects := make([]image.Rectangle, 0, len(sprite.Layers))
	for _, l := range sprite.Layers {
		rects = append(rects, l.Rect())
	}
	w, h := sheetSize(rects)
	dc := gg.NewContext(w, h)
	defer dc.Close()

	g.drawSky(dc, sprite.Sky.Rect())
	g.drawHills(dc, sprite.Hills.Rect())
	g.drawForest(dc, sprite.Trees.Rect())
	return dc.Image().(*image.RGBA)
}

// Sprites paints every sprite kind.
func (g *Generator) Sprites() *image.RGBA {
	kinds := sprite.Kinds()
	rects := make([]image.Rectangle, 0, len(kinds))
	for _, k := range kinds {
		rects = append(rects, k.Rect())
	}
	w, h := sheetSize(rects)
	dc := gg.NewContext(w, h)
	defer dc.Close()

	for _, k := range kinds {
		r := k.Rect()
		dc.Push()
		dc.Translate(float64(r.Min.X), float64(r.Min.Y))
		g.drawKind(dc, k, float64(r.Dx()), float64(r.Dy()))
		dc.Pop()
	}
	return dc.Image().(*image.RGBA)
}

func (g *Generator) drawSky(dc *gg.Context, r image.Rectangle) {
	top := color.RGBA{0x3a, 0x9b, 0xdc, 0xff}
	bottom := color.RGBA{0xb8, 0xe6, 0xf5, 0xff}
	h := r.Dy()
	for y := 0; y < h; y++ {
		p := float64(y) / float64(h)
		dc.SetColor(color.RGBA{
			R: lerp8(top.R, bottom.R, p),
			G: lerp8(top.G, bottom.G, p),
			B: lerp8(top.B, bottom.B, p),
			A: 0xff,
		})
		dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y+y), float64(r.Dx()), 1)
		_ = dc.Fill()
	}

	// Clouds
	dc.SetColor(color.RGBA{0xff, 0xff, 0xff, 0xd0})
	for i := 0; i < 14; i++ {
		cx := float64(r.Min.X) + 40 + g.rng.Float64()*float64(r.Dx()-80)
		cy := float64(r.Min.Y) + 30 + g.rng.Float64()*float64(h)/2
		for j := 0; j < 3+g.rng.Intn(3); j++ {
			dc.DrawEllipse(cx+float64(j)*25, cy+g.rng.Float64()*8, 30+g.rng.Float64()*20, 12+g.rng.Float64()*8)
			_ = dc.Fill()
		}
	}
}

func (g *Generator) drawHills(dc *gg.Context, r image.Rectangle) {
	x0, y0 := float64(r.Min.X), float64(r.Min.Y)
	w, h := float64(r.Dx()), float64(r.Dy())
	layers := []struct {
		c      color.RGBA
		base   float64
		height float64
	}{
		{color.RGBA{0x5f, 0x9e, 0x6e, 0xff}, 0.55, 0.25},
		{color.RGBA{0x3e, 0x80, 0x4c, 0xff}, 0.7, 0.18},
	}
	for _, l := range layers {
		// whole periods so the layer tiles when it wraps
		f1 := float64(1 + g.rng.Intn(3))
		f2 := float64(3 + g.rng.Intn(4))
		ph := g.rng.Float64() * 2 * math.Pi
		dc.SetColor(l.c)
		dc.MoveTo(x0, y0+h)
		for x := 0.0; x <= w; x += 4 {
			t := x / w * 2 * math.Pi
			y := l.base*h - l.height*h*(0.6*math.Sin(f1*t+ph)+0.4*math.Sin(f2*t+ph*2))
			dc.LineTo(x0+x, y0+y)
		}
		dc.LineTo(x0+w, y0+h)
		dc.ClosePath()
		_ = dc.Fill()
	}
}

// drawForest lines the bottom of the trees layer with vegetation, back rows
// first so nearer rows overlap them.
func (g *Generator) drawForest(dc *gg.Context, r image.Rectangle) {
	w, h := r.Dx(), r.Dy()
	dc.SetColor(color.RGBA{30, 100, 30, 255})
	dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y+h*3/4), float64(w), float64(h/4))
	_ = dc.Fill()

	for y := h * 5 / 8; y < h; y += 10 {
		density := 0.5 + 0.3*math.Sin(float64(y)*0.01)
		for x := 0; x < w; x += 5 + g.rng.Intn(15) {
			if g.rng.Float64() > density {
				continue
			}
			drawX := float64(r.Min.X + clampInt(x+g.rng.Intn(10)-5, 20, w-20))
			drawY := float64(r.Min.Y + clampInt(y+g.rng.Intn(10)-5, 0, h-1))
			if g.rng.Float64() < 0.3 {
				g.drawTree(dc, drawX, drawY, 40+g.rng.Float64()*30, 20+g.rng.Float64()*15)
			} else {
				g.drawBush(dc, drawX, drawY, 5+g.rng.Float64()*10)
			}
		}
	}
}

// drawTree paints a pine with its trunk base at x, y.
func (g *Generator) drawTree(dc *gg.Context, x, y, height, width float64) {
	trunkW := width / 5
	dc.SetColor(color.RGBA{60, 40, 20, 255})
	dc.DrawRectangle(x-trunkW/2, y-height/3, trunkW, height/3)
	_ = dc.Fill()

	dc.SetColor(color.RGBA{
		uint8(20 + g.rng.Intn(30)),
		uint8(80 + g.rng.Intn(60)),
		uint8(20 + g.rng.Intn(30)),
		255,
	})
	for l := 0.0; l < 3; l++ {
		layerY := y - height/3 - l*height/5
		layerW := math.Max(width-l*width/4, 5)
		dc.MoveTo(x-layerW/2, layerY)
		dc.LineTo(x+layerW/2, layerY)
		dc.LineTo(x, layerY-height/3)
		dc.ClosePath()
		_ = dc.Fill()
	}
}

// drawBush paints a round bush centred on x, y.
func (g *Generator) drawBush(dc *gg.Context, x, y, radius float64) {
	dc.SetColor(color.RGBA{
		uint8(40 + g.rng.Intn(40)),
		uint8(100 + g.rng.Intn(50)),
		uint8(40 + g.rng.Intn(40)),
		255,
	})
	dc.DrawCircle(x, y, radius)
	_ = dc.Fill()
}

func (g *Generator) drawKind(dc *gg.Context, k sprite.Kind, w, h float64) {
	switch k.Class() {
	case sprite.ClassBillboard:
		g.drawBillboard(dc, w, h)
	case sprite.ClassColumn:
		g.drawColumn(dc, w, h)
	case sprite.ClassCar:
		g.drawCar(dc, w, h, g.randomPaint(), 0, k.IsWide() || k == sprite.Truck)
	case sprite.ClassPlayer:
		g.drawCar(dc, w, h, color.RGBA{0xd0, 0x20, 0x20, 0xff}, playerLean(k), false)
	case sprite.ClassPlant:
		g.drawPlant(dc, k, w, h)
	}
}

func playerLean(k sprite.Kind) float64 {
	switch k {
	case sprite.PlayerLeft, sprite.PlayerUphillLeft:
		return -1
	case sprite.PlayerRight, sprite.PlayerUphillRight:
		return 1
	}
	return 0
}

func (g *Generator) randomPaint() color.RGBA {
	paints := []color.RGBA{
		{0x1f, 0x4e, 0xb4, 0xff},
		{0xe0, 0xc0, 0x20, 0xff},
		{0x20, 0x90, 0x40, 0xff},
		{0xee, 0xee, 0xee, 0xff},
		{0x80, 0x20, 0xa0, 0xff},
	}
	return paints[g.rng.Intn(len(paints))]
}

func (g *Generator) drawBillboard(dc *gg.Context, w, h float64) {
	dc.SetColor(color.RGBA{0x50, 0x50, 0x50, 0xff})
	dc.DrawRectangle(w*0.2, h*0.6, w*0.06, h*0.4)
	dc.DrawRectangle(w*0.74, h*0.6, w*0.06, h*0.4)
	_ = dc.Fill()

	dc.SetColor(g.randomPaint())
	dc.DrawRectangle(0, 0, w, h*0.7)
	_ = dc.Fill()
	dc.SetColor(color.RGBA{0xff, 0xff, 0xff, 0xe0})
	for i := 0; i < 3; i++ {
		dc.DrawRectangle(w*0.1, h*(0.12+0.16*float64(i)), w*(0.5+0.3*g.rng.Float64()), h*0.07)
	}
	_ = dc.Fill()
}

func (g *Generator) drawColumn(dc *gg.Context, w, h float64) {
	dc.SetColor(color.RGBA{0xc8, 0xc0, 0xb0, 0xff})
	dc.DrawRectangle(w*0.15, h*0.1, w*0.7, h*0.8)
	_ = dc.Fill()
	dc.DrawRectangle(0, 0, w, h*0.1)
	dc.DrawRectangle(0, h*0.9, w, h*0.1)
	_ = dc.Fill()
	dc.SetColor(color.RGBA{0x98, 0x90, 0x80, 0xff})
	for x := 0.25; x < 0.85; x += 0.15 {
		dc.DrawRectangle(w*x, h*0.1, w*0.03, h*0.8)
	}
	_ = dc.Fill()
}

// drawCar paints a car seen from behind. lean shifts the cabin to show the
// car turning.
func (g *Generator) drawCar(dc *gg.Context, w, h float64, paint color.RGBA, lean float64, tall bool) {
	dc.SetColor(color.Black)
	dc.DrawRectangle(w*0.05, h*0.8, w*0.2, h*0.2)
	dc.DrawRectangle(w*0.75, h*0.8, w*0.2, h*0.2)
	_ = dc.Fill()

	dc.SetColor(paint)
	if tall {
		dc.DrawRectangle(0, 0, w, h*0.85)
		_ = dc.Fill()
		return
	}
	dc.DrawRectangle(0, h*0.4, w, h*0.45)
	_ = dc.Fill()
	shift := lean * w * 0.08
	dc.MoveTo(w*0.2+shift, h*0.42)
	dc.LineTo(w*0.3+shift, h*0.05)
	dc.LineTo(w*0.7+shift, h*0.05)
	dc.LineTo(w*0.8+shift, h*0.42)
	dc.ClosePath()
	_ = dc.Fill()

	dc.SetColor(color.RGBA{0x30, 0x40, 0x50, 0xff})
	dc.MoveTo(w*0.27+shift, h*0.38)
	dc.LineTo(w*0.34+shift, h*0.12)
	dc.LineTo(w*0.66+shift, h*0.12)
	dc.LineTo(w*0.73+shift, h*0.38)
	dc.ClosePath()
	_ = dc.Fill()

	dc.SetColor(color.RGBA{0xff, 0x30, 0x30, 0xff})
	dc.DrawRectangle(w*0.05, h*0.5, w*0.12, h*0.08)
	dc.DrawRectangle(w*0.83, h*0.5, w*0.12, h*0.08)
	_ = dc.Fill()
}

func (g *Generator) drawPlant(dc *gg.Context, k sprite.Kind, w, h float64) {
	switch k {
	case sprite.Tree1, sprite.Tree2:
		dc.SetColor(color.RGBA{0x5a, 0x3c, 0x1e, 0xff})
		dc.DrawRectangle(w*0.44, h*0.5, w*0.12, h*0.5)
		_ = dc.Fill()
		g.drawBush(dc, w/2, h*0.4, math.Min(w, h)*0.4)
	case sprite.PalmTree:
		dc.SetColor(color.RGBA{0x8b, 0x6b, 0x3d, 0xff})
		dc.DrawRectangle(w*0.45, h*0.15, w*0.1, h*0.85)
		_ = dc.Fill()
		dc.SetColor(color.RGBA{0x2e, 0x8b, 0x2e, 0xff})
		for i := 0; i < 5; i++ {
			a := float64(i) / 5 * math.Pi
			dc.DrawEllipse(w/2+math.Cos(a)*w*0.25, h*0.12+math.Sin(a)*h*0.04, w*0.25, h*0.04)
		}
		_ = dc.Fill()
	case sprite.DeadTree1, sprite.DeadTree2:
		dc.SetColor(color.RGBA{0x6b, 0x5a, 0x4a, 0xff})
		dc.DrawRectangle(w*0.4, h*0.1, w*0.2, h*0.9)
		dc.DrawRectangle(w*0.1, h*0.3, w*0.3, h*0.05)
		dc.DrawRectangle(w*0.6, h*0.45, w*0.3, h*0.05)
		_ = dc.Fill()
	case sprite.Cactus:
		dc.SetColor(color.RGBA{0x3d, 0x8c, 0x40, 0xff})
		dc.DrawRectangle(w*0.4, 0, w*0.2, h)
		dc.DrawRectangle(w*0.1, h*0.3, w*0.3, h*0.2)
		dc.DrawRectangle(w*0.6, h*0.2, w*0.3, h*0.2)
		_ = dc.Fill()
	case sprite.Stump:
		dc.SetColor(color.RGBA{0x7a, 0x55, 0x30, 0xff})
		dc.DrawRectangle(w*0.15, h*0.25, w*0.7, h*0.75)
		_ = dc.Fill()
		dc.SetColor(color.RGBA{0xc8, 0xa0, 0x70, 0xff})
		dc.DrawEllipse(w/2, h*0.25, w*0.35, h*0.15)
		_ = dc.Fill()
	case sprite.Boulder1, sprite.Boulder2, sprite.Boulder3:
		grey := uint8(0x70 + g.rng.Intn(0x30))
		dc.SetColor(color.RGBA{grey, grey, grey - 8, 0xff})
		dc.DrawEllipse(w/2, h*0.55, w*0.48, h*0.45)
		_ = dc.Fill()
	default:
		g.drawBush(dc, w*0.3, h*0.6, math.Min(w, h)*0.35)
		g.drawBush(dc, w*0.7, h*0.6, math.Min(w, h)*0.35)
		g.drawBush(dc, w*0.5, h*0.45, math.Min(w, h)*0.4)
	}
}

func lerp8(a, b uint8, p float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*p)
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
