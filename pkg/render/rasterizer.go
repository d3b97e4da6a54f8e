package render

import (
	"image"
	"image/color"
	"math"

	"github.com/golangdaddy/roadrush/pkg/mathutil"
	"github.com/golangdaddy/roadrush/pkg/projection"
	"github.com/golangdaddy/roadrush/pkg/road"
	"github.com/golangdaddy/roadrush/pkg/sprite"
)

// Stats counts what the last Render call drew.
type Stats struct {
	Segments int
	Sprites  int
	Clipped  int
}

// edge is one segment as projected for the current frame.
type edge struct {
	seg     *road.Segment
	p1, p2  projection.Point
	ok      bool    // both edges are in front of the camera
	visible bool    // survived culling, the road is painted
	fog     float64 // visibility, 1 is clear
	clip    float64 // horizon at the time this segment was reached
}

// Rasterizer turns a View into drawing calls. The segments themselves are
// never written to, projections live in a per frame buffer.
type Rasterizer struct {
	params Params
	frame  []edge
	order  []int
	poly   [4]Vec
	stats  Stats
}

// NewRasterizer creates a new rasterizer.
func NewRasterizer(params Params) *Rasterizer {
	return &Rasterizer{params: params}
}

func (r *Rasterizer) SetParams(p Params) {
	r.params = p
}

func (r *Rasterizer) Params() Params {
	return r.params
}

// Stats reports the last frame.
func (r *Rasterizer) Stats() Stats {
	return r.stats
}

// Render draws v onto s. Segments are culled nearest first against a
// running horizon, then painted farthest first so nearer road covers
// anything behind a crest. Sprites follow, also farthest first, clipped to
// the horizon of the segment they stand on.
func (r *Rasterizer) Render(s Surface, v View) {
	p := r.params
	track := v.Track
	length := track.SegmentLength()
	r.stats = Stats{}

	base := track.FindSegment(v.Position)
	basePercent := mathutil.PercentRemaining(v.Position, length)
	playerSeg := track.FindSegment(v.Position + p.PlayerZ)
	playerPercent := mathutil.PercentRemaining(v.Position+p.PlayerZ, length)
	playerY := mathutil.Interpolate(playerSeg.P1.Y, playerSeg.P2.Y, playerPercent)

	s.Clear(Sky)
	for _, l := range sprite.Layers {
		r.background(s, l, v.Offset(l), p.Resolution*l.Speed()*playerY)
	}

	count := min(p.DrawDistance, track.Len())
	if cap(r.frame) < count {
		r.frame = make([]edge, count)
	}
	r.frame = r.frame[:count]
	r.order = r.order[:0]

	maxy := float64(p.Height)
	x := 0.0
	dx := -(base.Curve * basePercent)
	for n := 0; n < count; n++ {
		seg := track.Segment(base.Index + n)
		camZ := v.Position
		if seg.Index < base.Index {
			camZ -= track.Length()
		}
		cam := projection.Camera{
			X:         v.PlayerX*p.RoadWidth - x,
			Y:         playerY + p.CameraHeight,
			Z:         camZ,
			Depth:     p.CameraDepth,
			Width:     p.Width,
			Height:    p.Height,
			RoadWidth: p.RoadWidth,
		}
		p1, ok1 := projection.Project(seg.P1, cam)
		cam.X -= dx
		p2, ok2 := projection.Project(seg.P2, cam)

		e := &r.frame[n]
		*e = edge{
			seg:  seg,
			p1:   p1,
			p2:   p2,
			ok:   ok1 && ok2,
			fog:  mathutil.ExponentialFog(float64(n)/float64(p.DrawDistance), p.FogDensity),
			clip: maxy,
		}

		x += dx
		dx += seg.Curve

		if !e.ok || p1.Camera.Z <= p.CameraDepth || p2.Y >= p1.Y || p2.Y >= maxy {
			continue
		}
		e.visible = true
		r.order = append(r.order, n)
		maxy = math.Min(maxy, p1.Y)
	}

	for i := len(r.order) - 1; i >= 0; i-- {
		e := &r.frame[r.order[i]]
		r.segment(s, e)
		r.stats.Segments++
	}

	for n := count - 1; n > 0; n-- {
		e := &r.frame[n]
		if !e.ok {
			continue
		}
		for _, car := range e.seg.Cars {
			scale := mathutil.Interpolate(e.p1.Scale, e.p2.Scale, car.Percent)
			sx := mathutil.Interpolate(e.p1.X, e.p2.X, car.Percent) + scale*car.Offset*p.RoadWidth*float64(p.Width)/2
			sy := mathutil.Interpolate(e.p1.Y, e.p2.Y, car.Percent)
			r.sprite(s, car.Kind, scale, sx, sy, e.clip)
		}
		for _, prop := range e.seg.Props {
			scale := e.p1.Scale
			sx := e.p1.X + scale*prop.Offset*p.RoadWidth*float64(p.Width)/2
			r.sprite(s, prop.Kind, scale, sx, e.p1.Y, e.clip)
		}
		if e.seg == playerSeg {
			r.player(s, v, e, playerPercent)
		}
	}
}

func (r *Rasterizer) player(s Surface, v View, e *edge, percent float64) {
	p := r.params
	scale := p.CameraDepth / p.PlayerZ
	camY := mathutil.Interpolate(e.p1.Camera.Y, e.p2.Camera.Y, percent)
	y := float64(p.Height)/2 - scale*camY*float64(p.Height)/2
	steer := 0.0
	if v.Speed > 0 {
		steer = v.Steer
	}
	kind := sprite.Player(steer, e.seg.Slope() > 0)
	r.sprite(s, kind, scale, float64(p.Width)/2, y+v.Bounce, math.Inf(1))
}

// segment paints the grass strip, rumble strips, road, lane markers and fog
// of one segment.
func (r *Rasterizer) segment(s Surface, e *edge) {
	p := r.params
	width := float64(p.Width)
	lanes := float64(p.Lanes)
	x1, y1, w1 := e.p1.X, e.p1.Y, e.p1.W
	x2, y2, w2 := e.p2.X, e.p2.Y, e.p2.W
	r1, r2 := w1/math.Max(6, 2*lanes), w2/math.Max(6, 2*lanes)
	l1, l2 := w1/math.Max(32, 8*lanes), w2/math.Max(32, 8*lanes)
	c := Colors(e.seg.Band)

	s.FillRect(0, y2, width, y1-y2, c.Grass)
	r.quad(s, x1-w1-r1, y1, x1-w1, y1, x2-w2, y2, x2-w2-r2, y2, c.Rumble)
	r.quad(s, x1+w1+r1, y1, x1+w1, y1, x2+w2, y2, x2+w2+r2, y2, c.Rumble)
	r.quad(s, x1-w1, y1, x1+w1, y1, x2+w2, y2, x2-w2, y2, c.Road)

	if c.Lane != nil {
		lw1, lw2 := w1*2/lanes, w2*2/lanes
		lx1, lx2 := x1-w1+lw1, x2-w2+lw2
		for lane := 1; lane < p.Lanes; lane++ {
			r.quad(s, lx1-l1/2, y1, lx1+l1/2, y1, lx2+l2/2, y2, lx2-l2/2, y2, c.Lane)
			lx1 += lw1
			lx2 += lw2
		}
	}

	if e.fog < 1 {
		s.FillRect(0, y2, width, y1-y2, fogColor(e.fog))
	}
}

func (r *Rasterizer) quad(s Surface, x1, y1, x2, y2, x3, y3, x4, y4 float64, c color.Color) {
	r.poly = [4]Vec{{x1, y1}, {x2, y2}, {x3, y3}, {x4, y4}}
	s.FillPolygon(r.poly[:], c)
}

// background draws layer l scrolled by rotation (0..1 of the layer width)
// and shifted down by offset pixels. The visible window is half the layer
// so it wraps by drawing the start of the layer after its end.
func (r *Rasterizer) background(s Surface, l sprite.Layer, rotation, offset float64) {
	p := r.params
	layer := l.Rect()
	imageW := layer.Dx() / 2
	width := float64(p.Width)

	srcX := layer.Min.X + int(math.Floor(float64(layer.Dx())*rotation))
	srcW := min(imageW, layer.Max.X-srcX)
	dstW := math.Floor(width * float64(srcW) / float64(imageW))

	src := image.Rect(srcX, layer.Min.Y, srcX+srcW, layer.Max.Y)
	s.DrawImage(SheetBackground, src, 0, offset, dstW, float64(p.Height))
	if srcW < imageW {
		wrap := image.Rect(layer.Min.X, layer.Min.Y, layer.Min.X+imageW-srcW, layer.Max.Y)
		s.DrawImage(SheetBackground, wrap, dstW-1, offset, width-dstW+1, float64(p.Height))
	}
}

// sprite draws kind with its bottom centre at (x, y). Anything below clipY
// is hidden behind the road.
func (r *Rasterizer) sprite(s Surface, kind sprite.Kind, scale, x, y, clipY float64) {
	p := r.params
	src := kind.Rect()
	if src.Empty() {
		return
	}
	factor := scale * float64(p.Width) / 2 * (sprite.Scale * p.RoadWidth)
	dstW := kind.W() * factor
	dstH := kind.H() * factor
	dstX := x - dstW/2
	dstY := y - dstH

	clipH := math.Max(0, dstY+dstH-clipY)
	if clipH >= dstH {
		return
	}
	if clipH > 0 {
		srcH := int(math.Round(kind.H() - kind.H()*clipH/dstH))
		if srcH <= 0 {
			return
		}
		src.Max.Y = src.Min.Y + srcH
		r.stats.Clipped++
	}
	s.DrawImage(SheetSprites, src, math.Floor(dstX), math.Floor(dstY), dstW, dstH-clipH)
	r.stats.Sprites++
}
