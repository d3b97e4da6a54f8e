// Package render draws a View onto any 2D Surface using the classic
// segment projection technique: the road is painted as trapezoids between
// projected segment edges and everything else is a scaled sprite.
package render

import (
	"image"
	"image/color"
)

// Sheet identifies one of the two source images.
type Sheet int

const (
	SheetBackground Sheet = iota
	SheetSprites
)

// Vec is a screen position in pixels.
type Vec struct {
	X, Y float64
}

// Surface is the drawing target. Colours with alpha below 255 blend over
// what is already drawn.
type Surface interface {
	Size() (w, h int)
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	FillPolygon(points []Vec, c color.Color)
	// DrawImage scales the src rectangle of sheet into the destination box.
	DrawImage(sheet Sheet, src image.Rectangle, x, y, w, h float64)
}
