package terminal

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/golangdaddy/roadrush/pkg/physics"
	"github.com/golangdaddy/roadrush/pkg/telemetry"
)

// Two framebuffer rows fit in one terminal row: the upper half block is
// painted with the top pixel as foreground and the bottom one as background.
const halfBlock = "▀"

// FramebufferSize is the pixel size rendered for a cols x rows terminal.
// The last row is kept for the status line.
func FramebufferSize(cols, rows int) (int, int) {
	return max(cols, 1), max(rows-1, 1) * 2
}

// blockColors returns the two pixels shown by the cell at col, row.
func blockColors(img *image.RGBA, col, row int) (top, bottom color.RGBA) {
	return img.RGBAAt(col, row*2), img.RGBAAt(col, row*2+1)
}

// StatusLine formats the readings for the bottom row, cut to width.
func StatusLine(r *telemetry.Recorder, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, " SPEED %3d  TIME %s", physics.Readout(r.Velocity), physics.FormatLap(r.Current))
	if r.Last > 0 {
		fmt.Fprintf(&b, "  LAST %s", physics.FormatLap(r.Last))
	}
	if r.Best > 0 {
		fmt.Fprintf(&b, "  BEST %s", physics.FormatLap(r.Best))
	}
	b.WriteString("  [arrows/wasd, q quits]")
	s := b.String()
	if len(s) > width {
		s = s[:max(width, 0)]
	}
	return s
}
