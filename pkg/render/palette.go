package render

import (
	"image/color"

	"github.com/golangdaddy/roadrush/pkg/road"
)

// BandColors is the paint set for one colour band. Lane is nil when the
// band has no lane markings.
type BandColors struct {
	Road   color.Color
	Grass  color.Color
	Rumble color.Color
	Lane   color.Color
}

var (
	Sky  = color.RGBA{0x72, 0xD7, 0xEE, 0xff}
	Tree = color.RGBA{0x00, 0x51, 0x08, 0xff}
	Fog  = color.RGBA{0x00, 0x51, 0x08, 0xff}

	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	black = color.RGBA{0x00, 0x00, 0x00, 0xff}

	bands = map[road.Band]BandColors{
		road.BandLight: {
			Road:   color.RGBA{0x6B, 0x6B, 0x6B, 0xff},
			Grass:  color.RGBA{0x10, 0xAA, 0x10, 0xff},
			Rumble: color.RGBA{0x55, 0x55, 0x55, 0xff},
			Lane:   color.RGBA{0xCC, 0xCC, 0xCC, 0xff},
		},
		road.BandDark: {
			Road:   color.RGBA{0x69, 0x69, 0x69, 0xff},
			Grass:  color.RGBA{0x00, 0x9A, 0x00, 0xff},
			Rumble: color.RGBA{0xBB, 0xBB, 0xBB, 0xff},
		},
		road.BandStart:  {Road: white, Grass: white, Rumble: white},
		road.BandFinish: {Road: black, Grass: black, Rumble: black},
	}
)

// Colors returns the paint set for band b.
func Colors(b road.Band) BandColors {
	if c, ok := bands[b]; ok {
		return c
	}
	return bands[road.BandLight]
}

// fogColor is the fog tint at the given visibility.
func fogColor(visibility float64) color.Color {
	return color.NRGBA{R: Fog.R, G: Fog.G, B: Fog.B, A: uint8((1 - visibility) * 255)}
}
