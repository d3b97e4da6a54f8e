// Package background provides the two image sheets the renderer samples:
// PNG files from an asset directory when present, painted stand-ins when not.
package background

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/golangdaddy/roadrush/log"
)

const (
	BackgroundFile = "background.png"
	SpritesFile    = "sprites.png"
)

// Sheets holds the background and sprite sheet images.
type Sheets struct {
	Background image.Image
	Sprites    image.Image
}

// Load reads both sheets from dir. A missing file is replaced by a generated
// sheet; a file that exists but cannot be decoded is an error.
func Load(dir string, seed int64) (Sheets, error) {
	gen := NewGenerator(seed)

	bg, err := loadOr(dir, BackgroundFile, func() image.Image { return gen.Background() })
	if err != nil {
		return Sheets{}, err
	}
	sprites, err := loadOr(dir, SpritesFile, func() image.Image { return gen.Sprites() })
	if err != nil {
		return Sheets{}, err
	}
	return Sheets{Background: bg, Sprites: sprites}, nil
}

func loadOr(dir, name string, fallback func() image.Image) (image.Image, error) {
	if dir == "" {
		return fallback(), nil
	}
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.Warn("asset missing, using generated sheet", log.String("path", path))
		return fallback(), nil
	}
	buf, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	log.Debug("asset loaded", log.String("path", path))
	return buf.ToStdImage(), nil
}
