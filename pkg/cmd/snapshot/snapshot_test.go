package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golangdaddy/roadrush/pkg/background"
	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorld(t *testing.T) *world.World {
	t.Helper()
	cfg := config.Default()
	cfg.Width, cfg.Height = 320, 240
	cfg.Seed = 9
	cfg.TotalCars = 20
	w, err := world.New(cfg, nil)
	require.NoError(t, err)
	return w
}

func TestRenderWritesFrame(t *testing.T) {
	w := testWorld(t)
	gen := background.NewGenerator(1)
	sheets := background.Sheets{Background: gen.Background(), Sprites: gen.Sprites()}
	path := filepath.Join(t.TempDir(), "frame.png")

	require.NoError(t, Render(w, sheets, 2, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
	assert.Positive(t, w.Player().Position, "throttle was held")
	assert.Positive(t, w.Player().Speed)
	require.NoError(t, w.CheckInvariants())
}

func TestRenderRejectsNegativeTime(t *testing.T) {
	w := testWorld(t)
	assert.Error(t, Render(w, background.Sheets{}, -1, filepath.Join(t.TempDir(), "x.png")))
}
