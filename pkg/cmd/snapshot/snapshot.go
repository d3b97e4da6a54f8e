package snapshot

import (
	"context"
	"fmt"

	"github.com/golangdaddy/roadrush/log"
	"github.com/golangdaddy/roadrush/pkg/background"
	"github.com/golangdaddy/roadrush/pkg/cmd/race"
	"github.com/golangdaddy/roadrush/pkg/input"
	"github.com/golangdaddy/roadrush/pkg/loop"
	"github.com/golangdaddy/roadrush/pkg/render"
	"github.com/golangdaddy/roadrush/pkg/render/softsurface"
	"github.com/golangdaddy/roadrush/pkg/world"
	"github.com/spf13/cobra"
)

var (
	seconds float64
	out     string
)

func NewSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "drives with the throttle held and saves the last frame as PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			return snapshot()
		},
	}

	cmd.Flags().Float64Var(&seconds, "seconds", 5, "seconds to simulate before the frame is taken")
	cmd.Flags().StringVarP(&out, "out", "o", "frame.png", "output PNG file")
	return cmd
}

func snapshot() error {
	session, err := race.Open(race.Settings)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(context.Background()); err != nil {
			log.Warn("closing session", log.ErrorField(err))
		}
	}()
	return Render(session.World, session.Sheets, seconds, out)
}

// Render simulates seconds of full throttle on w and writes the frame to
// path.
func Render(w *world.World, sheets background.Sheets, seconds float64, path string) error {
	if seconds < 0 {
		return fmt.Errorf("seconds must not be negative, got %v", seconds)
	}
	cfg := w.Config()
	driver := loop.NewDriver(cfg.Step())
	throttle := input.Intents{Faster: true}
	ticks := 0
	// feed the driver in frame sized slices so no slice hits its cap
	for left := seconds; left > 0; left -= cfg.Step() {
		ticks += driver.Advance(min(left, cfg.Step()), func(dt float64) {
			w.Advance(dt, throttle)
		})
	}

	surface := softsurface.New(cfg.Width, cfg.Height, sheets.Background, sheets.Sprites)
	defer surface.Close()
	raster := render.NewRasterizer(render.NewParams(cfg))
	raster.Render(surface, w.View())
	if err := surface.Err(); err != nil {
		return fmt.Errorf("render snapshot: %w", err)
	}
	if err := surface.SavePNG(path); err != nil {
		return err
	}

	stats := raster.Stats()
	log.Info("snapshot written",
		log.String("path", path),
		log.Int("ticks", ticks),
		log.Float64("position", w.Player().Position),
		log.Int("segments", stats.Segments),
		log.Int("sprites", stats.Sprites))
	return nil
}
