// Package terminal runs a race inside a terminal, drawing each frame with
// half block characters.
package terminal

import (
	"context"
	"fmt"
	"image/color"
	"sync"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/golangdaddy/roadrush/log"
	"github.com/golangdaddy/roadrush/pkg/background"
	"github.com/golangdaddy/roadrush/pkg/loop"
	"github.com/golangdaddy/roadrush/pkg/render"
	"github.com/golangdaddy/roadrush/pkg/render/softsurface"
	"github.com/golangdaddy/roadrush/pkg/telemetry"
	"github.com/golangdaddy/roadrush/pkg/world"
)

var (
	statusFg = color.RGBA{255, 255, 255, 255}
	statusBg = color.RGBA{20, 20, 30, 255}
)

// Runner drives a World from terminal input.
type Runner struct {
	world    *world.World
	sheets   background.Sheets
	readings *telemetry.Recorder

	mu     sync.Mutex
	keys   *Keys
	width  int
	height int
}

// NewRunner creates a new runner. readings must be one of the sinks the
// world reports to, it feeds the status line.
func NewRunner(w *world.World, sheets background.Sheets, readings *telemetry.Recorder) *Runner {
	return &Runner{
		world:    w,
		sheets:   sheets,
		readings: readings,
		keys:     NewKeys(w.Config().FPS),
	}
}

// Run takes over the terminal until ctx is done or the driver quits.
func (r *Runner) Run(ctx context.Context) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)
	r.width, r.height = width, height

	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		if err := term.Shutdown(context.Background()); err != nil {
			log.Warn("terminal shutdown", log.ErrorField(err))
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go r.handleEvents(term, cancel)

	cfg := r.world.Config()
	driver := loop.NewDriver(cfg.Step())
	raster := render.NewRasterizer(render.NewParams(cfg))
	var surface *softsurface.Surface
	defer func() {
		if surface != nil {
			_ = surface.Close()
		}
	}()

	log.Info("terminal race started", log.Int("cols", width), log.Int("rows", height))
	err = loop.Run(ctx, time.Second/time.Duration(cfg.FPS), func(elapsed float64) error {
		r.mu.Lock()
		cols, rows := r.width, r.height
		driver.Advance(elapsed, func(dt float64) {
			r.keys.Update()
			r.world.Advance(dt, r.keys.Intents())
		})
		r.mu.Unlock()

		fbW, fbH := FramebufferSize(cols, rows)
		if surface == nil || !sameSize(surface, fbW, fbH) {
			if surface != nil {
				_ = surface.Close()
			}
			surface = softsurface.New(fbW, fbH, r.sheets.Background, r.sheets.Sprites)
			fb := cfg
			fb.Width, fb.Height = fbW, fbH
			raster.SetParams(render.NewParams(fb))
		}
		raster.Render(surface, r.world.View())
		if err := surface.Err(); err != nil {
			return err
		}
		r.draw(term, surface, cols, rows)
		return term.Display()
	})
	if err != nil {
		return fmt.Errorf("terminal race: %w", err)
	}
	return nil
}

func sameSize(s *softsurface.Surface, w, h int) bool {
	sw, sh := s.Size()
	return sw == w && sh == h
}

func (r *Runner) handleEvents(term *uv.Terminal, cancel context.CancelFunc) {
	for ev := range term.Events() {
		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			r.mu.Lock()
			r.width, r.height = ev.Width, ev.Height
			r.mu.Unlock()
			term.Erase()
			term.Resize(ev.Width, ev.Height)

		case uv.KeyPressEvent:
			switch {
			case ev.MatchString("ctrl+c"), ev.MatchString("escape"), ev.MatchString("q"):
				cancel()
				return
			}
			r.mu.Lock()
			for _, k := range []string{"left", "right", "up", "down", "a", "d", "w", "s"} {
				if ev.MatchString(k) {
					r.keys.Press(k)
					break
				}
			}
			r.mu.Unlock()

		case uv.KeyReleaseEvent:
			r.mu.Lock()
			for _, k := range []string{"left", "right", "up", "down", "a", "d", "w", "s"} {
				if ev.MatchString(k) {
					r.keys.Release(k)
					break
				}
			}
			r.mu.Unlock()
		}
	}
}

// draw copies the frame into terminal cells and writes the status line on
// the last row.
func (r *Runner) draw(scr uv.Screen, s *softsurface.Surface, cols, rows int) {
	img := s.Image()
	fbRows := max(rows-1, 1)
	for row := 0; row < fbRows; row++ {
		for col := 0; col < cols; col++ {
			top, bottom := blockColors(img, col, row)
			scr.SetCell(col, row, &uv.Cell{
				Content: halfBlock,
				Width:   1,
				Style:   uv.Style{Fg: top, Bg: bottom},
			})
		}
	}
	if rows < 2 {
		return
	}
	status := StatusLine(r.readings, cols)
	for col := 0; col < cols; col++ {
		ch := " "
		if col < len(status) {
			ch = string(status[col])
		}
		scr.SetCell(col, rows-1, &uv.Cell{
			Content: ch,
			Width:   1,
			Style:   uv.Style{Fg: statusFg, Bg: statusBg},
		})
	}
}
