// Package race assembles everything a race needs from the resolved command
// line: the world, its sinks, the sheets and the stored profile.
package race

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/golangdaddy/roadrush/log"
	"github.com/golangdaddy/roadrush/pkg/background"
	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/data"
	"github.com/golangdaddy/roadrush/pkg/models"
	"github.com/golangdaddy/roadrush/pkg/telemetry"
	"github.com/golangdaddy/roadrush/pkg/world"
)

// this holds the resolved configuration values from CLI
var (
	Settings          = config.Default()
	LogLevel          string        // zap level name
	LogFormat         string        // console vs json
	EnableTelemetry   bool          // export otel metrics to stderr
	TelemetryInterval time.Duration // export period
)

// DefaultProfilePath is where the profile lives when none is configured.
func DefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".roadrush-profile.json"
	}
	return filepath.Join(home, ".roadrush-profile.json")
}

// Session is one running race and the things reporting on it.
type Session struct {
	World    *world.World
	Sheets   background.Sheets
	Profile  *models.Profile
	Readings *telemetry.Recorder

	profileSink *models.ProfileSink
	exporter    *telemetry.Exporter
}

// Open builds a session from cfg. extra sinks, such as a HUD, receive the
// same readings as the built in ones.
func Open(cfg config.Config, extra ...telemetry.Sink) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.ProfilePath == "" {
		cfg.ProfilePath = DefaultProfilePath()
	}

	profile, err := models.LoadOrCreate(cfg.ProfilePath, playerName())
	if err != nil {
		log.Warn("profile unreadable, starting a new one", log.String("path", cfg.ProfilePath), log.ErrorField(err))
		profile = models.NewProfile(playerName())
	}

	s := &Session{
		Profile:     profile,
		Readings:    &telemetry.Recorder{},
		profileSink: models.NewProfileSink(profile, cfg.ProfilePath),
	}
	sinks := telemetry.Multi{s.Readings, telemetry.NewLogSink(), s.profileSink}
	if EnableTelemetry {
		interval := TelemetryInterval
		if interval <= 0 {
			interval = 10 * time.Second
		}
		s.exporter, err = telemetry.NewStdoutExporter(os.Stderr, interval)
		if err != nil {
			return nil, fmt.Errorf("telemetry: %w", err)
		}
		metrics, err := telemetry.NewMetricsSink(s.exporter.Provider)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("telemetry: %w", err), s.exporter.Shutdown(context.Background()))
		}
		sinks = append(sinks, metrics)
	}
	sinks = append(sinks, extra...)

	s.World, err = world.New(cfg, sinks)
	if err != nil {
		return nil, errors.Join(err, s.closeExporter(context.Background()))
	}
	s.World.SetBestLap(profile.BestLap)

	s.Sheets, err = background.Load(cfg.AssetDir, cfg.Seed)
	if err != nil {
		return nil, errors.Join(err, s.closeExporter(context.Background()))
	}
	log.Info("session ready",
		log.String("player", profile.Name),
		log.Float64("bestLap", profile.BestLap),
		log.Bool("telemetry", EnableTelemetry))
	return s, nil
}

// Close stores the profile and flushes telemetry.
func (s *Session) Close(ctx context.Context) error {
	s.profileSink.Save()
	return s.closeExporter(ctx)
}

func (s *Session) closeExporter(ctx context.Context) error {
	if s.exporter == nil {
		return nil
	}
	return s.exporter.Shutdown(ctx)
}

func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return data.RandomName(rand.New(rand.NewSource(time.Now().UnixNano())))
}
