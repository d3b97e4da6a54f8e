package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golangdaddy/roadrush/log"
	"github.com/golangdaddy/roadrush/pkg/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ telemetry.Sink = (*ProfileSink)(nil)

func TestImprove(t *testing.T) {
	p := NewProfile("ace")
	assert.False(t, p.Improve(0))
	assert.True(t, p.Improve(70))
	assert.False(t, p.Improve(75))
	assert.False(t, p.Improve(70))
	assert.True(t, p.Improve(65.5))
	assert.Equal(t, 65.5, p.BestLap)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "profile.json")
	p := NewProfile("ace")
	p.BestLap = 61.2
	p.Laps = 4
	require.NoError(t, p.SaveToFile(path))

	got, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "ace", got.Name)
	assert.Equal(t, 61.2, got.BestLap)
	assert.Equal(t, 4, got.Laps)
	assert.False(t, got.LastPlayed.IsZero())
}

func TestLoadOrCreate(t *testing.T) {
	dir := t.TempDir()
	p, err := LoadOrCreate(filepath.Join(dir, "missing.json"), "new")
	require.NoError(t, err)
	assert.Equal(t, "new", p.Name)
	assert.Zero(t, p.BestLap)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = LoadOrCreate(bad, "new")
	assert.ErrorContains(t, err, "parse profile")
}

func TestProfileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	sink := NewProfileSink(NewProfile("ace"), path)
	var s telemetry.Sink = telemetry.Multi{sink}

	s.LapCompleted(70)
	s.BestLap(70)
	s.LapCompleted(72)
	s.LapCompleted(68)
	s.BestLap(68)

	assert.Equal(t, 3, sink.Profile.Laps)
	stored, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, 68.0, stored.BestLap)

	// a stored best replayed at startup does not rewrite the file
	require.NoError(t, os.Remove(path))
	s.BestLap(68)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestProfileSinkLogsFailedSave(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := log.Logger
	log.Logger = zap.New(core)
	t.Cleanup(func() { log.Logger = prev })

	// a regular file where the directory should be
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	sink := NewProfileSink(NewProfile("ace"), filepath.Join(blocker, "profile.json"))
	sink.BestLap(61)

	assert.Equal(t, 61.0, sink.Profile.BestLap)
	failed := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, failed, 1)
	assert.Equal(t, "profile not saved", failed[0].Message)
}
