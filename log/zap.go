package log

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process wide logger. It is a no-op logger until one of the
// Init functions is called so packages may log from tests without setup.
var Logger = zap.NewNop()

type Field = zap.Field

// Init builds the logger from a zap level name ("debug", "info", ...) and a
// format ("console" or "json").
func Init(level, format string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console", "":
		cfg = zap.NewDevelopmentConfig()
	default:
		return fmt.Errorf("invalid log format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	// keep stdout free for the terminal renderer
	cfg.OutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	Logger = l
	return nil
}

// DebugEnabled reports whether debug entries are being written.
func DebugEnabled() bool {
	return Logger.Core().Enabled(zapcore.DebugLevel)
}

// Sync flushes buffered entries. Errors from syncing stderr are ignored.
func Sync() {
	_ = Logger.Sync()
}

func Debug(msg string, fields ...Field) { Logger.Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { Logger.Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { Logger.Warn(msg, fields...) }
func Error(msg string, fields ...Field) { Logger.Error(msg, fields...) }

func String(key, val string) Field                 { return zap.String(key, val) }
func Int(key string, val int) Field                { return zap.Int(key, val) }
func Int64(key string, val int64) Field            { return zap.Int64(key, val) }
func Float64(key string, val float64) Field        { return zap.Float64(key, val) }
func Bool(key string, val bool) Field              { return zap.Bool(key, val) }
func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }
func ErrorField(err error) Field                   { return zap.Error(err) }
