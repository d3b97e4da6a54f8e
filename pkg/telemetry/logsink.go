package telemetry

import (
	"github.com/golangdaddy/roadrush/log"
	"github.com/golangdaddy/roadrush/pkg/physics"
)

// LogSink writes lap events to the process logger. Per tick readings are
// dropped.
type LogSink struct {
	laps int
}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (l *LogSink) CurrentLap(float64) {}
func (l *LogSink) Speed(float64)      {}

func (l *LogSink) LapCompleted(seconds float64) {
	l.laps++
	log.Info("lap completed",
		log.Int("lap", l.laps),
		log.Float64("seconds", seconds),
		log.String("time", physics.FormatLap(seconds)))
}

func (l *LogSink) BestLap(seconds float64) {
	log.Info("best lap", log.Float64("seconds", seconds), log.String("time", physics.FormatLap(seconds)))
}
