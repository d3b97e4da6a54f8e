package telemetry

import (
	"context"
	"fmt"
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/golangdaddy/roadrush/pkg/physics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

const meterName = "github.com/golangdaddy/roadrush"

// MetricsSink publishes readings as OpenTelemetry instruments: a lap
// duration histogram, a lap counter and gauges for speed and best lap.
type MetricsSink struct {
	laps     metric.Int64Counter
	duration metric.Float64Histogram
	speed    atomic.Uint64 // float64 bits
	best     atomic.Uint64
}

// NewMetricsSink registers the instruments on provider. A nil provider uses
// the global one.
func NewMetricsSink(provider metric.MeterProvider) (*MetricsSink, error) {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	meter := provider.Meter(meterName)
	m := &MetricsSink{}

	var err error
	if m.laps, err = meter.Int64Counter("roadrush.laps",
		metric.WithDescription("completed laps")); err != nil {
		return nil, fmt.Errorf("lap counter: %w", err)
	}
	if m.duration, err = meter.Float64Histogram("roadrush.lap.duration",
		metric.WithDescription("time to complete a lap"),
		metric.WithUnit("s")); err != nil {
		return nil, fmt.Errorf("lap histogram: %w", err)
	}
	if _, err = meter.Int64ObservableGauge("roadrush.speed",
		metric.WithDescription("player speed readout"),
		metric.WithUnit("{mph}"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(int64(physics.Readout(m.load(&m.speed))))
			return nil
		})); err != nil {
		return nil, fmt.Errorf("speed gauge: %w", err)
	}
	if _, err = meter.Float64ObservableGauge("roadrush.lap.best",
		metric.WithDescription("fastest lap so far"),
		metric.WithUnit("s"),
		metric.WithFloat64Callback(func(_ context.Context, o metric.Float64Observer) error {
			if best := m.load(&m.best); best > 0 {
				o.Observe(best, metric.WithAttributes(attribute.String("time", physics.FormatLap(best))))
			}
			return nil
		})); err != nil {
		return nil, fmt.Errorf("best lap gauge: %w", err)
	}
	return m, nil
}

func (m *MetricsSink) load(v *atomic.Uint64) float64 {
	return math.Float64frombits(v.Load())
}

func (m *MetricsSink) CurrentLap(float64) {}

func (m *MetricsSink) LapCompleted(seconds float64) {
	ctx := context.Background()
	m.laps.Add(ctx, 1)
	m.duration.Record(ctx, seconds)
}

func (m *MetricsSink) BestLap(seconds float64) {
	m.best.Store(math.Float64bits(seconds))
}

func (m *MetricsSink) Speed(speed float64) {
	m.speed.Store(math.Float64bits(speed))
}

// Exporter owns a meter provider writing to w at the given interval.
type Exporter struct {
	Provider *sdkmetric.MeterProvider
}

// NewStdoutExporter sets up a periodic stdout metric exporter.
func NewStdoutExporter(w io.Writer, interval time.Duration) (*Exporter, error) {
	exp, err := stdoutmetric.New(stdoutmetric.WithWriter(w), stdoutmetric.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("stdout metric exporter: %w", err)
	}
	res := resource.NewSchemaless(attribute.String("service.name", "roadrush"))
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(interval))),
	)
	return &Exporter{Provider: provider}, nil
}

// Shutdown flushes pending metrics.
func (e *Exporter) Shutdown(ctx context.Context) error {
	return e.Provider.Shutdown(ctx)
}
