package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records request outcomes and resource readings through
// OpenTelemetry instruments.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic; recording is best-effort.
type Metrics interface {
	// RecordRequest records one completed request.
	RecordRequest(ctx context.Context, method, endpoint string, statusCode int, elapsed time.Duration)

	// RecordUsage records one resource reading.
	RecordUsage(ctx context.Context, cpuPercent, memoryPercent, diskPercent float64)
}

type metricsImpl struct {
	requestTotal  metric.Int64Counter
	requestErrors metric.Int64Counter
	durationHist  metric.Float64Histogram
	cpuGauge      metric.Float64Gauge
	memoryGauge   metric.Float64Gauge
	diskGauge     metric.Float64Gauge
}

// NewMetrics creates a Metrics instance registered on the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	requestTotal, err := meter.Int64Counter(
		"pulse.requests.total",
		metric.WithDescription("Total number of completed requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	requestErrors, err := meter.Int64Counter(
		"pulse.requests.errors",
		metric.WithDescription("Completed requests with status code >= 400"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"pulse.request.duration_ms",
		metric.WithDescription("Request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	cpuGauge, err := meter.Float64Gauge(
		"pulse.system.cpu_percent",
		metric.WithDescription("Host CPU utilization"),
		metric.WithUnit("%"),
	)
	if err != nil {
		return nil, err
	}

	memoryGauge, err := meter.Float64Gauge(
		"pulse.system.memory_percent",
		metric.WithDescription("Host memory utilization"),
		metric.WithUnit("%"),
	)
	if err != nil {
		return nil, err
	}

	diskGauge, err := meter.Float64Gauge(
		"pulse.system.disk_percent",
		metric.WithDescription("Disk utilization of the monitored filesystem"),
		metric.WithUnit("%"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		requestTotal:  requestTotal,
		requestErrors: requestErrors,
		durationHist:  durationHist,
		cpuGauge:      cpuGauge,
		memoryGauge:   memoryGauge,
		diskGauge:     diskGauge,
	}, nil
}

func (m *metricsImpl) RecordRequest(ctx context.Context, method, endpoint string, statusCode int, elapsed time.Duration) {
	opt := metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", endpoint),
		attribute.Int("http.status_code", statusCode),
	)

	m.requestTotal.Add(ctx, 1, opt)
	if statusCode >= 400 {
		m.requestErrors.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(elapsed)/float64(time.Millisecond), opt)
}

func (m *metricsImpl) RecordUsage(ctx context.Context, cpuPercent, memoryPercent, diskPercent float64) {
	m.cpuGauge.Record(ctx, cpuPercent)
	m.memoryGauge.Record(ctx, memoryPercent)
	m.diskGauge.Record(ctx, diskPercent)
}

// NopMetrics returns a Metrics implementation that records nothing.
func NopMetrics() Metrics {
	return nopMetrics{}
}

type nopMetrics struct{}

func (nopMetrics) RecordRequest(ctx context.Context, method, endpoint string, statusCode int, elapsed time.Duration) {
}

func (nopMetrics) RecordUsage(ctx context.Context, cpuPercent, memoryPercent, diskPercent float64) {
}
