package monitor

import (
	"context"
	"time"

	"github.com/jonwraymond/pulse/collect"
	"github.com/jonwraymond/pulse/observe"
)

// Log classification thresholds for the ingestion path. Distinct from the
// health classifier's thresholds: these only decide which log lines a report
// emits.
const (
	slowRequest       = 10 * time.Second
	highCPUPercent    = 80.0
	highMemoryPercent = 80.0
)

// Request carries the already-extracted fields of one completed request.
// The surrounding HTTP layer owns the request/response objects; only these
// scalars cross into the core.
type Request struct {
	Endpoint     string
	Method       string
	StatusCode   int
	Elapsed      time.Duration
	UserAgent    string
	ClientAddr   string
	ErrorMessage string
}

// Recorder is the single write path into the collector. Each report inserts
// a sample, updates metrics, and emits log lines. Side effects are advisory:
// Record and RecordUsage never fail and never raise to the caller.
type Recorder struct {
	collector *collect.Collector
	logger    observe.Logger
	metrics   observe.Metrics
	now       func() time.Time
}

// NewRecorder creates a recorder writing into c. A nil logger or metrics is
// replaced with a no-op implementation.
func NewRecorder(c *collect.Collector, logger observe.Logger, metrics observe.Metrics) *Recorder {
	if logger == nil {
		logger = observe.Nop()
	}
	if metrics == nil {
		metrics = observe.NopMetrics()
	}
	return &Recorder{
		collector: c,
		logger:    logger,
		metrics:   metrics,
		now:       time.Now,
	}
}

// Record reports one completed request. It stamps the sample with the
// current time, inserts it, records metrics, and emits one informational log
// line plus at most one classification line: error "server error" for status
// >= 500, warn "client error" for status >= 400, warn "slow request" when
// the request took longer than 10 seconds.
func (r *Recorder) Record(ctx context.Context, req Request) {
	r.collector.AddRequest(collect.RequestSample{
		Endpoint:     req.Endpoint,
		Method:       req.Method,
		StatusCode:   req.StatusCode,
		Elapsed:      req.Elapsed,
		ObservedAt:   r.now(),
		UserAgent:    req.UserAgent,
		ClientAddr:   req.ClientAddr,
		ErrorMessage: req.ErrorMessage,
	})

	r.metrics.RecordRequest(ctx, req.Method, req.Endpoint, req.StatusCode, req.Elapsed)

	fields := []observe.Field{
		{Key: "method", Value: req.Method},
		{Key: "endpoint", Value: req.Endpoint},
		{Key: "status_code", Value: req.StatusCode},
		{Key: "duration_ms", Value: float64(req.Elapsed) / float64(time.Millisecond)},
	}
	r.logger.Info(ctx, "request completed", fields...)

	switch {
	case req.StatusCode >= 500:
		r.logger.Error(ctx, "server error",
			append(fields, observe.Field{Key: "error", Value: req.ErrorMessage})...)
	case req.StatusCode >= 400:
		r.logger.Warn(ctx, "client error", fields...)
	case req.Elapsed > slowRequest:
		r.logger.Warn(ctx, "slow request", fields...)
	}
}

// RecordUsage reports one resource reading. A zero ObservedAt is stamped
// with the current time. High CPU and high memory each emit a separate
// warning line, so a reading may produce zero, one, or two lines.
func (r *Recorder) RecordUsage(ctx context.Context, snap collect.ResourceSnapshot) {
	if snap.ObservedAt.IsZero() {
		snap.ObservedAt = r.now()
	}
	r.collector.AddSnapshot(snap)

	r.metrics.RecordUsage(ctx, snap.CPUPercent, snap.MemoryPercent, snap.DiskUsagePercent)

	if snap.CPUPercent > highCPUPercent {
		r.logger.Warn(ctx, "high cpu usage",
			observe.Field{Key: "cpu_percent", Value: snap.CPUPercent})
	}
	if snap.MemoryPercent > highMemoryPercent {
		r.logger.Warn(ctx, "high memory usage",
			observe.Field{Key: "memory_percent", Value: snap.MemoryPercent})
	}
}
