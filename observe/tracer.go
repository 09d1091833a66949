package observe

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Tracer wraps OpenTelemetry tracing with span management for inbound
// requests.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndRequest must be best-effort and must not panic.
type Tracer interface {
	// StartRequest starts a span covering one request.
	StartRequest(ctx context.Context, method, path string) (context.Context, trace.Span)

	// EndRequest records the response status and ends the span.
	EndRequest(span trace.Span, statusCode int)
}

type tracerImpl struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer wrapping the given OpenTelemetry tracer.
func NewTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

func (t *tracerImpl) StartRequest(ctx context.Context, method, path string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, method+" "+path,
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("url.path", path),
		),
		trace.WithSpanKind(trace.SpanKindServer),
	)
}

func (t *tracerImpl) EndRequest(span trace.Span, statusCode int) {
	span.SetAttributes(attribute.Int("http.status_code", statusCode))
	if statusCode >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(statusCode))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// NopTracer returns a Tracer that produces no spans.
func NopTracer() Tracer {
	return &nopTracer{noop: tracenoop.NewTracerProvider().Tracer("noop")}
}

type nopTracer struct {
	noop trace.Tracer
}

func (t *nopTracer) StartRequest(ctx context.Context, method, path string) (context.Context, trace.Span) {
	return t.noop.Start(ctx, method+" "+path)
}

func (t *nopTracer) EndRequest(span trace.Span, statusCode int) {
	span.End()
}
