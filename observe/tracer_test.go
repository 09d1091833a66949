package observe

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestTracer() (Tracer, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	return NewTracer(tp.Tracer("test")), recorder
}

func TestTracer_SpanNameAndAttributes(t *testing.T) {
	tracer, recorder := newTestTracer()

	_, span := tracer.StartRequest(context.Background(), "GET", "/api/items")
	tracer.EndRequest(span, 200)

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if got := spans[0].Name(); got != "GET /api/items" {
		t.Errorf("span name = %q, want 'GET /api/items'", got)
	}
	if got := spans[0].Status().Code; got != codes.Ok {
		t.Errorf("status = %v, want Ok", got)
	}
}

func TestTracer_ServerErrorMarksSpan(t *testing.T) {
	tracer, recorder := newTestTracer()

	_, span := tracer.StartRequest(context.Background(), "POST", "/api/items")
	tracer.EndRequest(span, 502)

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if got := spans[0].Status().Code; got != codes.Error {
		t.Errorf("status = %v, want Error for 502", got)
	}
}

func TestTracer_ClientErrorIsNotSpanError(t *testing.T) {
	tracer, recorder := newTestTracer()

	_, span := tracer.StartRequest(context.Background(), "GET", "/missing")
	tracer.EndRequest(span, 404)

	spans := recorder.Ended()
	if got := spans[0].Status().Code; got != codes.Ok {
		t.Errorf("status = %v, want Ok for 404", got)
	}
}

func TestNopTracer(t *testing.T) {
	tracer := NopTracer()

	ctx, span := tracer.StartRequest(context.Background(), "GET", "/x")
	if ctx == nil {
		t.Fatal("context should not be nil")
	}
	tracer.EndRequest(span, 500) // must not panic
}
