package monitor

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jonwraymond/pulse/observe"
)

// statusWriter captures the status code written by the wrapped handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Middleware reports every request handled by next to the recorder, with a
// span covering the handler. A panic in the handler is reported as a 500
// with the panic value as the error message, then re-raised for the server's
// own recovery.
func Middleware(rec *Recorder, tracer observe.Tracer, next http.Handler) http.Handler {
	if tracer == nil {
		tracer = observe.NopTracer()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.StartRequest(r.Context(), r.Method, r.URL.Path)
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		defer func() {
			elapsed := time.Since(start)
			req := Request{
				Endpoint:   r.URL.Path,
				Method:     r.Method,
				Elapsed:    elapsed,
				UserAgent:  r.UserAgent(),
				ClientAddr: r.RemoteAddr,
			}

			if p := recover(); p != nil {
				req.StatusCode = http.StatusInternalServerError
				req.ErrorMessage = fmt.Sprint(p)
				tracer.EndRequest(span, req.StatusCode)
				rec.Record(ctx, req)
				panic(p)
			}

			req.StatusCode = sw.status
			tracer.EndRequest(span, sw.status)
			rec.Record(ctx, req)
		}()

		next.ServeHTTP(sw, r.WithContext(ctx))
	})
}
