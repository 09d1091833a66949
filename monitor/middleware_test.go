package monitor

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonwraymond/pulse/collect"
)

func TestMiddleware_RecordsSuccessfulRequest(t *testing.T) {
	c := collect.NewCollector()
	rec := NewRecorder(c, nil, nil)

	handler := Middleware(rec, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("User-Agent", "pulse-test")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	stats := c.Stats(time.Now())
	if stats.TotalRequests != 1 {
		t.Fatalf("TotalRequests = %d, want 1", stats.TotalRequests)
	}
	ep, ok := stats.Endpoints["GET /api/items"]
	if !ok {
		t.Fatal("endpoint aggregate missing")
	}
	if ep.ErrorRate != 0 {
		t.Errorf("ErrorRate = %v, want 0", ep.ErrorRate)
	}
}

// A handler that never calls WriteHeader still records as a 200.
func TestMiddleware_ImplicitStatusIs200(t *testing.T) {
	c := collect.NewCollector()
	rec := NewRecorder(c, nil, nil)

	handler := Middleware(rec, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/quiet", nil))

	if got := c.Stats(time.Now()).ErrorRate; got != 0 {
		t.Errorf("ErrorRate = %v, want 0 for implicit 200", got)
	}
}

func TestMiddleware_CapturesStatusCode(t *testing.T) {
	c := collect.NewCollector()
	rec := NewRecorder(c, nil, nil)

	handler := Middleware(rec, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	stats := c.Stats(time.Now())
	if stats.ErrorRate != 100 {
		t.Errorf("ErrorRate = %v, want 100 for a 404", stats.ErrorRate)
	}
}

func TestMiddleware_PanicRecordedAs500AndRethrown(t *testing.T) {
	c := collect.NewCollector()
	rec := NewRecorder(c, nil, nil)

	handler := Middleware(rec, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic should propagate to the server's recovery")
			}
		}()
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/explode", nil))
	}()

	stats := c.Stats(time.Now())
	if stats.TotalRequests != 1 {
		t.Fatalf("TotalRequests = %d, want the panicking request recorded", stats.TotalRequests)
	}
	ep := stats.Endpoints["GET /explode"]
	if ep.ErrorRate != 100 {
		t.Errorf("ErrorRate = %v, want 100 for a panic", ep.ErrorRate)
	}
}

func TestMiddleware_PassesResponseThrough(t *testing.T) {
	rec := NewRecorder(collect.NewCollector(), nil, nil)

	handler := Middleware(rec, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418 passed through", w.Code)
	}
	if !strings.Contains(w.Body.String(), "short and stout") {
		t.Errorf("body = %q, want handler output passed through", w.Body.String())
	}
}
