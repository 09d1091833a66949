package monitor

import (
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jonwraymond/pulse/health"
)

// StatsHandler returns an HTTP handler serving the rolling statistics
// document as JSON. Concurrent requests share one stats computation via
// singleflight, so a caller may receive a document built a moment earlier.
func StatsHandler(src health.StatsSource) http.HandlerFunc {
	var group singleflight.Group

	return func(w http.ResponseWriter, r *http.Request) {
		stats, _, _ := group.Do("stats", func() (any, error) {
			return src.Stats(time.Now()), nil
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(stats)
	}
}

// RegisterHandlers wires the monitoring endpoints onto mux:
// /api/monitoring/stats, /api/monitoring/health, and a plain /health
// liveness probe.
func RegisterHandlers(mux *http.ServeMux, src health.StatsSource, cls *health.Classifier) {
	mux.HandleFunc("/api/monitoring/stats", StatsHandler(src))
	mux.HandleFunc("/api/monitoring/health", health.ReportHandler(cls))
	mux.HandleFunc("/health", health.LivenessHandler())
}
