package health

import (
	"encoding/json"
	"net/http"
	"time"
)

// LivenessHandler returns an HTTP handler for liveness probes.
// It only confirms the process is serving requests.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

// ReportHandler returns an HTTP handler serving the full classification
// report as JSON. Healthy and degraded verdicts answer 200 so load balancers
// keep routing to a degraded instance; only unhealthy answers 503.
func ReportHandler(cls *Classifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := cls.Classify(time.Now())

		w.Header().Set("Content-Type", "application/json")
		if report.Status == StatusUnhealthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}
		_ = json.NewEncoder(w).Encode(report)
	}
}
