// Package health classifies service health from rolling request and
// resource statistics.
//
// The Classifier applies a fixed, ordered rule set to a stats snapshot and
// produces a tri-state verdict: Healthy, Degraded, or Unhealthy. Each
// triggered rule contributes a human-readable issue string; the verdict is
// derived purely from the number of issues.
//
// # Basic Usage
//
//	c := collect.NewCollector()
//	cls := health.NewClassifier(c)
//
//	report := cls.Classify(time.Now())
//	if report.Status != health.StatusHealthy {
//	    log.Printf("service %s: %v", report.Status, report.Issues)
//	}
//
// # HTTP Endpoints
//
//	// Liveness probe for load balancers
//	http.Handle("/health", health.LivenessHandler())
//
//	// Full classification report
//	http.Handle("/api/monitoring/health", health.ReportHandler(cls))
//
// Classification never fails: an empty collector yields a healthy report, and
// abnormal statistics degrade the verdict rather than produce an error.
package health
