// Package monitor is the ingestion surface of the telemetry core.
//
// Recorder is the single write path: the surrounding service reports each
// completed request and each resource reading through it, and every report
// is appended to a collect.Collector with logging and metrics side effects
// attached. Those side effects are advisory; they never block or fail an
// ingestion.
//
// Sampler runs the periodic resource sampling loop against a Source, and
// Middleware reports every request handled by a wrapped http.Handler.
//
//	c := collect.NewCollector()
//	rec := monitor.NewRecorder(c, obs.Logger(), metrics)
//
//	sampler := monitor.NewSampler(rec, monitor.RuntimeSource{}, 30*time.Second)
//	go sampler.Run(ctx)
//	defer sampler.Stop()
//
//	mux := http.NewServeMux()
//	monitor.RegisterHandlers(mux, c, health.NewClassifier(c))
//	handler := monitor.Middleware(rec, tracer, mux)
package monitor
