// Package observe provides the telemetry primitives the monitoring core
// emits through: a leveled structured logger, OpenTelemetry request and
// resource instruments, and request tracing.
//
// It is a pure instrumentation library: no collection, no aggregation, no
// I/O beyond exporter setup. Consumers wire an Observer into the monitor
// package's recorder and middleware.
package observe
