package collect

import "time"

// RequestSample records the outcome of one completed request.
// Samples are immutable once inserted into a Collector.
type RequestSample struct {
	// Endpoint is the request path, e.g. "/api/items".
	Endpoint string

	// Method is the HTTP method, e.g. "GET".
	Method string

	// StatusCode is the response status code. Codes >= 400 count as errors.
	StatusCode int

	// Elapsed is how long the request took to complete.
	Elapsed time.Duration

	// ObservedAt is when the request completed.
	ObservedAt time.Time

	// UserAgent is the client's User-Agent header (optional).
	UserAgent string

	// ClientAddr is the client's network address (optional).
	ClientAddr string

	// ErrorMessage describes the failure for error responses (optional).
	ErrorMessage string
}

// Key returns the endpoint key used to group lifetime aggregates,
// in the form "METHOD path".
func (s RequestSample) Key() string {
	return s.Method + " " + s.Endpoint
}

// ResourceSnapshot is one point-in-time reading of host resource usage.
type ResourceSnapshot struct {
	// CPUPercent is host CPU utilization. May exceed 100 on loaded hosts.
	CPUPercent float64 `json:"cpu_percent"`

	// MemoryPercent is host memory utilization.
	MemoryPercent float64 `json:"memory_percent"`

	// MemoryUsedMB is used memory in mebibytes.
	MemoryUsedMB float64 `json:"memory_used_mb"`

	// MemoryAvailableMB is available memory in mebibytes.
	MemoryAvailableMB float64 `json:"memory_available_mb"`

	// DiskUsagePercent is disk utilization of the monitored filesystem.
	DiskUsagePercent float64 `json:"disk_usage_percent"`

	// ObservedAt is when the reading was taken.
	ObservedAt time.Time `json:"timestamp"`
}
