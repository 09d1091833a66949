package collect

import (
	"math"
	"time"
)

// recentWindow bounds the RecentRequests figure in Stats.
const recentWindow = 5 * time.Minute

// EndpointStats summarizes lifetime activity for one endpoint key.
type EndpointStats struct {
	// Calls is the number of samples ever ingested for this key, including
	// samples already evicted from the request window.
	Calls int64 `json:"calls"`

	// AvgResponseTime is the lifetime mean response time in seconds,
	// rounded to 3 decimals.
	AvgResponseTime float64 `json:"avg_response_time"`

	// ErrorRate is the lifetime percentage of calls with status >= 400,
	// rounded to 2 decimals.
	ErrorRate float64 `json:"error_rate"`

	// LastCalled is when the key was last seen.
	LastCalled time.Time `json:"last_called"`
}

// Stats is a point-in-time view of the collector.
//
// Global figures (TotalRequests, RecentRequests, ErrorRate, AvgResponseTime)
// are computed over the current window contents and reflect recent behavior.
// Endpoints is derived from the lifetime aggregate table and reflects
// all-time behavior. The asymmetry is deliberate.
type Stats struct {
	// UptimeSeconds is whole seconds since the collector was constructed.
	UptimeSeconds int64 `json:"uptime_seconds"`

	// Uptime is the same elapsed time as a human-readable duration.
	Uptime string `json:"uptime_human"`

	// TotalRequests is the number of samples currently in the window.
	TotalRequests int `json:"total_requests"`

	// RecentRequests counts windowed samples observed in the last 5 minutes.
	RecentRequests int `json:"recent_requests_5min"`

	// ErrorRate is the percentage of windowed samples with status >= 400,
	// rounded to 2 decimals. Zero when the window is empty.
	ErrorRate float64 `json:"error_rate_percent"`

	// AvgResponseTime is the mean response time over windowed samples in
	// milliseconds, rounded to 2 decimals. Zero when the window is empty.
	AvgResponseTime float64 `json:"avg_response_time_ms"`

	// CurrentSystem is the most recent resource snapshot, or nil if none
	// has been recorded.
	CurrentSystem *ResourceSnapshot `json:"current_system"`

	// Endpoints maps endpoint keys to their lifetime aggregates.
	Endpoints map[string]EndpointStats `json:"endpoints"`

	// Timestamp is the instant the stats were computed.
	Timestamp time.Time `json:"timestamp"`
}

// Stats computes a snapshot of rolling statistics as of now. It is a pure
// read and safe to call at any rate, concurrently with insertions.
func (c *Collector) Stats(now time.Time) Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.requests.len()
	cutoff := now.Add(-recentWindow)

	var recent, failed int
	var elapsed time.Duration
	c.requests.each(func(s RequestSample) {
		if s.ObservedAt.After(cutoff) {
			recent++
		}
		if s.StatusCode >= 400 {
			failed++
		}
		elapsed += s.Elapsed
	})

	var errorRate, avgMS float64
	if total > 0 {
		errorRate = round(float64(failed)/float64(total)*100, 2)
		avgMS = round(elapsed.Seconds()/float64(total)*1000, 2)
	}

	endpoints := make(map[string]EndpointStats, len(c.endpoints))
	for key, agg := range c.endpoints {
		endpoints[key] = EndpointStats{
			Calls:           agg.calls,
			AvgResponseTime: round(agg.total.Seconds()/float64(agg.calls), 3),
			ErrorRate:       round(float64(agg.errors)/float64(agg.calls)*100, 2),
			LastCalled:      agg.lastCalled,
		}
	}

	uptime := now.Sub(c.startTime)
	stats := Stats{
		UptimeSeconds:   int64(uptime.Seconds()),
		Uptime:          uptime.Truncate(time.Second).String(),
		TotalRequests:   total,
		RecentRequests:  recent,
		ErrorRate:       errorRate,
		AvgResponseTime: avgMS,
		Endpoints:       endpoints,
		Timestamp:       now,
	}
	if snap, ok := c.snapshots.last(); ok {
		stats.CurrentSystem = &snap
	}
	return stats
}

// round rounds v to the given number of decimal places.
func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
