package health

import (
	"fmt"
	"time"

	"github.com/jonwraymond/pulse/collect"
)

// Classification thresholds. Fixed constants, not runtime-configurable.
const (
	maxErrorRatePercent  = 10.0
	maxAvgResponseTimeMS = 5000.0
	maxCPUPercent        = 90.0
	maxMemoryPercent     = 90.0
)

// StatsSource supplies the rolling statistics the classifier evaluates.
// *collect.Collector satisfies it.
type StatsSource interface {
	Stats(now time.Time) collect.Stats
}

// Report is the outcome of one classification pass.
type Report struct {
	// Status is the verdict.
	Status Status `json:"status"`

	// Issues lists triggered rules in evaluation order. Empty when healthy.
	Issues []string `json:"issues"`

	// Uptime is the human-readable uptime from the underlying stats.
	Uptime string `json:"uptime"`

	// TotalRequests is the windowed request count from the underlying stats.
	TotalRequests int `json:"total_requests"`

	// Timestamp is when the classification was performed.
	Timestamp time.Time `json:"timestamp"`
}

// Classifier derives a health verdict from a stats source.
type Classifier struct {
	src StatsSource
}

// NewClassifier creates a classifier reading from src.
func NewClassifier(src StatsSource) *Classifier {
	return &Classifier{src: src}
}

// Classify evaluates the rule set against the stats as of now. It always
// returns a report; abnormal statistics degrade the verdict, never fail the
// call. An empty collector classifies as healthy.
func (c *Classifier) Classify(now time.Time) Report {
	stats := c.src.Stats(now)

	issues := make([]string, 0, 4)
	if stats.ErrorRate > maxErrorRatePercent {
		issues = append(issues, fmt.Sprintf("high error rate: %v%%", stats.ErrorRate))
	}
	if stats.AvgResponseTime > maxAvgResponseTimeMS {
		issues = append(issues, fmt.Sprintf("slow response time: %vms", stats.AvgResponseTime))
	}
	if sys := stats.CurrentSystem; sys != nil {
		if sys.CPUPercent > maxCPUPercent {
			issues = append(issues, fmt.Sprintf("high CPU: %.1f%%", sys.CPUPercent))
		}
		if sys.MemoryPercent > maxMemoryPercent {
			issues = append(issues, fmt.Sprintf("high memory: %.1f%%", sys.MemoryPercent))
		}
	}

	status := StatusHealthy
	switch {
	case len(issues) >= 3:
		status = StatusUnhealthy
	case len(issues) > 0:
		status = StatusDegraded
	}

	return Report{
		Status:        status,
		Issues:        issues,
		Uptime:        stats.Uptime,
		TotalRequests: stats.TotalRequests,
		Timestamp:     now,
	}
}
