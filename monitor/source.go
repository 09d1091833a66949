package monitor

import (
	"runtime"
	"time"

	"github.com/jonwraymond/pulse/collect"
)

const mb = 1024 * 1024

// RuntimeSource reports process memory usage from the Go runtime. It has no
// view of host CPU or disk, which it reports as zero. Deployments that need
// host-level figures should supply their own Source (on Linux, see
// SysinfoSource).
type RuntimeSource struct{}

// Sample reads the runtime memory statistics. It never fails.
func (RuntimeSource) Sample() (collect.ResourceSnapshot, error) {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	snap := collect.ResourceSnapshot{
		MemoryUsedMB:      float64(stats.Alloc) / mb,
		MemoryAvailableMB: float64(stats.Sys-stats.Alloc) / mb,
		ObservedAt:        time.Now(),
	}
	if stats.Sys > 0 {
		snap.MemoryPercent = float64(stats.Alloc) / float64(stats.Sys) * 100
	}
	return snap, nil
}
