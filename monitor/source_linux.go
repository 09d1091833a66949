//go:build linux

package monitor

import (
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sys/unix"

	"github.com/jonwraymond/pulse/collect"
)

// SysinfoSource reads host memory, load, and disk figures from the kernel.
// CPU percent is approximated from the one-minute load average scaled by the
// CPU count, so it can exceed 100 on overloaded hosts.
type SysinfoSource struct {
	// MountPoint is the filesystem whose usage is reported.
	// Default: "/"
	MountPoint string
}

// Sample reads sysinfo(2) and statfs(2). Failures are transient I/O errors;
// the sampler logs them and retries on the next interval.
func (s SysinfoSource) Sample() (collect.ResourceSnapshot, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return collect.ResourceSnapshot{}, fmt.Errorf("sysinfo: %w", err)
	}

	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}
	total := uint64(info.Totalram) * unit
	available := (uint64(info.Freeram) + uint64(info.Bufferram)) * unit
	used := total - available

	snap := collect.ResourceSnapshot{
		MemoryUsedMB:      float64(used) / mb,
		MemoryAvailableMB: float64(available) / mb,
		ObservedAt:        time.Now(),
	}
	if total > 0 {
		snap.MemoryPercent = float64(used) / float64(total) * 100
	}

	// Loads are SI_LOAD_SHIFT (16-bit) fixed point.
	load1 := float64(info.Loads[0]) / float64(1<<16)
	if cpus := runtime.NumCPU(); cpus > 0 {
		snap.CPUPercent = load1 / float64(cpus) * 100
	}

	mount := s.MountPoint
	if mount == "" {
		mount = "/"
	}
	var fs unix.Statfs_t
	if err := unix.Statfs(mount, &fs); err != nil {
		return collect.ResourceSnapshot{}, fmt.Errorf("statfs %s: %w", mount, err)
	}
	usedBlocks := uint64(fs.Blocks) - uint64(fs.Bfree)
	// Denominator is space visible to unprivileged users, matching df(1).
	if visible := usedBlocks + uint64(fs.Bavail); visible > 0 {
		snap.DiskUsagePercent = float64(usedBlocks) / float64(visible) * 100
	}

	return snap, nil
}
