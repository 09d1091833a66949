package monitor

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonwraymond/pulse/collect"
	"github.com/jonwraymond/pulse/observe"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestSampler_RecordsPeriodically(t *testing.T) {
	c := collect.NewCollector()
	rec := NewRecorder(c, nil, nil)

	var calls atomic.Int64
	src := SourceFunc(func() (collect.ResourceSnapshot, error) {
		calls.Add(1)
		return collect.ResourceSnapshot{CPUPercent: 12}, nil
	})

	s := NewSampler(rec, src, 2*time.Millisecond)
	go s.Run(context.Background())
	defer s.Stop()

	waitFor(t, 2*time.Second, func() bool { return calls.Load() >= 3 })

	stats := c.Stats(time.Now())
	if stats.CurrentSystem == nil {
		t.Fatal("no snapshot recorded")
	}
	if stats.CurrentSystem.CPUPercent != 12 {
		t.Errorf("CPUPercent = %v, want 12", stats.CurrentSystem.CPUPercent)
	}
	if stats.CurrentSystem.ObservedAt.IsZero() {
		t.Error("snapshot should have been stamped with a time")
	}
}

func TestSampler_ContinuesAfterSourceError(t *testing.T) {
	var buf bytes.Buffer
	c := collect.NewCollector()
	rec := NewRecorder(c, observe.NewLoggerWithWriter("error", &buf), nil)

	var calls atomic.Int64
	src := SourceFunc(func() (collect.ResourceSnapshot, error) {
		if calls.Add(1) == 1 {
			return collect.ResourceSnapshot{}, errors.New("proc read failed")
		}
		return collect.ResourceSnapshot{CPUPercent: 30}, nil
	})

	s := NewSampler(rec, src, 2*time.Millisecond)
	go s.Run(context.Background())
	defer s.Stop()

	waitFor(t, 2*time.Second, func() bool {
		return c.Stats(time.Now()).CurrentSystem != nil
	})

	if !strings.Contains(buf.String(), "resource sampling failed") {
		t.Errorf("expected a sampling failure log line, got: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "proc read failed") {
		t.Errorf("failure line should carry the source error, got: %s", buf.String())
	}
}

func TestSampler_StopEndsLoop(t *testing.T) {
	rec := NewRecorder(collect.NewCollector(), nil, nil)
	src := SourceFunc(func() (collect.ResourceSnapshot, error) {
		return collect.ResourceSnapshot{}, nil
	})

	s := NewSampler(rec, src, time.Millisecond)
	go s.Run(context.Background())

	s.Stop()
	s.Stop() // second call is a no-op

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("sampler did not stop")
	}
}

func TestSampler_ContextCancelEndsLoop(t *testing.T) {
	rec := NewRecorder(collect.NewCollector(), nil, nil)
	src := SourceFunc(func() (collect.ResourceSnapshot, error) {
		return collect.ResourceSnapshot{}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	s := NewSampler(rec, src, time.Millisecond)
	go s.Run(ctx)

	cancel()

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("sampler did not stop on context cancellation")
	}
}

func TestNewSampler_DefaultInterval(t *testing.T) {
	rec := NewRecorder(collect.NewCollector(), nil, nil)
	s := NewSampler(rec, RuntimeSource{}, 0)

	if s.interval != DefaultInterval {
		t.Errorf("interval = %v, want %v", s.interval, DefaultInterval)
	}
}

func TestRuntimeSource_Sample(t *testing.T) {
	snap, err := RuntimeSource{}.Sample()
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if snap.MemoryUsedMB <= 0 {
		t.Errorf("MemoryUsedMB = %v, want > 0", snap.MemoryUsedMB)
	}
	if snap.MemoryPercent <= 0 || snap.MemoryPercent > 100 {
		t.Errorf("MemoryPercent = %v, want in (0, 100]", snap.MemoryPercent)
	}
	if snap.ObservedAt.IsZero() {
		t.Error("ObservedAt should be set")
	}
}
