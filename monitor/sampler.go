package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/jonwraymond/pulse/collect"
	"github.com/jonwraymond/pulse/observe"
)

// DefaultInterval is the sampling interval used when none is configured.
const DefaultInterval = 30 * time.Second

// Source supplies one resource usage reading. Implementations may block; the
// sampler never interrupts an in-flight read.
type Source interface {
	Sample() (collect.ResourceSnapshot, error)
}

// SourceFunc adapts an ordinary function to the Source interface.
type SourceFunc func() (collect.ResourceSnapshot, error)

// Sample calls f.
func (f SourceFunc) Sample() (collect.ResourceSnapshot, error) {
	return f()
}

// Sampler periodically reads a Source and feeds each reading to a Recorder.
type Sampler struct {
	recorder *Recorder
	source   Source
	interval time.Duration

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewSampler creates a sampler. A non-positive interval falls back to
// DefaultInterval.
func NewSampler(rec *Recorder, src Source, interval time.Duration) *Sampler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sampler{
		recorder: rec,
		source:   src,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run samples immediately and then once per interval until Stop is called or
// ctx is cancelled. A failed read is logged and retried after the full
// interval; it never ends the loop or the process. The stop signal is
// checked once per iteration, between samples.
func (s *Sampler) Run(ctx context.Context) {
	defer close(s.done)

	s.recorder.logger.Info(ctx, "resource sampling started",
		observe.Field{Key: "interval", Value: s.interval.String()})

	for {
		snap, err := s.source.Sample()
		if err != nil {
			s.recorder.logger.Error(ctx, "resource sampling failed",
				observe.Field{Key: "error", Value: err.Error()})
		} else {
			s.recorder.RecordUsage(ctx, snap)
		}

		select {
		case <-s.stop:
			s.recorder.logger.Info(ctx, "resource sampling stopped")
			return
		case <-ctx.Done():
			s.recorder.logger.Info(ctx, "resource sampling stopped")
			return
		case <-time.After(s.interval):
		}
	}
}

// Stop signals the loop to exit at the next iteration boundary. It does not
// interrupt an in-flight sample. Safe to call more than once.
func (s *Sampler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Done is closed when the sampling loop has exited.
func (s *Sampler) Done() <-chan struct{} {
	return s.done
}
