package collect

import (
	"sync"
	"time"
)

// Config configures a Collector.
type Config struct {
	// MaxRequests caps the request sample window.
	// Default: 1000
	MaxRequests int

	// MaxSnapshots caps the resource snapshot window.
	// Default: 100
	MaxSnapshots int

	// StartTime anchors uptime reporting.
	// Default: time.Now()
	StartTime time.Time
}

// endpointAggregate accumulates lifetime totals for one endpoint key.
// Entries are created on first insertion and never removed; window eviction
// does not touch them.
type endpointAggregate struct {
	calls      int64
	total      time.Duration
	errors     int64
	lastCalled time.Time
}

// Collector stores recent request samples and resource snapshots in bounded
// windows and keeps a lifetime aggregate per endpoint key.
type Collector struct {
	mu        sync.RWMutex
	requests  *window[RequestSample]
	snapshots *window[ResourceSnapshot]
	endpoints map[string]*endpointAggregate
	startTime time.Time
}

// NewCollector creates a new collector.
func NewCollector(config ...Config) *Collector {
	cfg := Config{
		MaxRequests:  1000,
		MaxSnapshots: 100,
	}
	if len(config) > 0 {
		cfg = config[0]
		if cfg.MaxRequests <= 0 {
			cfg.MaxRequests = 1000
		}
		if cfg.MaxSnapshots <= 0 {
			cfg.MaxSnapshots = 100
		}
	}
	if cfg.StartTime.IsZero() {
		cfg.StartTime = time.Now()
	}

	return &Collector{
		requests:  newWindow[RequestSample](cfg.MaxRequests),
		snapshots: newWindow[ResourceSnapshot](cfg.MaxSnapshots),
		endpoints: make(map[string]*endpointAggregate),
		startTime: cfg.StartTime,
	}
}

// AddRequest appends a request sample, evicting the oldest if the window is
// full, and updates the lifetime aggregate for the sample's endpoint key.
// Both mutations are applied as one atomic unit.
func (c *Collector) AddRequest(s RequestSample) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests.push(s)

	agg, ok := c.endpoints[s.Key()]
	if !ok {
		agg = &endpointAggregate{}
		c.endpoints[s.Key()] = agg
	}
	agg.calls++
	agg.total += s.Elapsed
	agg.lastCalled = s.ObservedAt
	if s.StatusCode >= 400 {
		agg.errors++
	}
}

// AddSnapshot appends a resource snapshot, evicting the oldest if the window
// is full.
func (c *Collector) AddSnapshot(s ResourceSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshots.push(s)
}
