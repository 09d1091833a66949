// Package collect provides in-memory collection of per-request outcomes and
// host resource snapshots, and derives rolling statistics from them.
//
// The Collector keeps two bounded, insertion-ordered windows: one for recent
// request samples and one for recent resource snapshots. When a window is
// full, the oldest entry is evicted. Alongside the windows it maintains a
// lifetime aggregate per endpoint key ("METHOD path") that is updated on
// every insertion and never evicted, so per-endpoint figures survive window
// eviction.
//
// # Basic Usage
//
//	c := collect.NewCollector()
//
//	c.AddRequest(collect.RequestSample{
//	    Endpoint:   "/api/items",
//	    Method:     "GET",
//	    StatusCode: 200,
//	    Elapsed:    120 * time.Millisecond,
//	    ObservedAt: time.Now(),
//	})
//
//	stats := c.Stats(time.Now())
//	fmt.Printf("error rate: %.2f%%\n", stats.ErrorRate)
//
// All methods are safe for concurrent use. An insertion and its aggregate
// update are applied as one atomic unit; readers never observe a
// partially-applied insertion.
package collect
