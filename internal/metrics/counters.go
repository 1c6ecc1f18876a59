package metrics

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Stat is a point-in-time reading of one operation counter.
type Stat struct {
	Count int64         `json:"count"`
	Total time.Duration `json:"total_ns"`
}

// Mean returns the average duration per invocation.
func (s Stat) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

type counter struct {
	count atomic.Int64
	nanos atomic.Int64
}

// Counters accumulates invocation counts and cumulative wall time per
// operation name. It is safe for concurrent use; readers see eventually
// consistent values.
type Counters struct {
	ops sync.Map // string -> *counter
}

// NewCounters creates an empty counter map
func NewCounters() *Counters {
	return &Counters{}
}

// Record adds one invocation of op that took d.
func (c *Counters) Record(op string, d time.Duration) {
	v, ok := c.ops.Load(op)
	if !ok {
		v, _ = c.ops.LoadOrStore(op, &counter{})
	}
	ctr := v.(*counter)
	ctr.count.Add(1)
	ctr.nanos.Add(int64(d))
}

// Time starts timing op; call the returned func to record it.
func (c *Counters) Time(op string) func() {
	start := time.Now()
	return func() { c.Record(op, time.Since(start)) }
}

// Get returns the current reading for op.
func (c *Counters) Get(op string) Stat {
	v, ok := c.ops.Load(op)
	if !ok {
		return Stat{}
	}
	ctr := v.(*counter)
	return Stat{Count: ctr.count.Load(), Total: time.Duration(ctr.nanos.Load())}
}

// Snapshot copies every counter into a new map.
func (c *Counters) Snapshot() map[string]Stat {
	out := make(map[string]Stat)
	c.ops.Range(func(k, v any) bool {
		ctr := v.(*counter)
		out[k.(string)] = Stat{Count: ctr.count.Load(), Total: time.Duration(ctr.nanos.Load())}
		return true
	})
	return out
}

// Operations returns the recorded operation names, sorted. A non-empty prefix
// filters the result.
func (c *Counters) Operations(prefix string) []string {
	var ops []string
	c.ops.Range(func(k, _ any) bool {
		if name := k.(string); strings.HasPrefix(name, prefix) {
			ops = append(ops, name)
		}
		return true
	})
	sort.Strings(ops)
	return ops
}

// Reset clears every counter.
func (c *Counters) Reset() {
	c.ops.Range(func(k, _ any) bool {
		c.ops.Delete(k)
		return true
	})
}
