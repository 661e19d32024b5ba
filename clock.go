package bound

import "sync/atomic"

// clock is a monotonic logical counter used to stamp bindings and
// resolution outcomes. Stamps are informational; only their order matters,
// so a counter serves in place of wall-clock timestamps.
type clock struct {
	seq atomic.Uint64
}

func (c *clock) next() uint64 { return c.seq.Add(1) }

func (c *clock) current() uint64 { return c.seq.Load() }

// ticks stamps every binding created in this process.
var ticks clock
