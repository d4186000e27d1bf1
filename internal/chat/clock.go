package chat

import (
	"sync"
	"time"
)

// Clock yields milliseconds since the Unix epoch.
type Clock interface {
	Now() int64
}

// MonotonicClock never returns a value smaller than one it returned before,
// even if the wall clock steps back.
type MonotonicClock struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewClock wraps now; a nil now uses time.Now.
func NewClock(now func() time.Time) *MonotonicClock {
	if now == nil {
		now = time.Now
	}
	return &MonotonicClock{now: now}
}

func (c *MonotonicClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	ms := c.now().UnixMilli()
	if ms < c.last {
		ms = c.last
	}
	c.last = ms
	return ms
}
