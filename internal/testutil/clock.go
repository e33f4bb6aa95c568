// Package testutil provides in-memory repositories so services and
// routers can be tested without a database.
package testutil

import (
	"sync"
	"time"
)

// Clock hands out strictly increasing timestamps, one minute apart.
type Clock struct {
	mu  sync.Mutex
	cur time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{cur: start}
}

func (c *Clock) Next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = c.cur.Add(time.Minute)
	return c.cur
}

func defaultClock() *Clock {
	return NewClock(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
}
