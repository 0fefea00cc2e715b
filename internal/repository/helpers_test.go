package repository

import (
	"fmt"
	"sync"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 8, 19, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// sequentialIDs yields "<prefix>-1", "<prefix>-2", ... across all prefixes.
func sequentialIDs() IDGenerator {
	var (
		mu sync.Mutex
		n  int
	)
	return func(prefix string, _ time.Time) string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func testOptions(clock *fakeClock) Options {
	return Options{Clock: clock.Now, IDs: sequentialIDs()}
}

func ptr[T any](v T) *T { return &v }
