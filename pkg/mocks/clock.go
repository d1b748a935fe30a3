package mocks

import (
	"sort"
	"sync"
	"time"

	"github.com/Snider/rswait/pkg/clock"
)

// Clock is a manual clock.Clock for tests. Time only moves when Advance is
// called, and due callbacks run synchronously on the caller's goroutine in
// deadline order.
//
// Example:
//
//	clk := mocks.NewClock()
//	r := rotator.New(host, rotator.WithClock(clk))
//	r.Start("waitBox", "")
//	clk.Advance(4 * time.Second)
type Clock struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	clk     *Clock
	due     time.Duration
	period  time.Duration
	seq     int
	f       func()
	stopped bool
}

// NewClock returns a Clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Every implements clock.Clock.
func (c *Clock) Every(d time.Duration, f func()) clock.Timer {
	return c.schedule(d, d, f)
}

// After implements clock.Clock.
func (c *Clock) After(d time.Duration, f func()) clock.Timer {
	return c.schedule(d, 0, f)
}

func (c *Clock) schedule(d, period time.Duration, f func()) *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &fakeTimer{clk: c, due: c.now + d, period: period, seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Stop implements clock.Timer.
func (t *fakeTimer) Stop() {
	t.clk.mu.Lock()
	defer t.clk.mu.Unlock()
	t.stopped = true
}

// Now returns the elapsed fake time.
func (c *Clock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Pending returns how many timers are still armed.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Repeating returns how many repeating timers are still armed.
func (c *Clock) Repeating() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && t.period > 0 {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, firing every callback that comes due.
// Callbacks scheduled by a firing callback are honoured if they fall inside
// the window.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.nextDueLocked(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = next.due
		if next.period > 0 {
			next.due += next.period
		} else {
			next.stopped = true
		}
		f := next.f
		c.mu.Unlock()

		f()
	}
}

// nextDueLocked drops stopped timers and returns the earliest one due at or
// before target.
func (c *Clock) nextDueLocked(target time.Duration) *fakeTimer {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	c.timers = live
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].due != c.timers[j].due {
			return c.timers[i].due < c.timers[j].due
		}
		return c.timers[i].seq < c.timers[j].seq
	})
	if len(c.timers) == 0 || c.timers[0].due > target {
		return nil
	}
	return c.timers[0]
}
