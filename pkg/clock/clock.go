// Package clock abstracts the two timer shapes the rotator needs: a repeating
// interval and a one-shot delay.
package clock

import (
	"sync"
	"time"
)

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	// Stop cancels the timer. It is safe to call more than once.
	Stop()
}

// Clock schedules callbacks.
type Clock interface {
	// Every calls f every d until the returned Timer is stopped.
	Every(d time.Duration, f func()) Timer
	// After calls f once after d unless the returned Timer is stopped first.
	After(d time.Duration, f func()) Timer
}

// Real is a Clock backed by the time package. Callbacks run on their own
// goroutines.
var Real Clock = realClock{}

type realClock struct{}

func (realClock) Every(d time.Duration, f func()) Timer {
	t := &ticker{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go t.run(f)
	return t
}

func (realClock) After(d time.Duration, f func()) Timer {
	return afterTimer{time.AfterFunc(d, f)}
}

type ticker struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *ticker) run(f func()) {
	defer t.ticker.Stop()
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			// A stop racing with a tick wins.
			select {
			case <-t.done:
				return
			default:
			}
			f()
		}
	}
}

func (t *ticker) Stop() {
	t.once.Do(func() {
		close(t.done)
	})
}

type afterTimer struct {
	t *time.Timer
}

func (a afterTimer) Stop() {
	a.t.Stop()
}
