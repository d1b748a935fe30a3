package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestReal_Every(t *testing.T) {
	var n atomic.Int32
	fired := make(chan struct{}, 16)
	timer := Real.Every(5*time.Millisecond, func() {
		n.Add(1)
		fired <- struct{}{}
	})

	for i := 0; i < 3; i++ {
		select {
		case <-fired:
		case <-time.After(2 * time.Second):
			t.Fatalf("tick %d did not fire", i)
		}
	}
	timer.Stop()
	timer.Stop()

	// Give a racing tick time to land, then make sure nothing else arrives.
	time.Sleep(20 * time.Millisecond)
	after := n.Load()
	time.Sleep(30 * time.Millisecond)
	if n.Load() != after {
		t.Errorf("ticks continued after Stop: %d -> %d", after, n.Load())
	}
}

func TestReal_After(t *testing.T) {
	t.Run("Good", func(t *testing.T) {
		done := make(chan struct{})
		Real.After(time.Millisecond, func() { close(done) })
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("After callback did not fire")
		}
	})

	t.Run("Stopped", func(t *testing.T) {
		var fired atomic.Bool
		timer := Real.After(20*time.Millisecond, func() { fired.Store(true) })
		timer.Stop()
		time.Sleep(40 * time.Millisecond)
		if fired.Load() {
			t.Error("After callback fired after Stop")
		}
	})
}
