// Package rotator cycles waiting messages through a host element while a
// slow operation runs.
//
// Example:
//
//	r := rotator.New(page)
//	r.Start("waitBox", quotes.ProductDescription)
//	defer r.Stop()
package rotator

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Snider/rswait/pkg/clock"
	"github.com/Snider/rswait/pkg/logger"
	"github.com/Snider/rswait/pkg/quotes"
)

const (
	// DefaultInterval is the time between two quotes.
	DefaultInterval = 4000 * time.Millisecond
	// DefaultFadeDelay is how long the text stays hidden before it is swapped.
	DefaultFadeDelay = 300 * time.Millisecond
)

// defaultCatalog is swapped out in tests.
var defaultCatalog = quotes.Default

// Rotator shows one quote at a time from a shuffled pool. It is either
// inactive or active; a second Start replaces the running rotation.
type Rotator struct {
	host      Host
	catalog   *quotes.Catalog
	clock     clock.Clock
	interval  time.Duration
	fadeDelay time.Duration
	log       *slog.Logger

	mu     sync.Mutex
	rng    *rand.Rand
	pool   []string
	cursor int
	timer  clock.Timer
	gen    uint64
}

// Option configures a Rotator.
type Option func(*Rotator)

// WithCatalog replaces the embedded catalog.
func WithCatalog(c *quotes.Catalog) Option {
	return func(r *Rotator) { r.catalog = c }
}

// WithClock replaces the real clock, typically with a manual one in tests.
func WithClock(c clock.Clock) Option {
	return func(r *Rotator) { r.clock = c }
}

// WithRand sets the random source used for shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(r *Rotator) { r.rng = rng }
}

// WithSeed seeds a deterministic random source.
func WithSeed(seed uint64) Option {
	return func(r *Rotator) { r.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithInterval changes the time between quotes. Non-positive values are
// ignored.
func WithInterval(d time.Duration) Option {
	return func(r *Rotator) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithFadeDelay changes the hidden period before the text is swapped. Zero
// swaps the text immediately.
func WithFadeDelay(d time.Duration) Option {
	return func(r *Rotator) { r.fadeDelay = d }
}

// WithLogger reports soft failures at debug level. By default nothing is
// logged.
func WithLogger(log *slog.Logger) Option {
	return func(r *Rotator) {
		if log != nil {
			r.log = log
		}
	}
}

// New returns an inactive Rotator rendering into host.
func New(host Host, opts ...Option) *Rotator {
	r := &Rotator{
		host:      host,
		clock:     clock.Real,
		interval:  DefaultInterval,
		fadeDelay: DefaultFadeDelay,
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.catalog == nil {
		// An unreadable embedded catalog leaves the pool empty.
		c, err := defaultCatalog()
		if err != nil {
			r.log.Debug("embedded catalog unavailable", "err", err)
		}
		r.catalog = c
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return r
}

// Start begins rotating quotes from the generic catalog plus the catalog for
// contextKey into the container with id containerID. Any running rotation is
// stopped first. Unknown keys add nothing. If the container does not exist
// nothing is armed and Start reports false.
func (r *Rotator) Start(containerID, contextKey string) bool {
	r.mu.Lock()
	r.stopLocked()
	r.gen++
	gen := r.gen
	r.pool = r.catalog.Resolve(contextKey)
	Shuffle(r.rng, r.pool)

	var el Element
	var ok bool
	if r.host != nil {
		el, ok = r.host.Element(containerID)
	}
	if !ok {
		r.mu.Unlock()
		r.log.Debug("wait container not found", "container", containerID, "context", contextKey)
		return false
	}
	r.timer = r.clock.Every(r.interval, func() { r.tick(el, gen) })
	size := len(r.pool)
	q, has := r.nextLocked()
	r.mu.Unlock()

	r.log.Debug("wait rotation started", "container", containerID, "context", contextKey, "pool", size)
	el.Show()
	if has {
		r.render(el, q)
	}
	return true
}

// Stop cancels the rotation and rewinds the cursor. The container and its
// last quote stay as they are. Stop on an inactive Rotator is a no-op.
func (r *Rotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

func (r *Rotator) stopLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
		r.gen++
	}
	r.cursor = 0
}

// While runs fn with the rotation active and stops it when fn returns or ctx
// is done, whichever is first. It returns fn's error.
func (r *Rotator) While(ctx context.Context, containerID, contextKey string, fn func(context.Context) error) error {
	r.Start(containerID, contextKey)
	defer r.Stop()

	errc := make(chan error, 1)
	go func() { errc <- fn(ctx) }()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		r.Stop()
		return <-errc
	}
}

// Active reports whether a rotation is running.
func (r *Rotator) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timer != nil
}

// Pool returns a copy of the current working set in display order.
func (r *Rotator) Pool() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.pool...)
}

// Cursor returns the index of the next quote to show.
func (r *Rotator) Cursor() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cursor
}

func (r *Rotator) tick(el Element, gen uint64) {
	r.mu.Lock()
	if gen != r.gen {
		r.mu.Unlock()
		return
	}
	q, ok := r.nextLocked()
	r.mu.Unlock()
	if ok {
		r.render(el, q)
	}
}

// nextLocked takes the quote under the cursor and advances it. Running off
// the end reshuffles the pool and rewinds to the start.
func (r *Rotator) nextLocked() (string, bool) {
	if len(r.pool) == 0 {
		return "", false
	}
	q := r.pool[r.cursor]
	r.cursor++
	if r.cursor >= len(r.pool) {
		r.cursor = 0
		Shuffle(r.rng, r.pool)
	}
	return q, true
}

// render fades the text target out, then swaps in q and fades it back.
func (r *Rotator) render(el Element, q string) {
	target, ok := el.Text()
	if !ok {
		r.log.Debug("wait text target not found", "class", TextClass)
		return
	}
	target.SetOpacity(0)
	swap := func() {
		target.SetText(q)
		target.SetOpacity(1)
	}
	if r.fadeDelay <= 0 {
		swap()
		return
	}
	r.clock.After(r.fadeDelay, swap)
}
