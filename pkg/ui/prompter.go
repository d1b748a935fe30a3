package ui

import (
	"context"
	"io"
	"sync"

	"github.com/Snider/rswait/pkg/rotator"
)

// ContainerID is the id the Prompter registers its terminal container under.
const ContainerID = "terminal"

type closer interface {
	rotator.Element
	Close()
}

// Prompter shows rotating wait quotes on a terminal or log stream during
// long-running operations. Interactive sessions get a spinner, everything
// else gets one plain line per quote.
//
// Example:
//
//	p := ui.NewPrompter(os.Stderr)
//	p.Start(quotes.ProductDescription)
//	// ... long-running operation ...
//	p.Stop()
type Prompter struct {
	rot  *rotator.Rotator
	page *Page
	out  closer

	mu      sync.Mutex
	started bool
}

// NewPrompter returns a Prompter writing to w. Options are passed to the
// underlying rotator.
func NewPrompter(w io.Writer, opts ...rotator.Option) *Prompter {
	var out closer
	if IsInteractive(w) {
		out = NewBar(w)
	} else {
		out = NewLine(w)
	}
	return newPrompter(out, opts...)
}

func newPrompter(out closer, opts ...rotator.Option) *Prompter {
	page := NewPage()
	page.Add(ContainerID, out)
	return &Prompter{
		rot:  rotator.New(page, opts...),
		page: page,
		out:  out,
	}
}

// Start begins the rotation with the catalog for contextKey. Calling Start
// again restarts it with a fresh shuffle.
func (p *Prompter) Start(contextKey string) {
	p.mu.Lock()
	p.started = true
	p.mu.Unlock()
	p.rot.Start(ContainerID, contextKey)
}

// Stop halts the rotation and finishes the output. It is safe to call Stop
// multiple times.
func (p *Prompter) Stop() {
	p.rot.Stop()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		p.out.Close()
		p.started = false
	}
}

// While runs fn with the rotation active. See rotator.Rotator.While.
func (p *Prompter) While(ctx context.Context, contextKey string, fn func(context.Context) error) error {
	p.mu.Lock()
	p.started = true
	p.mu.Unlock()
	defer p.Stop()
	return p.rot.While(ctx, ContainerID, contextKey, fn)
}

// Rotator exposes the underlying rotator.
func (p *Prompter) Rotator() *rotator.Rotator {
	return p.rot
}
