package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/Snider/rswait/pkg/rotator"
)

// Bar shows quotes as the description of an indeterminate spinner. Each new
// quote also advances the spinner.
type Bar struct {
	mu     sync.Mutex
	w      io.Writer
	bar    *progressbar.ProgressBar
	text   string
	closed bool
}

// NewBar returns a spinner Bar writing to w.
//
// Example:
//
//	bar := ui.NewBar(os.Stderr)
//	page.Add("terminal", bar)
//	defer bar.Close()
func NewBar(w io.Writer) *Bar {
	return &Bar{w: w, bar: newSpinner(w)}
}

func newSpinner(w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(w) }),
	)
}

// Show implements rotator.Element. A finished spinner is replaced by a new
// one.
func (b *Bar) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		b.bar = newSpinner(b.w)
		b.closed = false
	}
	_ = b.bar.RenderBlank()
}

// Text implements rotator.Element.
func (b *Bar) Text() (rotator.TextTarget, bool) {
	return b, true
}

// SetText implements rotator.TextTarget.
func (b *Bar) SetText(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.text = s
	_ = b.bar.Add(1)
}

// SetOpacity implements rotator.TextTarget.
func (b *Bar) SetOpacity(o float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	if o <= 0 {
		b.bar.Describe("")
		return
	}
	b.bar.Describe(b.text)
}

// Close finishes the spinner, leaving the last quote on screen. Updates are
// dropped until the next Show.
func (b *Bar) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	_ = b.bar.Finish()
}
