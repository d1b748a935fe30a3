package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/Snider/rswait/pkg/rotator"
)

const clearLine = "\r\033[K"

// Line writes quotes to w. On a terminal the quote is redrawn in place and
// the fade clears the line; elsewhere each new quote is printed on its own
// line without colour.
type Line struct {
	mu          sync.Mutex
	w           io.Writer
	interactive bool
	color       *color.Color
	text        string
	printed     string
	open        bool
	closed      bool
}

// NewLine returns a Line writing to w.
func NewLine(w io.Writer) *Line {
	l := &Line{
		w:           w,
		interactive: IsInteractive(w),
		color:       color.New(color.FgGreen),
	}
	if !l.interactive {
		l.color.DisableColor()
	}
	return l
}

// Show implements rotator.Element. A terminal line is always visible; Show
// reopens a closed Line.
func (l *Line) Show() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = false
}

// Text implements rotator.Element; the line is its own text target.
func (l *Line) Text() (rotator.TextTarget, bool) {
	return l, true
}

// SetText implements rotator.TextTarget.
func (l *Line) SetText(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.text = s
}

// SetOpacity implements rotator.TextTarget.
func (l *Line) SetOpacity(o float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	if o <= 0 {
		if l.interactive && l.open {
			fmt.Fprint(l.w, clearLine)
		}
		return
	}
	if l.text == "" {
		return
	}
	if l.interactive {
		fmt.Fprint(l.w, clearLine+l.color.Sprint(l.text))
		l.open = true
		l.printed = l.text
		return
	}
	if l.text != l.printed {
		l.color.Fprintln(l.w, l.text)
		l.printed = l.text
	}
}

// Close ends an in-place line so following output starts on a fresh row.
// The last quote stays on screen and later updates are dropped until the
// next Show.
func (l *Line) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	if l.interactive && l.open {
		fmt.Fprintln(l.w)
		l.open = false
	}
}

// IsInteractive reports whether w is a terminal.
func IsInteractive(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
