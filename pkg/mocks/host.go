package mocks

import (
	"sync"

	"github.com/Snider/rswait/pkg/rotator"
)

// Host is an in-memory rotator.Host that records everything rendered into
// it.
type Host struct {
	mu       sync.Mutex
	elements map[string]*Element
	lookups  int
}

// NewHost returns a Host with no containers.
func NewHost() *Host {
	return &Host{elements: make(map[string]*Element)}
}

// Add registers a container. When withText is false the container has no
// text target, which the rotator must tolerate.
func (h *Host) Add(id string, withText bool) *Element {
	h.mu.Lock()
	defer h.mu.Unlock()
	el := &Element{}
	if withText {
		el.text = &Text{}
	}
	h.elements[id] = el
	return el
}

// Element implements rotator.Host.
func (h *Host) Element(id string) (rotator.Element, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lookups++
	el, ok := h.elements[id]
	if !ok {
		return nil, false
	}
	return el, true
}

// Lookups returns how many times Element was called.
func (h *Host) Lookups() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lookups
}

// Element is a recording container.
type Element struct {
	mu      sync.Mutex
	visible bool
	text    *Text
}

// Show implements rotator.Element.
func (e *Element) Show() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.visible = true
}

// Visible reports whether Show was called.
func (e *Element) Visible() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visible
}

// Text implements rotator.Element.
func (e *Element) Text() (rotator.TextTarget, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.text == nil {
		return nil, false
	}
	return e.text, true
}

// Target returns the recording text target, or nil.
func (e *Element) Target() *Text {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text
}

// Text records quote text and opacity changes.
type Text struct {
	mu        sync.Mutex
	current   string
	opacity   float64
	history   []string
	opacities []float64
}

// SetOpacity implements rotator.TextTarget.
func (t *Text) SetOpacity(o float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.opacity = o
	t.opacities = append(t.opacities, o)
}

// SetText implements rotator.TextTarget.
func (t *Text) SetText(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = s
	t.history = append(t.history, s)
}

// Current returns the text on display.
func (t *Text) Current() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Opacity returns the last opacity set.
func (t *Text) Opacity() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.opacity
}

// History returns every text set, oldest first.
func (t *Text) History() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.history...)
}

// Opacities returns every opacity set, oldest first.
func (t *Text) Opacities() []float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]float64(nil), t.opacities...)
}
