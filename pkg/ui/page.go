// Package ui renders the wait rotation in a terminal: a Page of named
// containers, a plain Line for logs and pipes, and a spinner Bar for
// interactive sessions.
package ui

import (
	"sync"

	"github.com/Snider/rswait/pkg/rotator"
)

// Page is a rotator.Host holding terminal containers by id.
type Page struct {
	mu       sync.RWMutex
	elements map[string]rotator.Element
}

// NewPage returns an empty Page.
func NewPage() *Page {
	return &Page{elements: make(map[string]rotator.Element)}
}

// Add registers el under id, replacing any previous container.
func (p *Page) Add(id string, el rotator.Element) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.elements[id] = el
}

// Remove drops the container registered under id.
func (p *Page) Remove(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.elements, id)
}

// Element implements rotator.Host.
func (p *Page) Element(id string) (rotator.Element, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	el, ok := p.elements[id]
	return el, ok
}
