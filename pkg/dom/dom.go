//go:build js && wasm

// Package dom hosts the rotator in the browser page the WASM module runs in.
package dom

import (
	"strconv"
	"syscall/js"

	"github.com/Snider/rswait/pkg/rotator"
)

// Document is a rotator.Host over the global document object.
type Document struct {
	doc js.Value
}

// New returns a Document for the current page.
func New() *Document {
	return &Document{doc: js.Global().Get("document")}
}

// Element implements rotator.Host using getElementById.
func (d *Document) Element(id string) (rotator.Element, bool) {
	if !usable(d.doc) {
		return nil, false
	}
	el := d.doc.Call("getElementById", id)
	if !usable(el) {
		return nil, false
	}
	return element{el}, true
}

type element struct {
	v js.Value
}

func (e element) Show() {
	e.v.Get("style").Set("display", "block")
}

func (e element) Text() (rotator.TextTarget, bool) {
	p := e.v.Call("querySelector", "."+rotator.TextClass)
	if !usable(p) {
		return nil, false
	}
	return text{p}, true
}

type text struct {
	v js.Value
}

func (t text) SetOpacity(o float64) {
	t.v.Get("style").Set("opacity", strconv.FormatFloat(o, 'f', -1, 64))
}

func (t text) SetText(s string) {
	t.v.Set("textContent", s)
}

func usable(v js.Value) bool {
	return !v.IsNull() && !v.IsUndefined()
}
