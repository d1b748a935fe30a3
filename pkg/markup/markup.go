// Package markup hosts the rotator inside a parsed HTML fragment, so quotes
// can be rendered server-side into the same markup the browser uses.
package markup

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Snider/rswait/pkg/rotator"
)

// FragmentHTML is the wait box markup shipped with the widget.
//
//go:embed fragment.html
var FragmentHTML []byte

// Document is a rotator.Host over an HTML fragment. All mutations go through
// the document lock, so timer callbacks may touch it concurrently.
type Document struct {
	mu    sync.Mutex
	nodes []*html.Node
}

// Parse reads an HTML fragment in body context.
func Parse(r io.Reader) (*Document, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}
	return &Document{nodes: nodes}, nil
}

// Fragment returns a fresh copy of the shipped wait box.
func Fragment() *Document {
	d, err := Parse(bytes.NewReader(FragmentHTML))
	if err != nil {
		panic(err)
	}
	return d
}

// Element implements rotator.Host.
func (d *Document) Element(id string) (rotator.Element, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, n := range d.nodes {
		if found := find(n, func(n *html.Node) bool { return attr(n, "id") == id }); found != nil {
			return &element{doc: d, node: found}, true
		}
	}
	return nil, false
}

// Render writes the fragment back out as HTML.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, n := range d.nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("failed to render markup: %w", err)
		}
	}
	return nil
}

// String renders the fragment, ignoring errors.
func (d *Document) String() string {
	var b strings.Builder
	_ = d.Render(&b)
	return b.String()
}

type element struct {
	doc  *Document
	node *html.Node
}

func (e *element) Show() {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	setStyle(e.node, "display", "block")
}

func (e *element) Text() (rotator.TextTarget, bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	var found *html.Node
	for c := e.node.FirstChild; c != nil && found == nil; c = c.NextSibling {
		found = find(c, func(n *html.Node) bool { return hasClass(n, rotator.TextClass) })
	}
	if found == nil {
		return nil, false
	}
	return &text{doc: e.doc, node: found}, true
}

type text struct {
	doc  *Document
	node *html.Node
}

func (t *text) SetOpacity(o float64) {
	t.doc.mu.Lock()
	defer t.doc.mu.Unlock()
	setStyle(t.node, "opacity", strconv.FormatFloat(o, 'f', -1, 64))
}

func (t *text) SetText(s string) {
	t.doc.mu.Lock()
	defer t.doc.mu.Unlock()
	for c := t.node.FirstChild; c != nil; c = t.node.FirstChild {
		t.node.RemoveChild(c)
	}
	t.node.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

// find walks n depth first and returns the first element matching.
func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// setStyle sets one property in the inline style attribute, keeping the
// others in their original order.
func setStyle(n *html.Node, prop, val string) {
	var decls []string
	replaced := false
	for _, decl := range strings.Split(attr(n, "style"), ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		name, _, _ := strings.Cut(decl, ":")
		if strings.EqualFold(strings.TrimSpace(name), prop) {
			decl = prop + ":" + val
			replaced = true
		}
		decls = append(decls, decl)
	}
	if !replaced {
		decls = append(decls, prop+":"+val)
	}
	setAttr(n, "style", strings.Join(decls, ";"))
}

// Style returns the value of prop in the inline style of the element with
// the given id.
func (d *Document) Style(id, prop string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, n := range d.nodes {
		found := find(n, func(n *html.Node) bool { return attr(n, "id") == id })
		if found == nil {
			continue
		}
		for _, decl := range strings.Split(attr(found, "style"), ";") {
			name, val, ok := strings.Cut(decl, ":")
			if ok && strings.EqualFold(strings.TrimSpace(name), prop) {
				return strings.TrimSpace(val)
			}
		}
	}
	return ""
}

// TextOf returns the text content of the rs-wait-text child of the element
// with the given id.
func (d *Document) TextOf(id string) string {
	el, ok := d.Element(id)
	if !ok {
		return ""
	}
	t, ok := el.Text()
	if !ok {
		return ""
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	var b strings.Builder
	collectText(t.(*text).node, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
