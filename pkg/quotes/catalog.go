// Package quotes holds the catalogs of waiting messages shown while a slow
// operation runs: a generic list plus optional lists keyed by context.
package quotes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
)

// Context keys shipped in the embedded catalog.
const (
	ProductDescription = "product-description"
	BlogIdeas          = "blog-ideas"
)

// ErrEmptyCatalog is returned when a catalog has no generic messages.
var ErrEmptyCatalog = errors.New("catalog has no generic quotes")

var (
	cachedCatalog *Catalog
	catalogOnce   sync.Once
	catalogErr    error
)

// Catalog is an immutable set of waiting messages. The zero value is an empty
// catalog; use Default or Load to obtain a populated one.
type Catalog struct {
	generic  []string
	contexts map[string][]string
}

type catalogFile struct {
	Generic  []string            `json:"generic"`
	Contexts map[string][]string `json:"contexts"`
}

// New builds a catalog from the given lists. The slices are copied.
func New(generic []string, contexts map[string][]string) *Catalog {
	c := &Catalog{
		generic:  append([]string(nil), generic...),
		contexts: make(map[string][]string, len(contexts)),
	}
	for k, v := range contexts {
		c.contexts[k] = append([]string(nil), v...)
	}
	return c
}

// Load decodes a catalog in the quotes.json format from r.
func Load(r io.Reader) (*Catalog, error) {
	var f catalogFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if len(f.Generic) == 0 {
		return nil, ErrEmptyCatalog
	}
	return New(f.Generic, f.Contexts), nil
}

// LoadFile reads a catalog from the file at path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// loadEmbedded reads the catalog bundled with the binary.
func loadEmbedded() (*Catalog, error) {
	f, err := QuotesJSON.Open("quotes.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read quotes.json: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded catalog, decoding it once on first use.
func Default() (*Catalog, error) {
	catalogOnce.Do(func() {
		cachedCatalog, catalogErr = loadEmbedded()
	})
	return cachedCatalog, catalogErr
}

// MustDefault is Default for callers that treat a broken embedded catalog as
// a build defect.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Generic returns a copy of the generic messages.
func (c *Catalog) Generic() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.generic...)
}

// Context returns a copy of the messages for key. Unknown keys yield an empty
// slice.
func (c *Catalog) Context(key string) []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.contexts[key]...)
}

// Keys returns the known context keys in sorted order.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.contexts))
	for k := range c.contexts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolve returns the generic messages followed by the messages for key, in
// catalog order.
func (c *Catalog) Resolve(key string) []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.generic)+len(c.contexts[key]))
	out = append(out, c.generic...)
	return append(out, c.contexts[key]...)
}
