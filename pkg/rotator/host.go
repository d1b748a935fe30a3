package rotator

// TextClass is the class of the element that receives the quote text inside
// a container.
const TextClass = "rs-wait-text"

// Host resolves containers by id. A browser page, a parsed HTML fragment and
// a terminal are all hosts.
type Host interface {
	Element(id string) (Element, bool)
}

// Element is a container the rotator renders into.
type Element interface {
	// Show makes the container visible.
	Show()
	// Text returns the text-bearing child, if the container has one.
	Text() (TextTarget, bool)
}

// TextTarget receives the quote text and a cosmetic opacity.
type TextTarget interface {
	SetOpacity(opacity float64)
	SetText(text string)
}
