package nav

import (
	"strings"

	"golang.org/x/net/html"
)

// Marker wraps the single page-level element whose value attribute holds the
// currently selected tag. The host page owns the element's existence; this
// package only reads and rewrites its value.
type Marker struct {
	node      *html.Node
	valueAttr string
}

// NewMarker wraps an existing marker element.
func NewMarker(n *html.Node, valueAttr string) *Marker {
	if valueAttr == "" {
		valueAttr = defaultMarkerValueAttr
	}
	return &Marker{node: n, valueAttr: valueAttr}
}

// Node returns the underlying element.
func (m *Marker) Node() *html.Node { return m.node }

// Value returns the current tag, or "" when unset.
func (m *Marker) Value() string {
	return GetAttr(m.node, m.valueAttr)
}

// SetValue rewrites the current tag.
func (m *Marker) SetValue(tag string) {
	SetAttr(m.node, m.valueAttr, tag)
}

// MarkerProvider locates the current marker. Injected so controllers and
// observers can be exercised against fabricated documents.
type MarkerProvider interface {
	// Marker returns the current marker, or nil when the page carries none.
	Marker() *Marker
}

// documentMarkers finds the marker element in a Document's head by its
// reserved name attribute.
type documentMarkers struct {
	doc  *Document
	opts Options
}

// Markers returns the default provider: a head-scoped lookup of the element
// named by opts.MarkerName.
func (d *Document) Markers(opts Options) MarkerProvider {
	return &documentMarkers{doc: d, opts: opts.WithDefaults()}
}

func (p *documentMarkers) Marker() *Marker {
	head := p.doc.Head()
	if head == nil {
		return nil
	}
	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || !strings.EqualFold(c.Data, p.opts.MarkerElement) {
			continue
		}
		if GetAttr(c, "name") == p.opts.MarkerName {
			return NewMarker(c, p.opts.MarkerValueAttr)
		}
	}
	return nil
}

// mustMarker enforces the environment precondition that exactly one marker
// exists. Absence is a host-page structure violation, not a recoverable
// error.
func mustMarker(p MarkerProvider, name string) *Marker {
	m := p.Marker()
	if m == nil {
		panic("nav: selection marker " + name + " not found in document head")
	}
	return m
}
