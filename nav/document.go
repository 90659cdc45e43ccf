package nav

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// Document owns a parsed HTML tree and delivers head child-list insertions to
// registered observers. All methods are synchronous; a Document is not safe
// for concurrent use and is expected to be owned by a single request or
// session.
type Document struct {
	root *html.Node

	onHeadInsert []func(*html.Node)
}

// Parse reads and parses an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("nav: parse document: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseBytes parses an in-memory HTML document.
func ParseBytes(body []byte) (*Document, error) {
	return Parse(bytes.NewReader(body))
}

// Root returns the document root node.
func (d *Document) Root() *html.Node { return d.root }

// Head returns the head element, or nil when the document has none.
func (d *Document) Head() *html.Node {
	return findElement(d.root, "head")
}

// Render serializes the document.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("nav: render document: %w", err)
	}
	return nil
}

// Bytes serializes the document into a fresh buffer.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ObserveHead registers fn to run for every node inserted into the head via
// this Document. Registration order is delivery order; there is no teardown
// because observers live exactly as long as the Document.
func (d *Document) ObserveHead(fn func(*html.Node)) {
	d.onHeadInsert = append(d.onHeadInsert, fn)
}

// InsertIntoHead appends n to the head and notifies head observers. It is
// the document-side half of the host page replacing head elements wholesale
// during asynchronous navigations.
func (d *Document) InsertIntoHead(n *html.Node) {
	head := d.Head()
	if head == nil {
		panic("nav: document has no head")
	}
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	head.AppendChild(n)
	for _, fn := range d.onHeadInsert {
		fn(n)
	}
}

// RemoveFromHead detaches n from the head. Removals are not observed; only
// insertions re-trigger reconciliation.
func (d *Document) RemoveFromHead(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}
