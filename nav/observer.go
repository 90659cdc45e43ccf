package nav

import (
	"strings"

	"golang.org/x/net/html"
)

// qualifiesAsMarker decides whether an inserted head node is a replacement
// selection marker. Non-elements and other element types are skipped.
func qualifiesAsMarker(n *html.Node, opts Options) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	if !strings.EqualFold(n.Data, opts.MarkerElement) {
		return false
	}
	return GetAttr(n, "name") == opts.MarkerName
}

// WatchHead subscribes the controller to head insertions on its document.
// Host-page asynchronous navigations replace the marker wholesale rather
// than editing it in place; every qualifying insertion triggers one
// reconciliation pass against the new marker. No debouncing: redundant
// passes are harmless because Apply is idempotent.
func (c *Controller) WatchHead() {
	c.doc.ObserveHead(func(n *html.Node) {
		if !qualifiesAsMarker(n, c.opts) {
			return
		}
		c.ReadAndApplyTrusted(NewMarker(n, c.opts.MarkerValueAttr))
	})
}
