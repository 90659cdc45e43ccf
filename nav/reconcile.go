package nav

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Reconciler recomputes every navigation item's visual state from a target
// tag. Items are located by a compiled container-scoped selector; the
// selected class and aria-current are always toggled together.
type Reconciler struct {
	doc   *Document
	items cascadia.SelectorGroup
	opts  Options
}

// NewReconciler compiles the scoped item selector for doc.
func NewReconciler(doc *Document, opts Options) (*Reconciler, error) {
	opts = opts.WithDefaults()
	sel := opts.itemSelector()
	group, err := cascadia.ParseGroup(sel)
	if err != nil {
		return nil, fmt.Errorf("nav: compile item selector %q: %w", sel, err)
	}
	return &Reconciler{doc: doc, items: group, opts: opts}, nil
}

// Items returns every navigation item currently in the container, in
// document order.
func (r *Reconciler) Items() []*html.Node {
	var items []*html.Node
	walkElements(r.doc.Root(), func(n *html.Node) {
		if r.items.Match(n) {
			items = append(items, n)
		}
	})
	return items
}

// Apply sets each item's selected state to whether its tag list contains
// tag, and returns how many items matched. An empty tag clears every item.
// Idempotent: a second pass with the same tag changes nothing.
func (r *Reconciler) Apply(tag string) int {
	matched := 0
	for _, item := range r.Items() {
		selected := MatchesTag(GetAttr(item, r.opts.TagListAttr), tag)
		r.setSelected(item, selected)
		if selected {
			matched++
		}
	}
	return matched
}

// ItemState is a snapshot of one item's visual state. The two selected
// encodings are reported separately so inspection can reveal pages where
// they have drifted apart.
type ItemState struct {
	TagList       string
	SelectedClass bool
	AriaCurrent   bool
}

// States snapshots every item's current visual state in document order.
func (r *Reconciler) States() []ItemState {
	var out []ItemState
	for _, item := range r.Items() {
		out = append(out, ItemState{
			TagList:       GetAttr(item, r.opts.TagListAttr),
			SelectedClass: hasClass(item, r.opts.SelectedClass),
			AriaCurrent:   HasAttr(item, ariaCurrentAttr),
		})
	}
	return out
}

// setSelected applies both halves of the selected state; one is never
// toggled without the other.
func (r *Reconciler) setSelected(item *html.Node, selected bool) {
	if selected {
		addClass(item, r.opts.SelectedClass)
		SetAttr(item, ariaCurrentAttr, ariaCurrentValue)
		return
	}
	removeClass(item, r.opts.SelectedClass)
	RemoveAttr(item, ariaCurrentAttr)
}
