package nav

import "strings"

// Controller orchestrates marker reads and writes around the reconciler. It
// is the only mutating entry point offered to outside code; the passive read
// paths exist for load hooks and the head observer.
type Controller struct {
	doc     *Document
	rec     *Reconciler
	markers MarkerProvider
	opts    Options
}

// NewController wires a controller over doc with the document's own marker
// lookup.
func NewController(doc *Document, opts Options) (*Controller, error) {
	opts = opts.WithDefaults()
	rec, err := NewReconciler(doc, opts)
	if err != nil {
		return nil, err
	}
	return &Controller{
		doc:     doc,
		rec:     rec,
		markers: doc.Markers(opts),
		opts:    opts,
	}, nil
}

// SetMarkerProvider swaps the marker lookup, for callers that fabricate
// markers outside the document head.
func (c *Controller) SetMarkerProvider(p MarkerProvider) {
	if p != nil {
		c.markers = p
	}
}

// Reconciler exposes the underlying reconciler for inspection surfaces.
func (c *Controller) Reconciler() *Reconciler { return c.rec }

// ReadAndApply reads m's value and reconciles against it. An empty or absent
// value is nothing to do and returns false; otherwise the pass runs and
// returns true.
func (c *Controller) ReadAndApply(m *Marker) bool {
	tag := m.Value()
	if tag == "" {
		return false
	}
	c.rec.Apply(tag)
	return true
}

// ReadAndApplyTrusted is the load-hook and observer path: the marker is
// trusted to be well-formed, and an empty value stays a silent no-op. The
// asymmetry with SelectLink (empty is fine here, unmatched is a hard error
// there) is deliberate.
func (c *Controller) ReadAndApplyTrusted(m *Marker) {
	tag := m.Value()
	if tag == "" {
		return
	}
	c.rec.Apply(tag)
}

// SelectLink makes tag the current selection: validate, snapshot the marker,
// write speculatively, reconcile, then commit or roll back. On failure the
// marker returns to its prior value (when it had one) while item visual
// state keeps the failed pass's result, which renders as nothing selected.
func (c *Controller) SelectLink(tag string) error {
	if strings.Contains(tag, " ") {
		return &InvalidTagError{Tag: tag}
	}

	marker := mustMarker(c.markers, c.opts.MarkerName)
	originalTag := marker.Value()

	marker.SetValue(tag)
	// Failure is only detectable after the pass has already recomputed
	// every item, so the side effects land on both outcomes.
	if c.rec.Apply(tag) == 0 {
		restored := ""
		if originalTag != "" {
			marker.SetValue(originalTag)
			restored = originalTag
		}
		return &NoMatchingTabError{Tag: tag, Restored: restored}
	}
	return nil
}
