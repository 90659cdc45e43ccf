package nav

const (
	defaultContainerSelector = ".js-nav-container"
	defaultItemClass         = "js-selected-navigation-item"
	defaultTagListAttr       = "data-selected-links"
	defaultSelectedClass     = "selected"
	defaultMarkerElement     = "meta"
	defaultMarkerName        = "selected-link"
	defaultMarkerValueAttr   = "value"

	ariaCurrentAttr  = "aria-current"
	ariaCurrentValue = "page"
)

// Options names the page hooks the synchronizer operates on. The zero value
// selects the defaults; per-host overrides come from the caller.
type Options struct {
	// ContainerSelector scopes item queries so same-shaped elements
	// elsewhere on the page are never touched.
	ContainerSelector string
	// ItemClass marks a navigation item inside the container.
	ItemClass string
	// TagListAttr holds an item's space-separated tag list.
	TagListAttr string
	// SelectedClass is the visual selected state, kept in lockstep with
	// aria-current.
	SelectedClass string
	// MarkerElement and MarkerName identify the head marker element;
	// MarkerValueAttr carries the authoritative current tag.
	MarkerElement   string
	MarkerName      string
	MarkerValueAttr string
}

// WithDefaults fills every unset field with its default hook.
func (o Options) WithDefaults() Options {
	if o.ContainerSelector == "" {
		o.ContainerSelector = defaultContainerSelector
	}
	if o.ItemClass == "" {
		o.ItemClass = defaultItemClass
	}
	if o.TagListAttr == "" {
		o.TagListAttr = defaultTagListAttr
	}
	if o.SelectedClass == "" {
		o.SelectedClass = defaultSelectedClass
	}
	if o.MarkerElement == "" {
		o.MarkerElement = defaultMarkerElement
	}
	if o.MarkerName == "" {
		o.MarkerName = defaultMarkerName
	}
	if o.MarkerValueAttr == "" {
		o.MarkerValueAttr = defaultMarkerValueAttr
	}
	return o
}

// itemSelector is the scoped query for navigation items.
func (o Options) itemSelector() string {
	return o.ContainerSelector + " ." + o.ItemClass
}
