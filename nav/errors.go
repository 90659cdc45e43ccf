package nav

import "fmt"

// InvalidTagError reports a tag rejected before any mutation took place.
type InvalidTagError struct {
	Tag string
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("nav: invalid tag %q: tags must not contain spaces", e.Tag)
}

// NoMatchingTabError reports a selection that matched no navigation item.
// The marker has been rolled back to Restored when Restored is non-empty;
// item visual state is left reflecting the failed pass.
type NoMatchingTabError struct {
	Tag      string
	Restored string
}

func (e *NoMatchingTabError) Error() string {
	if e.Restored != "" {
		return fmt.Sprintf("nav: no navigation item matches tag %q (marker restored to %q)", e.Tag, e.Restored)
	}
	return fmt.Sprintf("nav: no navigation item matches tag %q", e.Tag)
}
