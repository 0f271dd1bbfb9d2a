package widget

import (
	"github.com/teranos/widgetgen/errors"
)

// Layout is a snapshot of the designer's element collection.
// Element order is insertion order and is preserved by every consumer.
type Layout struct {
	// Version is the schema version the document declared, if any.
	Version  string
	Elements []Element
}

// Len returns the number of elements.
func (l *Layout) Len() int {
	return len(l.Elements)
}

// Find returns the element with the given id.
func (l *Layout) Find(id string) (Element, bool) {
	for _, el := range l.Elements {
		if el.ID == id {
			return el, true
		}
	}
	return Element{}, false
}

// Validate checks the element invariants the exporter and the preview rely on:
// ids are unique and carry a numeric creation counter, extents are non-negative.
func (l *Layout) Validate() error {
	seen := make(map[string]bool, len(l.Elements))
	for i, el := range l.Elements {
		if el.ID == "" {
			return errors.InvalidLayoutf("element %d has no id", i)
		}
		if seen[el.ID] {
			return errors.InvalidLayoutf("duplicate element id %q", el.ID)
		}
		seen[el.ID] = true

		if _, ok := Sequence(el.ID); !ok {
			return errors.WithHint(
				errors.InvalidLayoutf("element id %q has no numeric suffix", el.ID),
				"designer ids have the form <type>_<n>, e.g. button_3")
		}
		if el.Width < 0 || el.Height < 0 {
			return errors.InvalidLayoutf("element %q has negative size %dx%d", el.ID, el.Width, el.Height)
		}
	}
	return nil
}
