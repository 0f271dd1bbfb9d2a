package preview

import (
	"sort"

	"github.com/teranos/widgetgen/widget"
)

// Rect is a pixel-space rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// ProjectElement converts el's cell geometry into pixels relative to the
// bounds origin.
func ProjectElement(el widget.Element, b Bounds) Rect {
	return Rect{
		X:      (el.X - b.MinX) * CellWidth,
		Y:      (el.Y - b.MinY) * CellHeight,
		Width:  el.Width * CellWidth,
		Height: el.Height * CellHeight,
	}
}

// Placed is a visible element with its pixel rectangle and stacking index.
type Placed struct {
	Element widget.Element
	Rect    Rect
	// Z starts at 1; higher values draw above lower ones.
	Z int
}

// Project places every visible element, ordered bottom to top.
//
// Stacking follows the creation counter in the element id, so later-created
// widgets cover earlier ones regardless of slice order. Ties keep slice order.
// Ids without a counter (rejected by Layout.Validate) stack as counter 0.
func Project(elements []widget.Element, b Bounds) []Placed {
	placed := make([]Placed, 0, len(elements))
	for _, el := range elements {
		if !el.IsVisible() {
			continue
		}
		placed = append(placed, Placed{Element: el, Rect: ProjectElement(el, b)})
	}

	sort.SliceStable(placed, func(i, j int) bool {
		return sequence(placed[i].Element) < sequence(placed[j].Element)
	})
	for i := range placed {
		placed[i].Z = i + 1
	}
	return placed
}

func sequence(el widget.Element) int {
	n, _ := widget.Sequence(el.ID)
	return n
}
