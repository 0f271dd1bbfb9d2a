// Package preview maps a widget layout from terminal cells to pixel space and
// renders an HTML approximation of it.
//
// ComputeBounds and ProjectElement are pure; the Renderer only adds colour
// lookup and per-kind content on top of them.
package preview

import "github.com/teranos/widgetgen/widget"

// Terminal and cell geometry.
const (
	// DefaultWidth and DefaultHeight are the standard terminal size in cells.
	// Bounds never shrink below them.
	DefaultWidth  = 51
	DefaultHeight = 19

	// Padding is added around the covered area on every side, in cells.
	Padding = 2

	// CellWidth and CellHeight are the pixel size of one terminal cell.
	CellWidth  = 8
	CellHeight = 16
)

// Bounds is the cell-space area the preview shows.
type Bounds struct {
	MinX   int
	MinY   int
	Width  int
	Height int
}

// DefaultBounds is the preview area of an empty layout.
var DefaultBounds = Bounds{MinX: 0, MinY: 0, Width: DefaultWidth, Height: DefaultHeight}

// ComputeBounds returns the smallest rectangle covering every element, grown
// by Padding on each side, at least DefaultWidth x DefaultHeight, with the
// origin clamped to non-negative coordinates.
func ComputeBounds(elements []widget.Element) Bounds {
	if len(elements) == 0 {
		return DefaultBounds
	}

	first := elements[0]
	minX, minY := first.X, first.Y
	maxX, maxY := first.X+first.Width, first.Y+first.Height
	for _, el := range elements[1:] {
		minX = min(minX, el.X)
		minY = min(minY, el.Y)
		maxX = max(maxX, el.X+el.Width)
		maxY = max(maxY, el.Y+el.Height)
	}

	minX -= Padding
	minY -= Padding
	maxX += Padding
	maxY += Padding

	return Bounds{
		MinX:   max(0, minX),
		MinY:   max(0, minY),
		Width:  max(DefaultWidth, maxX-minX),
		Height: max(DefaultHeight, maxY-minY),
	}
}

// PixelSize returns the pixel dimensions of the bounds.
func (b Bounds) PixelSize() (width, height int) {
	return b.Width * CellWidth, b.Height * CellHeight
}
