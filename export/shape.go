package export

import (
	"strings"

	"github.com/teranos/widgetgen/errors"
)

// Shape selects the form of the generated source.
type Shape string

const (
	// ShapeFull is a runnable program: bootstrap, root container, widgets,
	// event loop and cleanup.
	ShapeFull Shape = "full"
	// ShapeWidgets is the widget declarations alone.
	ShapeWidgets Shape = "widgets"
	// ShapeFunction wraps the declarations in a factory that attaches them to
	// a caller-supplied container and returns them keyed by identifier.
	ShapeFunction Shape = "function"
)

// DefaultShape is used when no shape is requested.
const DefaultShape = ShapeFull

// Shapes lists all shapes in the order the CLI presents them.
var Shapes = []Shape{ShapeFull, ShapeWidgets, ShapeFunction}

// ParseShape maps a user-supplied name to a Shape. The empty string yields
// DefaultShape.
func ParseShape(name string) (Shape, error) {
	switch Shape(strings.ToLower(strings.TrimSpace(name))) {
	case "":
		return DefaultShape, nil
	case ShapeFull:
		return ShapeFull, nil
	case ShapeWidgets:
		return ShapeWidgets, nil
	case ShapeFunction:
		return ShapeFunction, nil
	default:
		return "", errors.WithHint(
			errors.Wrapf(errors.ErrUnknownShape, "%q", name),
			"valid shapes are full, widgets, function")
	}
}

func (s Shape) String() string {
	return string(s)
}
