package widget

import (
	"strconv"
	"strings"
)

// Element is one widget instance placed on the design surface.
//
// Coordinates and extents are in terminal character cells. Props holds the
// kind-specific attributes and is nil for kinds outside the known set.
type Element struct {
	ID      string
	Kind    Kind
	Name    string
	X, Y    int
	Width   int
	Height  int
	Visible *bool // nil means visible
	Props   Props
}

// IsVisible reports whether the element takes part in preview rendering.
// Code generation ignores visibility.
func (e Element) IsVisible() bool {
	return e.Visible == nil || *e.Visible
}

// IDSuffix returns the second '_'-delimited segment of id, or "" when the id
// has no underscore. For designer ids ("button_3") this is the creation
// counter.
func IDSuffix(id string) string {
	parts := strings.Split(id, "_")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// Sequence parses the numeric creation counter out of id.
func Sequence(id string) (int, bool) {
	n, err := strconv.Atoi(IDSuffix(id))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Props is the kind-specific attribute set of an element. Each variant
// carries only the attributes its kind understands.
//
// Attribute representation encodes the inclusion rule used by the exporter:
// strings are omitted when empty, pointer fields are emitted whenever they
// are set, and plain bool/int fields are emitted only when non-zero.
type Props interface {
	Kind() Kind
}

// Button props.
type Button struct {
	Text       string
	Background string
	Color      string
	Border     *bool
	Enabled    *bool
}

// Label props. Align is omitted from exports when "left".
type Label struct {
	Text  string
	Color string
	Align string
}

// TextBox props.
type TextBox struct {
	Text        string
	Placeholder string
	Background  string
	Color       string
	Border      *bool
	ReadOnly    bool
	MaxLength   int
}

// CheckBox props.
type CheckBox struct {
	Text    string
	Color   string
	Checked bool
}

// RadioButton props.
type RadioButton struct {
	Text    string
	Color   string
	Checked bool
	Group   string
}

// ToggleSwitch props.
type ToggleSwitch struct {
	Text    string
	Color   string
	Checked bool
}

// Slider props.
type Slider struct {
	Value      *float64
	Min        *float64
	Max        *float64
	Step       *float64
	TrackColor string
	FillColor  string
	KnobColor  string
}

// ProgressBar props.
type ProgressBar struct {
	Progress   *float64
	Text       string
	Color      string
	Background string
}

// Container props.
type Container struct {
	Background   string
	Border       *bool
	BorderColor  string
	IsScrollable bool
}

// ListView props.
type ListView struct {
	Items         []string
	Selected      *int
	Color         string
	Background    string
	SelectedColor string
}

func (*Button) Kind() Kind       { return KindButton }
func (*Label) Kind() Kind        { return KindLabel }
func (*TextBox) Kind() Kind      { return KindTextBox }
func (*CheckBox) Kind() Kind     { return KindCheckBox }
func (*RadioButton) Kind() Kind  { return KindRadioButton }
func (*ToggleSwitch) Kind() Kind { return KindToggleSwitch }
func (*Slider) Kind() Kind       { return KindSlider }
func (*ProgressBar) Kind() Kind  { return KindProgressBar }
func (*Container) Kind() Kind    { return KindContainer }
func (*ListView) Kind() Kind     { return KindListView }
