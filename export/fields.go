package export

import (
	"github.com/teranos/widgetgen/widget"
)

// Field is one key/value pair of a widget's configuration table.
// Value is a string, bool, int, float64 or []string.
type Field struct {
	Key   string
	Value any
}

// ProjectFields returns the configuration fields for el in emission order:
// x, y, width, height, then the kind's own attributes in a fixed order.
//
// Each attribute has its own inclusion rule. Strings are included when
// non-empty. Border, enabled, numeric slider/progress values and the listView
// selection are included whenever set, so border=false is emitted. Checked,
// readOnly, isScrollable and maxLength are included only when true/non-zero.
// Unknown kinds get geometry only.
func ProjectFields(el widget.Element) []Field {
	f := fieldList{
		{Key: "x", Value: el.X},
		{Key: "y", Value: el.Y},
		{Key: "width", Value: el.Width},
		{Key: "height", Value: el.Height},
	}

	switch p := el.Props.(type) {
	case *widget.Button:
		f.str("text", p.Text)
		f.str("background", p.Background)
		f.str("color", p.Color)
		f.defined("border", p.Border)
		f.defined("enabled", p.Enabled)
	case *widget.Label:
		f.str("text", p.Text)
		f.str("color", p.Color)
		if p.Align != "left" {
			f.str("align", p.Align)
		}
	case *widget.TextBox:
		f.str("text", p.Text)
		f.str("placeholder", p.Placeholder)
		f.str("background", p.Background)
		f.str("color", p.Color)
		f.defined("border", p.Border)
		f.truthy("readOnly", p.ReadOnly)
		f.count("maxLength", p.MaxLength)
	case *widget.CheckBox:
		f.str("text", p.Text)
		f.str("color", p.Color)
		f.truthy("checked", p.Checked)
	case *widget.RadioButton:
		f.str("text", p.Text)
		f.str("color", p.Color)
		f.truthy("checked", p.Checked)
		f.str("group", p.Group)
	case *widget.ToggleSwitch:
		f.str("text", p.Text)
		f.str("color", p.Color)
		f.truthy("checked", p.Checked)
	case *widget.Slider:
		f.number("value", p.Value)
		f.number("min", p.Min)
		f.number("max", p.Max)
		f.number("step", p.Step)
		f.str("trackColor", p.TrackColor)
		f.str("fillColor", p.FillColor)
		f.str("knobColor", p.KnobColor)
	case *widget.ProgressBar:
		f.number("progress", p.Progress)
		f.str("text", p.Text)
		f.str("color", p.Color)
		f.str("background", p.Background)
	case *widget.Container:
		f.str("background", p.Background)
		f.defined("border", p.Border)
		f.str("borderColor", p.BorderColor)
		f.truthy("isScrollable", p.IsScrollable)
	case *widget.ListView:
		f.list("items", p.Items)
		f.index("selected", p.Selected)
		f.str("color", p.Color)
		f.str("background", p.Background)
		f.str("selectedColor", p.SelectedColor)
	default:
		// unknown kind: geometry only
	}

	return f
}

type fieldList []Field

func (f *fieldList) add(key string, value any) {
	*f = append(*f, Field{Key: key, Value: value})
}

func (f *fieldList) str(key, v string) {
	if v != "" {
		f.add(key, v)
	}
}

func (f *fieldList) defined(key string, v *bool) {
	if v != nil {
		f.add(key, *v)
	}
}

func (f *fieldList) truthy(key string, v bool) {
	if v {
		f.add(key, true)
	}
}

func (f *fieldList) number(key string, v *float64) {
	if v != nil {
		f.add(key, *v)
	}
}

func (f *fieldList) index(key string, v *int) {
	if v != nil {
		f.add(key, *v)
	}
}

func (f *fieldList) count(key string, n int) {
	if n != 0 {
		f.add(key, n)
	}
}

func (f *fieldList) list(key string, items []string) {
	if len(items) > 0 {
		f.add(key, items)
	}
}
