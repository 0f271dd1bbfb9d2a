// Package widget defines the visual element model produced by the layout
// designer: a closed set of widget kinds, the per-kind property variants, and
// the ordered layout that the exporter and the preview read from.
//
// Elements are read-only to every consumer in this module. The designer owns
// creation and mutation; widgetgen only takes snapshots.
package widget

// Kind identifies the widget type of an element.
type Kind string

// Known widget kinds. The set is closed: anything else is carried through
// verbatim and treated as geometry-only.
const (
	KindButton       Kind = "button"
	KindLabel        Kind = "label"
	KindTextBox      Kind = "textBox"
	KindCheckBox     Kind = "checkBox"
	KindRadioButton  Kind = "radioButton"
	KindToggleSwitch Kind = "toggleSwitch"
	KindSlider       Kind = "slider"
	KindProgressBar  Kind = "progressBar"
	KindContainer    Kind = "container"
	KindListView     Kind = "listView"
)

// Kinds lists every known kind in palette order.
var Kinds = []Kind{
	KindButton,
	KindLabel,
	KindTextBox,
	KindCheckBox,
	KindRadioButton,
	KindToggleSwitch,
	KindSlider,
	KindProgressBar,
	KindContainer,
	KindListView,
}

// Known reports whether k is one of the kinds listed in Kinds.
func (k Kind) Known() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}
