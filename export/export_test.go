package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/widgetgen/errors"
	"github.com/teranos/widgetgen/internal/util"
	"github.com/teranos/widgetgen/preview"
	"github.com/teranos/widgetgen/widget"
)

func okButton() widget.Element {
	return widget.Element{
		ID: "button_1", Kind: widget.KindButton, Name: "OK Btn",
		X: 2, Y: 3, Width: 8, Height: 1,
		Props: &widget.Button{Text: "OK", Background: "blue"},
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name string
		el   widget.Element
		want string
	}{
		{"spaces stripped and lowercased", widget.Element{ID: "button_1", Kind: widget.KindButton, Name: "OK Btn"}, "okbtn"},
		{"punctuation stripped", widget.Element{ID: "label_2", Kind: widget.KindLabel, Name: "Hello, World!"}, "helloworld"},
		{"leading digit prefixed", widget.Element{ID: "label_3", Kind: widget.KindLabel, Name: "1st place"}, "_1stplace"},
		{"non-ascii dropped", widget.Element{ID: "label_4", Kind: widget.KindLabel, Name: "Größe"}, "gre"},
		{"empty name falls back", widget.Element{ID: "textBox_3", Kind: widget.KindTextBox}, "textBox3"},
		{"symbols only falls back", widget.Element{ID: "slider_12", Kind: widget.KindSlider, Name: "-- ??"}, "slider12"},
		{"fallback without suffix", widget.Element{ID: "button", Kind: widget.KindButton}, "button"},
		{"odd kind fallback filtered", widget.Element{ID: "date-picker_1", Kind: "date-picker"}, "datepicker1"},
		{"fallback with nothing left", widget.Element{ID: "", Kind: "--"}, "_"},
		{"underscore is stripped", widget.Element{ID: "button_5", Kind: widget.KindButton, Name: "save_btn"}, "savebtn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Identifier(tt.el))
		})
	}
}

func TestIdentifierIsStable(t *testing.T) {
	el := okButton()
	first := Identifier(el)
	assert.Equal(t, first, Identifier(el))

	// Renaming to the derived identifier is a fixed point
	el.Name = first
	assert.Equal(t, first, Identifier(el))
}

func TestIdentifierCollisionsAreKept(t *testing.T) {
	a := widget.Element{ID: "button_1", Kind: widget.KindButton, Name: "Go!"}
	b := widget.Element{ID: "button_2", Kind: widget.KindButton, Name: "go"}
	assert.Equal(t, Identifier(a), Identifier(b))
}

func keys(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Key
	}
	return out
}

func TestProjectFields(t *testing.T) {
	geometry := []string{"x", "y", "width", "height"}
	with := func(extra ...string) []string { return append(append([]string{}, geometry...), extra...) }

	tests := []struct {
		name  string
		props widget.Props
		want  []string
	}{
		{"button all set", &widget.Button{Text: "a", Background: "b", Color: "c", Border: util.Ptr(true), Enabled: util.Ptr(false)},
			with("text", "background", "color", "border", "enabled")},
		{"button empty", &widget.Button{}, with()},
		{"label left align omitted", &widget.Label{Text: "t", Align: "left"}, with("text")},
		{"label center align", &widget.Label{Text: "t", Color: "red", Align: "center"}, with("text", "color", "align")},
		{"textBox flags", &widget.TextBox{Placeholder: "p", Border: util.Ptr(false), ReadOnly: true, MaxLength: 10},
			with("placeholder", "border", "readOnly", "maxLength")},
		{"textBox falsy flags", &widget.TextBox{ReadOnly: false, MaxLength: 0}, with()},
		{"checkBox unchecked", &widget.CheckBox{Text: "t", Checked: false}, with("text")},
		{"checkBox checked", &widget.CheckBox{Text: "t", Checked: true}, with("text", "checked")},
		{"radio", &widget.RadioButton{Text: "t", Checked: true, Group: "g"}, with("text", "checked", "group")},
		{"toggle", &widget.ToggleSwitch{Color: "lime", Checked: true}, with("color", "checked")},
		{"slider zero values are emitted", &widget.Slider{Value: util.Ptr(0.0), Min: util.Ptr(0.0), Max: util.Ptr(100.0), Step: util.Ptr(1.0), KnobColor: "white"},
			with("value", "min", "max", "step", "knobColor")},
		{"slider colours", &widget.Slider{TrackColor: "gray", FillColor: "blue"}, with("trackColor", "fillColor")},
		{"progressBar", &widget.ProgressBar{Progress: util.Ptr(0.0), Text: "t", Color: "c", Background: "b"},
			with("progress", "text", "color", "background")},
		{"container", &widget.Container{Background: "b", Border: util.Ptr(true), BorderColor: "c", IsScrollable: true},
			with("background", "border", "borderColor", "isScrollable")},
		{"container not scrollable", &widget.Container{IsScrollable: false}, with()},
		{"listView", &widget.ListView{Items: []string{"a"}, Selected: util.Ptr(0), Color: "c", Background: "b", SelectedColor: "s"},
			with("items", "selected", "color", "background", "selectedColor")},
		{"listView empty items", &widget.ListView{Items: []string{}}, with()},
		{"unknown kind", nil, with()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := widget.Element{ID: "x_1", Kind: "x", X: 1, Y: 2, Width: 3, Height: 4, Props: tt.props}
			assert.Equal(t, tt.want, keys(ProjectFields(el)))
		})
	}
}

func TestProjectFieldsGeometryValues(t *testing.T) {
	fields := ProjectFields(okButton())
	require.Len(t, fields, 6)
	assert.Equal(t, Field{Key: "x", Value: 2}, fields[0])
	assert.Equal(t, Field{Key: "y", Value: 3}, fields[1])
	assert.Equal(t, Field{Key: "width", Value: 8}, fields[2])
	assert.Equal(t, Field{Key: "height", Value: 1}, fields[3])
	assert.Equal(t, Field{Key: "text", Value: "OK"}, fields[4])
	assert.Equal(t, Field{Key: "background", Value: "blue"}, fields[5])
}

func TestBorderFalseIsEmitted(t *testing.T) {
	el := widget.Element{ID: "button_1", Kind: widget.KindButton, Name: "b",
		Props: &widget.Button{Border: util.Ptr(false)}}
	assert.Contains(t, Fragment(el, RootParent), "    border = false,\n")
}

func TestCheckedRule(t *testing.T) {
	el := widget.Element{ID: "checkBox_1", Kind: widget.KindCheckBox, Name: "agree",
		Props: &widget.CheckBox{Checked: false}}
	assert.NotContains(t, Fragment(el, RootParent), "checked")

	el.Props = &widget.CheckBox{Checked: true}
	assert.Contains(t, Fragment(el, RootParent), "    checked = true,\n")
}

func TestFragment(t *testing.T) {
	want := `local okbtn = ui.button({
    x = 2,
    y = 3,
    width = 8,
    height = 1,
    text = "OK",
    background = "blue",
})
`
	assert.Equal(t, want, Fragment(okButton(), RootParent))
	assert.Equal(t, want, Fragment(okButton(), ""))
	assert.Equal(t, want+"panel:addChild(okbtn)\n", Fragment(okButton(), "panel"))
}

func TestFragmentValues(t *testing.T) {
	el := widget.Element{
		ID: "listView_4", Kind: widget.KindListView, Name: "Menu",
		Props: &widget.ListView{Items: []string{"One", `Say "hi"`}, Selected: util.Ptr(1)},
	}
	got := Fragment(el, RootParent)
	assert.Contains(t, got, `    items = { "One", "Say \"hi\"" },`+"\n")
	assert.Contains(t, got, "    selected = 1,\n")

	slider := widget.Element{
		ID: "slider_2", Kind: widget.KindSlider, Name: "Volume",
		Props: &widget.Slider{Value: util.Ptr(0.5), Max: util.Ptr(10.0)},
	}
	got = Fragment(slider, RootParent)
	assert.Contains(t, got, "    value = 0.5,\n")
	assert.Contains(t, got, "    max = 10,\n")
}

func TestFragmentOddKind(t *testing.T) {
	el := widget.Element{ID: "date-picker_1", Kind: "date-picker", X: 1}
	got := Fragment(el, RootParent)
	assert.True(t, strings.HasPrefix(got, `local datepicker1 = ui["date-picker"]({`), got)
}

func TestHiddenElementsAreGenerated(t *testing.T) {
	hidden := widget.Element{
		ID: "label_2", Kind: widget.KindLabel, Name: "Secret",
		X: 1, Y: 1, Width: 6, Height: 1,
		Visible: util.Ptr(false),
		Props:   &widget.Label{Text: "hidden"},
	}
	elements := []widget.Element{okButton(), hidden}

	for _, shape := range Shapes {
		t.Run(shape.String(), func(t *testing.T) {
			out := Generate(elements, shape)
			assert.Contains(t, out, "local okbtn = ")
			assert.Contains(t, out, "local secret = ")
		})
	}

	placed := preview.Project(elements, preview.ComputeBounds(elements))
	require.Len(t, placed, 1)
	assert.Equal(t, "button_1", placed[0].Element.ID)
}

func TestGenerateEmpty(t *testing.T) {
	for _, shape := range append(Shapes, Shape("other")) {
		assert.Equal(t, EmptyLayoutText, Generate(nil, shape), shape)
		assert.Equal(t, EmptyLayoutText, Generate([]widget.Element{}, shape), shape)
	}
	assert.Equal(t, "-- No widgets to export\n", EmptyLayoutText)
}

func TestGenerateWidgets(t *testing.T) {
	label := widget.Element{ID: "label_2", Kind: widget.KindLabel, Name: "Title",
		X: 1, Y: 1, Width: 5, Height: 1, Props: &widget.Label{Text: "Menu"}}

	want := widgetsHeader + Fragment(okButton(), RootParent) + "\n" + Fragment(label, RootParent)
	got := Generate([]widget.Element{okButton(), label}, ShapeWidgets)
	assert.Equal(t, want, got)

	assert.Contains(t, got, "local okbtn = ui.button({\n    x = 2,\n    y = 3,\n    width = 8,\n    height = 1,\n    text = \"OK\",\n    background = \"blue\",\n})\n")
	assert.NotContains(t, got, "border")
	assert.NotContains(t, got, "color")
	assert.NotContains(t, got, "enabled")
	assert.NotContains(t, got, "addChild")
}

func TestGenerateFull(t *testing.T) {
	got := Generate([]widget.Element{okButton()}, ShapeFull)

	assert.True(t, strings.HasPrefix(got, fullPrologue), "full program starts with the bootstrap")
	assert.True(t, strings.HasSuffix(got, fullEpilogue), "full program ends with the event loop")
	assert.Contains(t, got, `local ui = require("ui")`)
	assert.Contains(t, got, "local root = ui.container({")
	assert.Contains(t, got, "\nlocal okbtn = ui.button({\n")
	assert.Contains(t, got, "root:show()")
	assert.Contains(t, got, "os.pullEvent()")
	assert.Contains(t, got, "ui.cleanup()")
	assert.NotContains(t, got, "root:addChild")

	// Unknown shapes fall back to the full program
	assert.Equal(t, got, Generate([]widget.Element{okButton()}, Shape("bogus")))
}

func TestGenerateFunction(t *testing.T) {
	label := widget.Element{ID: "label_2", Kind: widget.KindLabel, Name: "",
		X: 1, Y: 1, Width: 5, Height: 1, Props: &widget.Label{Text: "Menu"}}

	got := Generate([]widget.Element{okButton(), label}, ShapeFunction)

	want := `local function createWidgets(container)
    local widgets = {}

    local okbtn = ui.button({
        x = 2,
        y = 3,
        width = 8,
        height = 1,
        text = "OK",
        background = "blue",
    })
    container:addChild(okbtn)
    widgets.okbtn = okbtn

    local label2 = ui.label({
        x = 1,
        y = 1,
        width = 5,
        height = 1,
        text = "Menu",
    })
    container:addChild(label2)
    widgets.label2 = label2

    return widgets
end

-- Usage:
-- local widgets = createWidgets(root)
`
	assert.Equal(t, want, got)
	assert.Equal(t, 2, strings.Count(got, "    widgets."))
}

func TestGenerateIsDeterministic(t *testing.T) {
	elements := []widget.Element{
		okButton(),
		{ID: "slider_2", Kind: widget.KindSlider, Name: "Vol", Props: &widget.Slider{Value: util.Ptr(3.0)}},
		{ID: "listView_3", Kind: widget.KindListView, Props: &widget.ListView{Items: []string{"a", "b"}}},
	}
	for _, shape := range Shapes {
		assert.Equal(t, Generate(elements, shape), Generate(elements, shape), shape)
	}
}

func TestGenerateDoesNotMutate(t *testing.T) {
	elements := []widget.Element{okButton()}
	before := elements[0]
	before.Props = &widget.Button{Text: "OK", Background: "blue"}

	Generate(elements, ShapeFunction)
	assert.Equal(t, before, elements[0])
}

func TestLuaString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", `"plain"`},
		{`quote " here`, `"quote \" here"`},
		{`back\slash`, `"back\\slash"`},
		{"line\nbreak\ttab\rcr", `"line\nbreak\ttab\rcr"`},
		{"bell\a", `"bell\007"`},
		{"ünï", `"ünï"`},
		{"", `""`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, luaString(tt.in), tt.in)
	}
}

func TestLuaValue(t *testing.T) {
	assert.Equal(t, "true", luaValue(true))
	assert.Equal(t, "-4", luaValue(-4))
	assert.Equal(t, "0.25", luaValue(0.25))
	assert.Equal(t, "100", luaValue(100.0))
	assert.Equal(t, `{ "a", "b" }`, luaValue([]string{"a", "b"}))
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in      string
		want    Shape
		wantErr bool
	}{
		{"", ShapeFull, false},
		{"full", ShapeFull, false},
		{"widgets", ShapeWidgets, false},
		{" Function ", ShapeFunction, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseShape(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			assert.True(t, errors.Is(err, errors.ErrUnknownShape))
			assert.Contains(t, errors.FlattenHints(err), "full, widgets, function")
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestFilename(t *testing.T) {
	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	assert.Equal(t, "widgets_full_20260304-050607.lua", Filename("", ShapeFull, ts))
	assert.Equal(t, "menu_function_20260304-050607.lua", Filename("menu", ShapeFunction, ts))
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	path, err := Write(dir, "ui", ShapeWidgets, []widget.Element{okButton()}, ts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ui_widgets_20260304-050607.lua"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Generate([]widget.Element{okButton()}, ShapeWidgets), string(data))
	assert.NotContains(t, string(data), "2026")
}

func TestWriteSameSecondKeepsBoth(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	first, err := Write(dir, "ui", ShapeFull, []widget.Element{okButton()}, ts)
	require.NoError(t, err)
	second, err := Write(dir, "ui", ShapeFull, nil, ts)
	require.NoError(t, err)
	third, err := Write(dir, "ui", ShapeFull, nil, ts)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "ui_full_20260304-050607.lua"), first)
	assert.Equal(t, filepath.Join(dir, "ui_full_20260304-050607-2.lua"), second)
	assert.Equal(t, filepath.Join(dir, "ui_full_20260304-050607-3.lua"), third)

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Contains(t, string(data), "local okbtn = ")
}
