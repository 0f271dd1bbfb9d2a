package widget

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/teranos/widgetgen/errors"
	"github.com/teranos/widgetgen/logger"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is the layout document version written by the current designer.
const SchemaVersion = "1.0.0"

// supportedVersions is the range of document versions Load accepts.
const supportedVersions = ">= 1.0.0, < 2.0.0"

// Format is a layout document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the document format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.WithHint(
			errors.Wrapf(errors.ErrUnsupportedFormat, "%s", path),
			"layout files must end in .json, .yaml, .yml or .toml")
	}
}

// document is the on-disk layout shape. Elements use the designer's flat
// attribute form; Decode converts each into its kind's Props variant.
type document struct {
	Version  string       `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	Elements []rawElement `json:"elements" yaml:"elements" toml:"elements"`
}

type rawElement struct {
	ID      string `json:"id" yaml:"id" toml:"id"`
	Type    string `json:"type" yaml:"type" toml:"type"`
	Name    string `json:"name" yaml:"name" toml:"name"`
	X       int    `json:"x" yaml:"x" toml:"x"`
	Y       int    `json:"y" yaml:"y" toml:"y"`
	Width   int    `json:"width" yaml:"width" toml:"width"`
	Height  int    `json:"height" yaml:"height" toml:"height"`
	Visible *bool  `json:"visible,omitempty" yaml:"visible,omitempty" toml:"visible,omitempty"`

	Text          string   `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
	Placeholder   string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty" toml:"placeholder,omitempty"`
	Color         string   `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	Background    string   `json:"background,omitempty" yaml:"background,omitempty" toml:"background,omitempty"`
	Align         string   `json:"align,omitempty" yaml:"align,omitempty" toml:"align,omitempty"`
	Group         string   `json:"group,omitempty" yaml:"group,omitempty" toml:"group,omitempty"`
	BorderColor   string   `json:"borderColor,omitempty" yaml:"borderColor,omitempty" toml:"borderColor,omitempty"`
	TrackColor    string   `json:"trackColor,omitempty" yaml:"trackColor,omitempty" toml:"trackColor,omitempty"`
	FillColor     string   `json:"fillColor,omitempty" yaml:"fillColor,omitempty" toml:"fillColor,omitempty"`
	KnobColor     string   `json:"knobColor,omitempty" yaml:"knobColor,omitempty" toml:"knobColor,omitempty"`
	SelectedColor string   `json:"selectedColor,omitempty" yaml:"selectedColor,omitempty" toml:"selectedColor,omitempty"`
	Border        *bool    `json:"border,omitempty" yaml:"border,omitempty" toml:"border,omitempty"`
	Enabled       *bool    `json:"enabled,omitempty" yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	ReadOnly      *bool    `json:"readOnly,omitempty" yaml:"readOnly,omitempty" toml:"readOnly,omitempty"`
	Checked       *bool    `json:"checked,omitempty" yaml:"checked,omitempty" toml:"checked,omitempty"`
	IsScrollable  *bool    `json:"isScrollable,omitempty" yaml:"isScrollable,omitempty" toml:"isScrollable,omitempty"`
	MaxLength     *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty" toml:"maxLength,omitempty"`
	Selected      *int     `json:"selected,omitempty" yaml:"selected,omitempty" toml:"selected,omitempty"`
	Value         *float64 `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Min           *float64 `json:"min,omitempty" yaml:"min,omitempty" toml:"min,omitempty"`
	Max           *float64 `json:"max,omitempty" yaml:"max,omitempty" toml:"max,omitempty"`
	Step          *float64 `json:"step,omitempty" yaml:"step,omitempty" toml:"step,omitempty"`
	Progress      *float64 `json:"progress,omitempty" yaml:"progress,omitempty" toml:"progress,omitempty"`
	Items         []string `json:"items,omitempty" yaml:"items,omitempty" toml:"items,omitempty"`
}

// Load reads, decodes and validates the layout document at path.
func Load(path string) (*Layout, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open layout %s", path)
	}
	defer f.Close()

	layout, err := Decode(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load layout %s", path)
	}
	if err := layout.Validate(); err != nil {
		return nil, errors.Wrapf(err, "layout %s", path)
	}
	for _, el := range layout.Elements {
		if !el.Kind.Known() {
			logger.Warnw("Unknown widget kind, only geometry is exported",
				logger.FieldLayout, path,
				"id", el.ID,
				"kind", el.Kind)
		}
	}
	return layout, nil
}

// Decode parses a layout document from r. It checks the declared version but
// does not validate element invariants; call Layout.Validate for that.
func Decode(r io.Reader, format Format) (*Layout, error) {
	var doc document

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "failed to decode JSON layout")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "failed to decode YAML layout")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode TOML layout")
		}
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "%q", format)
	}

	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}

	layout := &Layout{
		Version:  doc.Version,
		Elements: make([]Element, 0, len(doc.Elements)),
	}
	for _, raw := range doc.Elements {
		layout.Elements = append(layout.Elements, raw.element())
	}
	return layout, nil
}

// checkVersion rejects documents declaring a version outside supportedVersions.
// Documents without a version are accepted as current.
func checkVersion(v string) error {
	if v == "" {
		return nil
	}

	version, err := semver.NewVersion(v)
	if err != nil {
		return errors.Wrapf(errors.ErrIncompatibleLayout, "version %q is not a semantic version", v)
	}

	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return errors.Wrap(err, "invalid supported version range")
	}

	if !constraint.Check(version) {
		return errors.WithHintf(
			errors.Wrapf(errors.ErrIncompatibleLayout, "version %s", v),
			"this build reads layout versions %s (current %s)", supportedVersions, SchemaVersion)
	}
	return nil
}

// element converts the flat designer form into an Element with the Props
// variant for its kind. Attributes the kind does not use are dropped.
func (r rawElement) element() Element {
	el := Element{
		ID:      r.ID,
		Kind:    Kind(r.Type),
		Name:    r.Name,
		X:       r.X,
		Y:       r.Y,
		Width:   r.Width,
		Height:  r.Height,
		Visible: r.Visible,
	}

	switch el.Kind {
	case KindButton:
		el.Props = &Button{Text: r.Text, Background: r.Background, Color: r.Color, Border: r.Border, Enabled: r.Enabled}
	case KindLabel:
		el.Props = &Label{Text: r.Text, Color: r.Color, Align: r.Align}
	case KindTextBox:
		el.Props = &TextBox{
			Text:        r.Text,
			Placeholder: r.Placeholder,
			Background:  r.Background,
			Color:       r.Color,
			Border:      r.Border,
			ReadOnly:    isTrue(r.ReadOnly),
			MaxLength:   intOrZero(r.MaxLength),
		}
	case KindCheckBox:
		el.Props = &CheckBox{Text: r.Text, Color: r.Color, Checked: isTrue(r.Checked)}
	case KindRadioButton:
		el.Props = &RadioButton{Text: r.Text, Color: r.Color, Checked: isTrue(r.Checked), Group: r.Group}
	case KindToggleSwitch:
		el.Props = &ToggleSwitch{Text: r.Text, Color: r.Color, Checked: isTrue(r.Checked)}
	case KindSlider:
		el.Props = &Slider{
			Value:      r.Value,
			Min:        r.Min,
			Max:        r.Max,
			Step:       r.Step,
			TrackColor: r.TrackColor,
			FillColor:  r.FillColor,
			KnobColor:  r.KnobColor,
		}
	case KindProgressBar:
		el.Props = &ProgressBar{Progress: r.Progress, Text: r.Text, Color: r.Color, Background: r.Background}
	case KindContainer:
		el.Props = &Container{
			Background:   r.Background,
			Border:       r.Border,
			BorderColor:  r.BorderColor,
			IsScrollable: isTrue(r.IsScrollable),
		}
	case KindListView:
		el.Props = &ListView{
			Items:         r.Items,
			Selected:      r.Selected,
			Color:         r.Color,
			Background:    r.Background,
			SelectedColor: r.SelectedColor,
		}
	}

	return el
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

func intOrZero(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
