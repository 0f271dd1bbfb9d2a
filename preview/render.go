package preview

import (
	"fmt"
	"html"
	"strings"

	"github.com/teranos/widgetgen/widget"
)

// ColorFunc maps a widget colour name to a CSS colour value. An empty result
// leaves the property unset.
type ColorFunc func(name string) string

// ContentFunc renders the inner text of elements whose kind the Renderer does
// not draw itself.
type ContentFunc func(el widget.Element) string

// Renderer produces the HTML preview of a layout.
type Renderer struct {
	Color   ColorFunc
	Content ContentFunc
	// Background is the colour name of the terminal surface.
	Background string
}

// NewRenderer returns a Renderer using the default palette and content.
func NewRenderer() *Renderer {
	return &Renderer{
		Color:      DefaultColor,
		Content:    DefaultContent,
		Background: "black",
	}
}

// palette is the 16-colour terminal palette keyed by widget colour name.
var palette = map[string]string{
	"white":     "#F0F0F0",
	"orange":    "#F2B233",
	"magenta":   "#E57FD8",
	"lightBlue": "#99B2F2",
	"yellow":    "#DEDE6C",
	"lime":      "#7FCC19",
	"pink":      "#F2B2CC",
	"gray":      "#4C4C4C",
	"lightGray": "#999999",
	"cyan":      "#4C99B2",
	"purple":    "#B266E5",
	"blue":      "#3366CC",
	"brown":     "#7F664C",
	"green":     "#57A64E",
	"red":       "#CC4C4C",
	"black":     "#111111",
}

// DefaultColor resolves palette names and passes anything else through.
func DefaultColor(name string) string {
	if hex, ok := palette[name]; ok {
		return hex
	}
	return name
}

// DefaultContent is the fallback text for kinds without a dedicated drawing.
func DefaultContent(el widget.Element) string {
	switch p := el.Props.(type) {
	case *widget.Slider:
		return sliderTrack(p, el.Width)
	case *widget.Container:
		return ""
	default:
		return string(el.Kind)
	}
}

// sliderTrack draws a one-line track with the knob at the slider value.
func sliderTrack(s *widget.Slider, width int) string {
	if width < 3 {
		return "o"
	}
	lo, hi, v := 0.0, 100.0, 0.0
	if s.Min != nil {
		lo = *s.Min
	}
	if s.Max != nil {
		hi = *s.Max
	}
	if s.Value != nil {
		v = *s.Value
	}

	pos := 0
	if hi > lo {
		frac := (v - lo) / (hi - lo)
		frac = max(0, min(1, frac))
		pos = int(frac * float64(width-1))
	}
	return strings.Repeat("-", pos) + "o" + strings.Repeat("-", width-1-pos)
}

// Render draws the visible elements of the layout inside its bounds.
func (r *Renderer) Render(elements []widget.Element) string {
	bounds := ComputeBounds(elements)
	width, height := bounds.PixelSize()

	var sb strings.Builder
	fmt.Fprintf(&sb, `<div class="widget-preview" style="position:relative;width:%dpx;height:%dpx;%sfont-family:monospace;font-size:%dpx;line-height:%dpx;overflow:hidden">`+"\n",
		width, height, r.colorProp("background", r.Background), CellHeight-2, CellHeight)

	for _, p := range Project(elements, bounds) {
		r.writeElement(&sb, p)
	}

	sb.WriteString("</div>\n")
	return sb.String()
}

func (r *Renderer) writeElement(sb *strings.Builder, p Placed) {
	el := p.Element
	style := fmt.Sprintf("position:absolute;left:%dpx;top:%dpx;width:%dpx;height:%dpx;z-index:%d;",
		p.Rect.X, p.Rect.Y, p.Rect.Width, p.Rect.Height, p.Z)
	style += r.elementStyle(el)

	fmt.Fprintf(sb, `  <div class="widget widget-%s" data-id="%s" style="%s">`,
		html.EscapeString(string(el.Kind)), html.EscapeString(el.ID), style)
	sb.WriteString(r.content(el))
	sb.WriteString("</div>\n")
}

func (r *Renderer) elementStyle(el widget.Element) string {
	switch p := el.Props.(type) {
	case *widget.Button:
		return r.colorProp("background", p.Background) + r.colorProp("color", p.Color) + "text-align:center;"
	case *widget.Label:
		align := p.Align
		if align == "" {
			align = "left"
		}
		return r.colorProp("color", p.Color) + "text-align:" + html.EscapeString(align) + ";"
	case *widget.TextBox:
		return r.colorProp("background", p.Background) + r.colorProp("color", p.Color)
	case *widget.CheckBox:
		return r.colorProp("color", p.Color)
	case *widget.RadioButton:
		return r.colorProp("color", p.Color)
	case *widget.ToggleSwitch:
		return r.colorProp("color", p.Color)
	case *widget.ProgressBar:
		return r.colorProp("background", p.Background) + r.colorProp("color", p.Color)
	case *widget.Container:
		style := r.colorProp("background", p.Background)
		if p.Border != nil && *p.Border {
			borderColor := p.BorderColor
			if borderColor == "" {
				borderColor = "white"
			}
			style += "box-sizing:border-box;border:1px solid " + html.EscapeString(r.resolve(borderColor)) + ";"
		}
		return style
	case *widget.ListView:
		return r.colorProp("background", p.Background) + r.colorProp("color", p.Color)
	case *widget.Slider:
		return r.colorProp("color", p.TrackColor)
	default:
		return ""
	}
}

// content returns the escaped inner HTML of an element.
func (r *Renderer) content(el widget.Element) string {
	esc := html.EscapeString

	switch p := el.Props.(type) {
	case *widget.Button:
		return esc(p.Text)
	case *widget.Label:
		return esc(p.Text)
	case *widget.TextBox:
		if p.Text != "" {
			return esc(p.Text)
		}
		return `<span style="opacity:0.5">` + esc(p.Placeholder) + `</span>`
	case *widget.CheckBox:
		return esc(mark(p.Checked, "[x] ", "[ ] ") + p.Text)
	case *widget.RadioButton:
		return esc(mark(p.Checked, "(*) ", "( ) ") + p.Text)
	case *widget.ToggleSwitch:
		return esc(mark(p.Checked, "[ON] ", "[OFF] ") + p.Text)
	case *widget.ProgressBar:
		return r.progress(p)
	case *widget.ListView:
		return r.listItems(p)
	default:
		if r.Content == nil {
			return ""
		}
		return esc(r.Content(el))
	}
}

func (r *Renderer) progress(p *widget.ProgressBar) string {
	pct := 0.0
	if p.Progress != nil {
		pct = max(0, min(100, *p.Progress))
	}
	fill := r.resolve(p.Color)
	if fill == "" {
		fill = r.resolve("lime")
	}
	if fill == "" {
		fill = "currentColor"
	}
	return fmt.Sprintf(`<div style="width:%g%%;height:100%%;background:%s"></div>`, pct, html.EscapeString(fill)) +
		html.EscapeString(p.Text)
}

func (r *Renderer) listItems(p *widget.ListView) string {
	var sb strings.Builder
	for i, item := range p.Items {
		style := ""
		if p.Selected != nil && *p.Selected == i {
			selected := p.SelectedColor
			if selected == "" {
				selected = "blue"
			}
			style = ` style="` + r.colorProp("background", selected) + `"`
		}
		fmt.Fprintf(&sb, "<div%s>%s</div>", style, html.EscapeString(item))
	}
	return sb.String()
}

// resolve maps a colour name through Color, tolerating a nil ColorFunc.
func (r *Renderer) resolve(name string) string {
	if name == "" || r.Color == nil {
		return ""
	}
	return r.Color(name)
}

func (r *Renderer) colorProp(prop, name string) string {
	value := r.resolve(name)
	if value == "" {
		return ""
	}
	return prop + ":" + html.EscapeString(value) + ";"
}

func mark(on bool, yes, no string) string {
	if on {
		return yes
	}
	return no
}
