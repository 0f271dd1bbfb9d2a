// Package export turns a widget layout into Lua source for the terminal UI
// framework, in one of three shapes (see Shape).
//
// Generation is a pure function of the element slice and the shape: the same
// input always produces byte-identical text. Elements are emitted in slice
// order and are never modified.
package export

import (
	"fmt"
	"strings"

	"github.com/teranos/widgetgen/widget"
)

// EmptyLayoutText is returned for every shape when there are no elements.
const EmptyLayoutText = "-- No widgets to export\n"

// RootParent is the binding name of the root container in the full program.
// Widgets parented to it need no explicit attach statement.
const RootParent = "root"

// FactoryParam is the container parameter of the factory function shape.
const FactoryParam = "container"

const indentUnit = "    "

// Generate renders elements as Lua source in the given shape. Shapes other
// than widgets and function produce the full program.
func Generate(elements []widget.Element, shape Shape) string {
	if len(elements) == 0 {
		return EmptyLayoutText
	}

	var sb strings.Builder
	switch shape {
	case ShapeWidgets:
		writeWidgets(&sb, elements)
	case ShapeFunction:
		writeFunction(&sb, elements)
	default:
		writeFull(&sb, elements)
	}
	return sb.String()
}

// Fragment renders the declaration of a single element. A parent other than
// RootParent adds a statement attaching the widget to it.
func Fragment(el widget.Element, parent string) string {
	var sb strings.Builder
	writeFragment(&sb, el, parent, "")
	return sb.String()
}

func writeFragment(sb *strings.Builder, el widget.Element, parent, indent string) {
	ident := Identifier(el)

	fmt.Fprintf(sb, "%slocal %s = %s({\n", indent, ident, luaConstructor(string(el.Kind)))
	for _, field := range ProjectFields(el) {
		fmt.Fprintf(sb, "%s%s%s = %s,\n", indent, indentUnit, field.Key, luaValue(field.Value))
	}
	sb.WriteString(indent + "})\n")

	if parent != "" && parent != RootParent {
		fmt.Fprintf(sb, "%s%s:addChild(%s)\n", indent, parent, ident)
	}
}

func writeFull(sb *strings.Builder, elements []widget.Element) {
	sb.WriteString(fullPrologue)
	for _, el := range elements {
		sb.WriteString("\n")
		writeFragment(sb, el, RootParent, "")
	}
	sb.WriteString(fullEpilogue)
}

func writeWidgets(sb *strings.Builder, elements []widget.Element) {
	sb.WriteString(widgetsHeader)
	for i, el := range elements {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeFragment(sb, el, RootParent, "")
	}
}

func writeFunction(sb *strings.Builder, elements []widget.Element) {
	fmt.Fprintf(sb, "local function createWidgets(%s)\n", FactoryParam)
	sb.WriteString(indentUnit + "local widgets = {}\n")
	for _, el := range elements {
		ident := Identifier(el)
		sb.WriteString("\n")
		writeFragment(sb, el, FactoryParam, indentUnit)
		fmt.Fprintf(sb, "%swidgets.%s = %s\n", indentUnit, ident, ident)
	}
	sb.WriteString("\n")
	sb.WriteString(indentUnit + "return widgets\n")
	sb.WriteString("end\n")
	sb.WriteString(functionUsage)
}

const fullPrologue = `-- Generated by widgetgen
-- Widgets declared below attach to the root container

local ui = require("ui")

local termWidth, termHeight = term.getSize()
local root = ui.container({
    x = 1,
    y = 1,
    width = termWidth,
    height = termHeight,
})
`

const fullEpilogue = `
root:show()

while true do
    local event, p1, p2, p3 = os.pullEvent()
    if event == "mouse_click" or event == "mouse_drag" or event == "mouse_up" or event == "mouse_scroll" then
        root:handleMouse(event, p1, p2, p3)
    elseif event == "key" or event == "key_up" or event == "char" then
        if event == "key" and p1 == keys.q then
            break
        end
        root:handleKey(event, p1)
    end
end

ui.cleanup()
`

const widgetsHeader = `-- Widget definitions generated by widgetgen
-- Requires ui and root to be declared by the surrounding program

`

const functionUsage = `
-- Usage:
-- local widgets = createWidgets(root)
`
