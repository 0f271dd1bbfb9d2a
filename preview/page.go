package preview

import (
	"fmt"
	"html"
	"strings"

	"github.com/teranos/widgetgen/widget"
)

// Page renders the layout as a standalone HTML document.
func (r *Renderer) Page(title string, elements []widget.Element) string {
	return WrapPage(title, r.Render(elements), "")
}

// WrapPage embeds a rendered preview body in an HTML document. Script, when
// not empty, is placed in a trailing <script> element as-is.
func WrapPage(title, body, script string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	sb.WriteString(`<meta charset="utf-8">` + "\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", html.EscapeString(title))
	sb.WriteString("<style>body{margin:16px;background:#2b2b2b;color:#ddd;font-family:sans-serif}.widget{box-sizing:border-box;white-space:pre;overflow:hidden}</style>\n")
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(`<div id="preview">` + "\n")
	sb.WriteString(body)
	sb.WriteString("</div>\n")
	if script != "" {
		sb.WriteString("<script>\n")
		sb.WriteString(script)
		sb.WriteString("\n</script>\n")
	}
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}
