package export

import (
	"strings"

	"github.com/teranos/widgetgen/widget"
)

// Identifier derives the Lua variable name for an element.
//
// The display name is reduced to ASCII letters and digits, prefixed with '_'
// when it starts with a digit, and lowercased. When nothing survives, the name
// falls back to the kind followed by the id's numeric suffix ("textBox3"),
// filtered the same way but not lowercased.
//
// Identifiers are not deduplicated: two elements whose names normalize the
// same share an identifier.
func Identifier(el widget.Element) string {
	if name := alnum(el.Name); name != "" {
		return strings.ToLower(leadingDigit(name))
	}

	fallback := alnum(string(el.Kind) + widget.IDSuffix(el.ID))
	if fallback == "" {
		return "_"
	}
	return leadingDigit(fallback)
}

// alnum keeps only ASCII letters and digits.
func alnum(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if c := s[i]; isASCIIAlnum(c) {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func leadingDigit(s string) string {
	if s[0] >= '0' && s[0] <= '9' {
		return "_" + s
	}
	return s
}

func isASCIIAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
