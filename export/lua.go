package export

import (
	"fmt"
	"strconv"
	"strings"
)

// luaValue renders a field value as a Lua literal.
func luaValue(v any) string {
	switch v := v.(type) {
	case string:
		return luaString(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []string:
		quoted := make([]string, len(v))
		for i, item := range v {
			quoted[i] = luaString(item)
		}
		return "{ " + strings.Join(quoted, ", ") + " }"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// luaString quotes s as a double-quoted Lua string. Bytes are copied through
// so UTF-8 text survives; control bytes become decimal escapes.
func luaString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&sb, "\\%03d", c)
			} else {
				sb.WriteByte(c)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// luaConstructor returns the expression that builds a widget of kind k:
// ui.button for plain names, ui["odd-kind"] otherwise.
func luaConstructor(kind string) string {
	if isLuaName(kind) {
		return "ui." + kind
	}
	return "ui[" + luaString(kind) + "]"
}

func isLuaName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' || isASCIIAlnum(c) {
			if i == 0 && c >= '0' && c <= '9' {
				return false
			}
			continue
		}
		return false
	}
	return true
}
