package host

import "strings"

// escapeText escapes character data the way the HTML fragment serialization
// algorithm does, so serialized host trees read like browser innerHTML.
func escapeText(s string) string {
	if !strings.ContainsAny(s, "&<>\u00a0") {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 8)

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '\u00a0':
			buf.WriteString("&nbsp;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr escapes an attribute value for a double-quoted attribute.
func escapeAttr(s string) string {
	if !strings.ContainsAny(s, "&\"<>\u00a0") {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 8)

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '"':
			buf.WriteString("&quot;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '\u00a0':
			buf.WriteString("&nbsp;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
