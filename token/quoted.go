package token

import "strings"

// NeedsQuote reports whether a name must be quoted to survive a
// re-parse: bare text is trimmed, comments bind at line start, and
// quotes/escapes bind at the first character.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if v != strings.TrimSpace(v) {
		return true
	}
	if v[0] == '#' || v[0] == '"' {
		return true
	}
	return strings.ContainsAny(v, "\n\r\t")
}

// NeedsTripleQuote reports whether v renders better as a triple-quoted
// literal: it spans lines, contains no closing delimiter of its own,
// and does not end in a quote that would run into the closing
// delimiter.
func NeedsTripleQuote(v string) bool {
	return strings.ContainsRune(v, '\n') &&
		!strings.Contains(v, `"""`) &&
		!strings.HasSuffix(v, `"`)
}

// Quote renders v as a double-quoted single-line literal.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			d = append(d, c)
		}
	}
	d = append(d, '"')
	return string(d)
}

// TripleQuote renders v as a triple-quoted literal. The content is
// emitted byte-for-byte; callers must check NeedsTripleQuote first.
func TripleQuote(v string) string {
	return `"""` + v + `"""`
}
