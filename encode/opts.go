package encode

import "strings"

type EncodeOption func(*EncState)

// EncodeUnit sets the number of spaces per nesting level (default 4).
func EncodeUnit(n int) EncodeOption {
	return func(es *EncState) { es.unit = strings.Repeat(" ", n) }
}

// EncodeTabs indents with one tab per nesting level.
func EncodeTabs() EncodeOption {
	return func(es *EncState) { es.unit = "\t" }
}

// Depth sets the starting nesting level.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
