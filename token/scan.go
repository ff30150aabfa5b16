package token

import (
	"bytes"
	"strings"
)

// Line is one logical line of an nccl document: the nesting depth
// established by its leading whitespace and its text after unquoting.
type Line struct {
	Depth int
	Text  string
	Pos   *Pos
}

// indentUnit is the indentation unit inferred for one top-level
// subtree: the whitespace character class and the count of that
// character per nesting level. A zero value means not yet inferred.
type indentUnit struct {
	char  byte
	width int
}

// Scanner turns raw document bytes into an ordered sequence of Lines.
// Comment and blank lines are discarded. Indentation units are
// inferred per top-level subtree: the first indented line beneath each
// top-level node fixes the unit for that subtree, and the unit resets
// at the next top-level line.
type Scanner struct {
	doc    []byte
	posDoc *PosDoc
	cur    int
	unit   indentUnit
}

func NewScanner(doc []byte) *Scanner {
	return &Scanner{
		doc:    doc,
		posDoc: NewPosDoc(doc),
	}
}

// Scan collects all lines of doc. Scanning is deterministic: the same
// input always produces the same lines or the same error.
func Scan(doc []byte) ([]Line, error) {
	s := NewScanner(doc)
	var res []Line
	for {
		ln, err := s.Next()
		if err != nil {
			return nil, err
		}
		if ln == nil {
			return res, nil
		}
		res = append(res, *ln)
	}
}

// Next returns the next logical line, or (nil, nil) at end of input.
func (s *Scanner) Next() (*Line, error) {
	for {
		if s.cur >= len(s.doc) {
			return nil, nil
		}
		lineStart := s.cur
		for s.cur < len(s.doc) && (s.doc[s.cur] == ' ' || s.doc[s.cur] == '\t') {
			s.cur++
		}
		wsLen := s.cur - lineStart

		if s.blankRest() {
			continue
		}
		if s.doc[s.cur] == '#' {
			s.skipToEOL()
			continue
		}

		depth, err := s.depthOf(lineStart, wsLen)
		if err != nil {
			return nil, err
		}
		pos := s.posDoc.Pos(s.cur)
		var text string
		if s.doc[s.cur] == '"' {
			text, err = s.quoted()
		} else {
			text, err = s.bare(), nil
		}
		if err != nil {
			return nil, err
		}
		return &Line{Depth: depth, Text: text, Pos: pos}, nil
	}
}

// blankRest consumes the remainder of the line when it holds no
// content, reporting whether it did so.
func (s *Scanner) blankRest() bool {
	if s.cur >= len(s.doc) {
		return true
	}
	switch s.doc[s.cur] {
	case '\n':
		s.cur++
		return true
	case '\r':
		if s.cur+1 >= len(s.doc) || s.doc[s.cur+1] == '\n' {
			s.skipToEOL()
			return true
		}
	}
	return false
}

func (s *Scanner) skipToEOL() {
	for s.cur < len(s.doc) && s.doc[s.cur] != '\n' {
		s.cur++
	}
	if s.cur < len(s.doc) {
		s.cur++
	}
}

// depthOf maps a leading whitespace run to a depth, inferring or
// checking the subtree's indentation unit. A top-level line resets the
// unit: each top-level subtree infers independently.
func (s *Scanner) depthOf(lineStart, wsLen int) (int, error) {
	if wsLen == 0 {
		s.unit = indentUnit{}
		return 0, nil
	}
	ws := s.doc[lineStart : lineStart+wsLen]
	char := ws[0]
	for _, c := range ws[1:] {
		if c != char {
			return 0, NewScanError(ErrInconsistentIndentation, s.posDoc.Pos(lineStart))
		}
	}
	if s.unit.width == 0 {
		s.unit = indentUnit{char: char, width: wsLen}
		return 1, nil
	}
	if char != s.unit.char || wsLen%s.unit.width != 0 {
		return 0, NewScanError(ErrInconsistentIndentation, s.posDoc.Pos(lineStart))
	}
	return wsLen / s.unit.width, nil
}

// bare takes the rest of the physical line verbatim, trimmed of
// surrounding whitespace. No escape processing, no type inference.
func (s *Scanner) bare() string {
	end := bytes.IndexByte(s.doc[s.cur:], '\n')
	var seg []byte
	if end < 0 {
		seg = s.doc[s.cur:]
		s.cur = len(s.doc)
	} else {
		seg = s.doc[s.cur : s.cur+end]
		s.cur += end + 1
	}
	return strings.TrimSpace(string(seg))
}

// quoted scans a double-quoted or triple-quoted literal starting at
// s.cur.
func (s *Scanner) quoted() (string, error) {
	open := s.posDoc.Pos(s.cur)
	if bytes.HasPrefix(s.doc[s.cur:], tripleQuote) {
		body := s.cur + len(tripleQuote)
		end := bytes.Index(s.doc[body:], tripleQuote)
		if end < 0 {
			return "", NewScanError(ErrUnterminatedLiteral, open)
		}
		text := string(s.doc[body : body+end])
		s.cur = body + end + len(tripleQuote)
		return text, s.lineRest()
	}

	b := &strings.Builder{}
	i := s.cur + 1
	for {
		if i >= len(s.doc) || s.doc[i] == '\n' {
			return "", NewScanError(ErrUnterminatedLiteral, open)
		}
		c := s.doc[i]
		if c == '"' {
			i++
			break
		}
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		if i >= len(s.doc) || s.doc[i] == '\n' {
			return "", NewScanError(ErrUnterminatedLiteral, open)
		}
		switch s.doc[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			return "", NewScanError(ErrQuoteSyntax, s.posDoc.Pos(i))
		}
		i++
	}
	s.cur = i
	return b.String(), s.lineRest()
}

var tripleQuote = []byte(`"""`)

// lineRest consumes trailing whitespace after a closing quote; any
// other trailing content is a lexical error rather than silently
// dropped text.
func (s *Scanner) lineRest() error {
	for s.cur < len(s.doc) {
		switch s.doc[s.cur] {
		case '\n':
			s.cur++
			return nil
		case ' ', '\t', '\r':
			s.cur++
		default:
			return NewScanError(ErrQuoteSyntax, s.posDoc.Pos(s.cur))
		}
	}
	return nil
}
