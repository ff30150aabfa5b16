package encode

import (
	"io"
	"strings"

	"github.com/nccl-format/go-nccl/ir"
	"github.com/nccl-format/go-nccl/token"
)

type EncState struct {
	depth int
	unit  string

	Color func(ColorAttr, string) string
}

// Encode renders a tree as nccl text. A synthetic root renders its
// children as top-level nodes; any other node renders itself at the
// current depth. Names that would not survive a re-parse are quoted,
// multiline names triple-quoted, so parse(Encode(t)) is structurally
// equal to t.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{unit: "    "}
	for _, opt := range opts {
		opt(es)
	}
	if node.IsRoot() {
		for _, c := range node.Children {
			if err := encode(c, w, es); err != nil {
				return err
			}
		}
		return nil
	}
	return encode(node, w, es)
}

func encode(n *ir.Node, w io.Writer, es *EncState) error {
	indent := strings.Repeat(es.unit, es.depth)
	if err := writeString(w, indent+renderName(n, es)+"\n"); err != nil {
		return err
	}
	es.depth++
	for _, c := range n.Children {
		if err := encode(c, w, es); err != nil {
			return err
		}
	}
	es.depth--
	return nil
}

func renderName(n *ir.Node, es *EncState) string {
	name := n.Name
	switch {
	case token.NeedsTripleQuote(name):
		return es.color(LiteralColor, token.TripleQuote(name))
	case token.NeedsQuote(name):
		return es.color(LiteralColor, token.Quote(name))
	case n.Leaf():
		return es.color(LeafColor, name)
	default:
		return es.color(KeyColor, name)
	}
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
