package parse

import (
	"fmt"

	"github.com/nccl-format/go-nccl/ir"
	"github.com/nccl-format/go-nccl/token"
)

type parseOpts struct {
	filename  string
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// WithFilename prefixes parse failures with the document's name.
func WithFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// ParsePositions records each node's source position into the given
// map as the tree is built.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

func (o *parseOpts) wrap(err error) error {
	if o.filename == "" {
		return err
	}
	return fmt.Errorf("%s: %w", o.filename, err)
}
