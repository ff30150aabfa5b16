// Package parse builds nccl trees from text.
package parse

import (
	"fmt"

	"github.com/nccl-format/go-nccl/debug"
	"github.com/nccl-format/go-nccl/ir"
	"github.com/nccl-format/go-nccl/token"
)

// Parse turns one document into a tree rooted at a synthetic empty
// node. The result is non-nil even for empty input. Any scan failure
// aborts the whole parse; there is no partial tree.
func Parse(doc []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	root := ir.NewRoot()
	sc := token.NewScanner(doc)

	// stack[d] is the node most recently opened at depth d-1, with
	// stack[0] the root. A line at depth d closes every open branch
	// deeper than d, so the stack is truncated to d+1 before pushing.
	// The explicit stack keeps call-stack usage constant no matter how
	// deeply the input nests.
	stack := []*ir.Node{root}
	for {
		ln, err := sc.Next()
		if err != nil {
			return nil, pOpts.wrap(err)
		}
		if ln == nil {
			return root, nil
		}
		if debug.Parse() {
			debug.Logf("parse: depth=%d text=%q\n", ln.Depth, ln.Text)
		}
		if ln.Depth >= len(stack) {
			return nil, pOpts.wrap(fmt.Errorf("%w: depth %d with innermost open depth %d at %s",
				ErrDepthSkip, ln.Depth, len(stack)-2, ln.Pos))
		}
		node := ir.New(ln.Text)
		stack[ln.Depth].AddChild(node)
		if pOpts.positions != nil {
			pOpts.positions[node] = ln.Pos
		}
		stack = append(stack[:ln.Depth+1], node)
	}
}
