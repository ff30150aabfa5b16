// Package merge computes the structural union of two nccl trees.
package merge

import (
	"github.com/nccl-format/go-nccl/debug"
	"github.com/nccl-format/go-nccl/ir"
)

// Merge combines base and overlay into a freshly owned tree. Neither
// input is mutated.
//
// At every level, an overlay child whose name exactly matches an
// existing child (first match, base order) merges recursively into it;
// any other overlay child is deep-copied and appended after the
// children already present. Matching is by name alone, for keys and
// leaves alike, so duplicate-named leaves collapse into one node.
// Merging with an empty overlay yields a tree equal to base; the
// operation is not commutative.
func Merge(base, overlay *ir.Node) *ir.Node {
	res := base.Clone()
	res.Parent = nil
	res.ParentIndex = 0
	mergeInto(res, overlay)
	return res
}

func mergeInto(dst, overlay *ir.Node) {
	for _, c := range overlay.Children {
		if m := dst.Get(c.Name); m != nil {
			if debug.Merge() {
				debug.Logf("merge: descend into %q at %s\n", c.Name, m.Path())
			}
			mergeInto(m, c)
			continue
		}
		if debug.Merge() {
			debug.Logf("merge: append %q under %s\n", c.Name, dst.Path())
		}
		dst.AddChild(c.Clone())
	}
}
