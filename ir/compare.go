package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Names compare before children; children compare pairwise in order,
// shorter child lists ordering first.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	n := min(len(a.Children), len(b.Children))
	for i := range n {
		if c := Compare(a.Children[i], b.Children[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Children), len(b.Children))
}

// Equal reports structural equality: same names, same shape, same
// child order. Parent pointers do not participate.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}
