package ir

import "strings"

// GetPath navigates from n along a dotted path of child names,
// returning nil if any segment is missing. Matching is by first
// name-equal child at each level, the same rule merge uses.
//
// Path syntax is intentionally minimal: segments are split on '.', so
// names containing a literal dot are not addressable this way; use
// GetSegments for those.
func GetPath(n *Node, path string) *Node {
	if path == "" {
		return n
	}
	return GetSegments(n, strings.Split(path, ".")...)
}

func GetSegments(n *Node, segments ...string) *Node {
	res := n
	for _, seg := range segments {
		if res = res.Get(seg); res == nil {
			return nil
		}
	}
	return res
}

// Path returns the dotted path of names from the root to n. The
// synthetic root contributes nothing; a top-level node's path is its
// own name.
func (n *Node) Path() string {
	if n.Parent == nil {
		return n.Name
	}
	segs := []string{}
	for p := n; p.Parent != nil; p = p.Parent {
		segs = append(segs, p.Name)
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return strings.Join(segs, ".")
}
