package encode

import (
	"github.com/goccy/go-yaml"

	"github.com/nccl-format/go-nccl/ir"
)

// ToYAML exports a tree as YAML for interop with YAML tooling. nccl is
// type-free, so the mapping is conventional: a leaf becomes a string
// scalar, a node whose children are all leaves becomes a sequence of
// strings, and anything else becomes an ordered mapping of name to
// child value (a leaf child mapping to null). Leaf text stays a string
// even when it looks numeric.
func ToYAML(node *ir.Node) ([]byte, error) {
	if node.Leaf() {
		if node.IsRoot() {
			return yaml.Marshal(nil)
		}
		return yaml.Marshal(node.Name)
	}
	return yaml.Marshal(childrenValue(node))
}

func childrenValue(n *ir.Node) any {
	allLeaves := true
	for _, c := range n.Children {
		if !c.Leaf() {
			allLeaves = false
			break
		}
	}
	if allLeaves {
		res := make([]string, len(n.Children))
		for i, c := range n.Children {
			res[i] = c.Name
		}
		return res
	}
	res := make(yaml.MapSlice, len(n.Children))
	for i, c := range n.Children {
		item := yaml.MapItem{Key: c.Name}
		if !c.Leaf() {
			item.Value = childrenValue(c)
		}
		res[i] = item
	}
	return res
}
