package ir

// Node is the single structural unit of an nccl tree. A node has a
// name and an ordered list of children. There is no key/value
// distinction: a node with no children reads as a value, a node with
// children as a key, but both are the same entity.
//
// The synthetic root of a document has an empty Name and a nil Parent;
// it owns the top-level nodes and is never itself matched during merge.
type Node struct {
	Name        string
	Parent      *Node
	ParentIndex int
	Children    []*Node
}

func New(name string) *Node {
	return &Node{Name: name}
}

// NewRoot returns an empty synthetic root.
func NewRoot() *Node {
	return &Node{}
}

// AddChild appends c to n's children and re-parents it.
func (n *Node) AddChild(c *Node) *Node {
	c.Parent = n
	c.ParentIndex = len(n.Children)
	n.Children = append(n.Children, c)
	return c
}

// Add appends a new leaf child with the given name.
func (n *Node) Add(name string) *Node {
	return n.AddChild(New(name))
}

// Leaf reports whether n has no children.
func (n *Node) Leaf() bool {
	return len(n.Children) == 0
}

// IsRoot reports whether n is a synthetic document root.
func (n *Node) IsRoot() bool {
	return n.Parent == nil && n.Name == ""
}

// Get returns the first child named name, or nil.
func (n *Node) Get(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Has reports whether n has a child named name.
func (n *Node) Has(name string) bool {
	return n.Get(name) != nil
}

// Names returns the names of n's children in order.
func (n *Node) Names() []string {
	res := make([]string, len(n.Children))
	for i, c := range n.Children {
		res[i] = c.Name
	}
	return res
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

// CloneTo deep-copies n into dst. The copy keeps n's Parent and
// ParentIndex so that a clone can stand in for the original; cloned
// children are re-parented onto dst.
func (n *Node) CloneTo(dst *Node) *Node {
	dst.Name = n.Name
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	if n.Children == nil {
		dst.Children = nil
		return dst
	}
	dst.Children = make([]*Node, len(n.Children))
	for i, c := range n.Children {
		dstC := &Node{}
		c.CloneTo(dstC)
		dstC.Parent = dst
		dstC.ParentIndex = i
		dst.Children[i] = dstC
	}
	return dst
}

// Root returns the topmost ancestor of n.
func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Depth returns the distance from n to its root. A top-level node has
// depth 0.
func (n *Node) Depth() int {
	d := -1
	for p := n; p.Parent != nil; p = p.Parent {
		d++
	}
	return d
}

// Visit calls f on n and, when f returns dive=true, on every node
// beneath it, pre- and post-order. The isPost argument distinguishes
// the two calls.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Walk calls f on every node beneath n in document order, not
// including n itself.
func (n *Node) Walk(f func(n *Node) error) error {
	for _, c := range n.Children {
		if err := f(c); err != nil {
			return err
		}
		if err := c.Walk(f); err != nil {
			return err
		}
	}
	return nil
}

// FromLeaves builds a node with the given name whose children are
// leaves named by names.
func FromLeaves(name string, names ...string) *Node {
	res := New(name)
	for _, nm := range names {
		res.Add(nm)
	}
	return res
}
