package exprtree

// Visitor is called for each node in a tree. Calling next descends into the node's children.
type Visitor func(n *Node, next func() error) error

// Visit walks the tree rooted at n in pre-order: a node, then its left subtree, then its right
// subtree. Children are only visited if the visitor calls next.
func Visit(n *Node, visitor Visitor) error {
	return visitor(n, func() error {
		if n.IsLiteral() {
			return nil
		}
		if err := Visit(n.Left, visitor); err != nil {
			return err
		}
		return Visit(n.Right, visitor)
	})
}

// Counts of each kind of node in a tree.
type Counts struct {
	Operators int
	Literals  int
}

// Count the operator and literal nodes of a tree.
func (t *Tree) Count() Counts {
	counts := Counts{}
	_ = Visit(t.Root, func(n *Node, next func() error) error {
		if n.IsLiteral() {
			counts.Literals++
		} else {
			counts.Operators++
		}
		return next()
	})
	return counts
}
