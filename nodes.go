package exprtree

import (
	"github.com/alecthomas/exprtree/lexer"
)

// Operator precedence tiers.
const (
	precedenceNone = iota
	precedenceAdditive
	precedenceMultiplicative
	precedenceExponential
)

func precedence(op string) int {
	switch op {
	case "+", "-":
		return precedenceAdditive
	case "*", "/", "%":
		return precedenceMultiplicative
	case "^":
		return precedenceExponential
	}
	return precedenceNone
}

// A Node in an expression tree.
//
// Operator nodes have Op set and both children present. Literal nodes have an empty Op, no
// children, and carry the token text in Value.
type Node struct {
	// ID is unique within a single parse and increases in creation order, starting at 1.
	ID    int
	Op    string
	Value string
	Left  *Node
	Right *Node
	// Pos of the token the node was created from.
	Pos lexer.Position
}

// IsLiteral returns true if the node is a leaf.
func (n *Node) IsLiteral() bool {
	return n.Op == ""
}

// Tree is the expression parsed from one line of input.
type Tree struct {
	Root *Node
	// Source is the line the tree was parsed from, verbatim.
	Source string

	nodes int
}

// Nodes returns the number of nodes in the tree.
func (t *Tree) Nodes() int {
	return t.nodes
}

func (t *Tree) String() string {
	return t.Root.String()
}
