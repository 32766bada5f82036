package exprtree

import (
	"io"
	"strconv"
	"strings"
)

const (
	diagramHeader = "```mermaid\ngraph TD\n"
	diagramFooter = "```\n---\n"
)

// Diagram writes the tree as a Mermaid flowchart.
//
// The block starts with the source line (A) linked to the printed expression (B), followed by one
// edge per parent/child pair in pre-order, left child before right.
func (t *Tree) Diagram(w io.Writer) error {
	_, err := io.WriteString(w, t.DiagramString())
	return err
}

// DiagramString returns the Mermaid flowchart for the tree.
func (t *Tree) DiagramString() string {
	b := &strings.Builder{}
	b.WriteString(diagramHeader)
	b.WriteString(`A("` + t.Source + "\")\n")
	b.WriteString(`B("` + t.String() + "\")\n")
	b.WriteString("A --> B\n")
	b.WriteString("style A fill:#ded\n")
	b.WriteString("style B fill:#dde\n")
	for _, edge := range t.Edges() {
		b.WriteString(edge + "\n")
	}
	b.WriteString(diagramFooter)
	return b.String()
}

// Edges returns the diagram edges of the tree, one "parent --> child" string per edge.
func (t *Tree) Edges() []string {
	edges := []string{}
	_ = Visit(t.Root, func(n *Node, next func() error) error {
		if !n.IsLiteral() {
			edges = append(edges, n.label()+" --> "+n.Left.label(), n.label()+" --> "+n.Right.label())
		}
		return next()
	})
	return edges
}

// label of the node as a Mermaid node: 3[42] for literals, 4(("+")) for operators.
func (n *Node) label() string {
	id := strconv.Itoa(n.ID)
	if n.IsLiteral() {
		return id + "[" + n.Value + "]"
	}
	return id + `(("` + n.Op + `"))`
}
