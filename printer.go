package exprtree

import "strings"

// String prints the expression in infix form with minimal parentheses.
//
// A child operator is parenthesised when it binds more loosely than its parent. A right child of
// "^" is also parenthesised when it is itself a "^", even though "^" parses left-associative.
func (n *Node) String() string {
	b := &strings.Builder{}
	n.print(b)
	return b.String()
}

func (n *Node) print(b *strings.Builder) {
	if n.IsLiteral() {
		b.WriteString(n.Value)
		return
	}
	prec := precedence(n.Op)
	printChild(b, n.Left, !n.Left.IsLiteral() && precedence(n.Left.Op) < prec)
	b.WriteString(" " + n.Op + " ")
	rprec := precedence(n.Right.Op)
	printChild(b, n.Right, !n.Right.IsLiteral() && (rprec < prec || (rprec == prec && n.Op == "^")))
}

func printChild(b *strings.Builder, child *Node, parens bool) {
	if parens {
		b.WriteString("( ")
	}
	child.print(b)
	if parens {
		b.WriteString(" )")
	}
}
