package exprtree

import (
	"fmt"
	"io"
	"strings"
)

// Trace the parse to "w".
//
// Each production entered is written on its own line, indented by depth, along with the
// lookahead token at that point.
func Trace(w io.Writer) Option {
	return func(p *Parser) error {
		p.trace = w
		return nil
	}
}

// enter a production, returning a function that leaves it.
func (c *parseContext) enter(production string) func() {
	if c.trace == nil {
		return func() {}
	}
	fmt.Fprintf(c.trace, "%s%q %s\n", strings.Repeat(" ", c.depth*2), c.lex.Peek(), production)
	c.depth++
	return func() { c.depth-- }
}
