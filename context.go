package exprtree

import (
	"io"
	"strings"

	"github.com/alecthomas/exprtree/lexer"
)

// parseContext holds the state of a single parse. A new one is created for every line, so node
// IDs restart at 1 and no lookahead leaks between lines.
type parseContext struct {
	lex        *lexer.PeekingLexer
	permissive bool
	nextID     int
	trace      io.Writer
	depth      int
	// nesting is the number of open parenthesised groups, bounded by maxNesting.
	nesting    int
	maxNesting int
}

func newParseContext(lex *lexer.PeekingLexer, p *Parser) *parseContext {
	return &parseContext{lex: lex, permissive: p.permissive, trace: p.trace, maxNesting: p.maxNesting}
}

func (c *parseContext) newLiteral(token lexer.Token) *Node {
	c.nextID++
	return &Node{ID: c.nextID, Value: token.Value, Pos: token.Pos}
}

func (c *parseContext) newOperator(token lexer.Token, left, right *Node) *Node {
	c.nextID++
	return &Node{ID: c.nextID, Op: token.Value, Left: left, Right: right, Pos: token.Pos}
}

// expr := term ( ('+' | '-') term )*
func (c *parseContext) parseExpr() (*Node, error) {
	defer c.enter("expr")()
	return c.parseBinary("+-", c.parseTerm)
}

// term := power ( ('*' | '/' | '%') power )*
func (c *parseContext) parseTerm() (*Node, error) {
	defer c.enter("term")()
	return c.parseBinary("*/%", c.parsePower)
}

// power := primary ( '^' primary )*
func (c *parseContext) parsePower() (*Node, error) {
	defer c.enter("power")()
	return c.parseBinary("^", c.parsePrimary)
}

// parseBinary folds a run of operators from ops into a left-leaning tree.
func (c *parseContext) parseBinary(ops string, operand func() (*Node, error)) (*Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		peek := c.lex.Peek()
		if peek.Type != lexer.Operator || !strings.Contains(ops, peek.Value) {
			return left, nil
		}
		op, err := c.lex.Next()
		if err != nil {
			return nil, err
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = c.newOperator(op, left, right)
	}
}

// primary := '(' expr ')' | NUMBER
func (c *parseContext) parsePrimary() (*Node, error) {
	defer c.enter("primary")()
	peek := c.lex.Peek()
	if peek.Type == lexer.LParen {
		if c.nesting >= c.maxNesting {
			return nil, &NestingError{Pos: peek.Pos, Limit: c.maxNesting}
		}
		if _, err := c.lex.Next(); err != nil {
			return nil, err
		}
		c.nesting++
		inner, err := c.parseExpr()
		c.nesting--
		if err != nil {
			return nil, err
		}
		if !c.permissive && c.lex.Peek().Type != lexer.RParen {
			return nil, &UnexpectedTokenError{Unexpected: c.lex.Peek(), Expected: `")"`}
		}
		if _, err := c.lex.Next(); err != nil {
			return nil, err
		}
		return inner, nil
	}
	if !c.permissive {
		switch peek.Type {
		case lexer.Operator, lexer.RParen, lexer.EOF:
			return nil, &UnexpectedTokenError{Unexpected: peek, Expected: `number or "("`}
		}
	}
	token, err := c.lex.Next()
	if err != nil {
		return nil, err
	}
	return c.newLiteral(token), nil
}
