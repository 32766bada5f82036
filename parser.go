package exprtree

import (
	"io"

	"github.com/alecthomas/exprtree/lexer"
)

// A Parser for integer arithmetic expressions.
//
// A Parser is immutable once constructed and may be shared. Every call to ParseString uses a
// fresh lexer and node ID counter.
type Parser struct {
	filename   string
	permissive bool
	trace      io.Writer
	maxNesting int
}

// DefaultMaxNesting is the number of nested parenthesised groups a Parser accepts unless
// MaxNesting is used.
const DefaultMaxNesting = 1000

// New creates a Parser.
func New(options ...Option) (*Parser, error) {
	p := &Parser{maxNesting: DefaultMaxNesting}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustNew calls New and panics on error.
func MustNew(options ...Option) *Parser {
	p, err := New(options...)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseString parses a single line into a Tree.
//
// Literals are not validated as numbers here. A Word such as "x" parses as a literal and only
// fails when the tree is evaluated.
func (p *Parser) ParseString(line string) (*Tree, error) {
	lex, err := lexer.Upgrade(lexer.LexString(p.filename, line))
	if err != nil {
		return nil, err
	}
	ctx := newParseContext(lex, p)
	root, err := ctx.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.permissive && !lex.Peek().EOF() {
		return nil, &UnexpectedTokenError{Unexpected: lex.Peek(), Expected: "operator"}
	}
	return &Tree{Root: root, Source: line, nodes: ctx.nextID}, nil
}
