package lexer

// PeekingLexer supports a single token of lookahead.
type PeekingLexer struct {
	lex  Lexer
	peek Token
}

var _ Lexer = &PeekingLexer{}

// Upgrade a Lexer to a PeekingLexer, loading the first token into the lookahead.
func Upgrade(lex Lexer) (*PeekingLexer, error) {
	p := &PeekingLexer{lex: lex}
	t, err := lex.Next()
	if err != nil {
		return nil, err
	}
	p.peek = t
	return p, nil
}

// Peek returns the next token without consuming it.
//
// Once the input is exhausted Peek keeps returning the EOF token.
func (p *PeekingLexer) Peek() Token {
	return p.peek
}

// Next consumes and returns the lookahead token, then loads the one after it.
func (p *PeekingLexer) Next() (Token, error) {
	t := p.peek
	if t.EOF() {
		return t, nil
	}
	next, err := p.lex.Next()
	if err != nil {
		return t, err
	}
	p.peek = next
	return t, nil
}
