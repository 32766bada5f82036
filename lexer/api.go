package lexer

import (
	"fmt"
)

// TokenType identifies the kind of a Token.
type TokenType int

// Token types produced by LexString.
const (
	// EOF represents the end of the input. Its Value is always empty.
	EOF TokenType = iota
	// Number is an optionally signed run of decimal digits.
	Number
	// Operator is one of + - * / % ^.
	Operator
	// LParen is "(".
	LParen
	// RParen is ")".
	RParen
	// Word is any other run of non-space characters. It is kept verbatim.
	Word
)

var tokenTypeNames = map[TokenType]string{
	EOF:      "EOF",
	Number:   "Number",
	Operator: "Operator",
	LParen:   "LParen",
	RParen:   "RParen",
	Word:     "Word",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// EOFToken creates a new EOF token at the given position.
func EOFToken(pos Position) Token {
	return Token{Type: EOF, Pos: pos}
}

// A Lexer returns tokens from a source.
type Lexer interface {
	// Next consumes and returns the next token.
	Next() (Token, error)
}

// ConsumeAll reads all tokens from a Lexer, including the final EOF token.
func ConsumeAll(lexer Lexer) ([]Token, error) {
	tokens := make([]Token, 0, 16)
	for {
		token, err := lexer.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.EOF() {
			return tokens, nil
		}
	}
}

// Position of a token.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) GoString() string {
	return fmt.Sprintf("Position{Filename: %q, Offset: %d, Line: %d, Column: %d}",
		p.Filename, p.Offset, p.Line, p.Column)
}

func (p Position) String() string {
	filename := p.Filename
	if filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", filename, p.Line, p.Column)
}

// A Token returned by a Lexer.
type Token struct {
	Type  TokenType
	Value string
	Pos   Position
}

// EOF returns true if this Token is an EOF token.
func (t Token) EOF() bool {
	return t.Type == EOF
}

func (t Token) String() string {
	if t.EOF() {
		return "<EOF>"
	}
	return t.Value
}

func (t Token) GoString() string {
	if t.Pos == (Position{}) {
		return fmt.Sprintf("Token{%s, %q}", t.Type, t.Value)
	}
	return fmt.Sprintf("Token@%s{%s, %q}", t.Pos.String(), t.Type, t.Value)
}
