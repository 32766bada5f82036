package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	operators   = "+-*/%^"
	punctuation = operators + "()"
)

// lineLexer tokenises a single line of input.
type lineLexer struct {
	filename string
	input    string
	offset   int
	column   int
	// operand is true when the next token must be an operand, ie. at the start of the line,
	// after an operator, or after "(". A "-" directly followed by a digit in this state starts a
	// signed number rather than being an operator.
	operand bool
}

// LexString returns a Lexer over a single line of input.
//
// Whitespace separates tokens. Parentheses and operators are always single character tokens,
// so "2+2" and "2 + 2" lex identically. Everything else is returned verbatim as either a Number
// or a Word.
func LexString(filename, input string) Lexer {
	return &lineLexer{
		filename: filename,
		input:    input,
		column:   1,
		operand:  true,
	}
}

func (l *lineLexer) Next() (Token, error) {
	l.skipSpace()
	pos := l.pos()
	if l.offset >= len(l.input) {
		return EOFToken(pos), nil
	}
	r, size := utf8.DecodeRuneInString(l.input[l.offset:])
	if r == utf8.RuneError && size == 1 {
		return Token{}, Errorf(pos, "invalid UTF-8 encoding")
	}
	switch {
	case r == '(':
		l.advance(size)
		l.operand = true
		return Token{Type: LParen, Value: "(", Pos: pos}, nil

	case r == ')':
		l.advance(size)
		l.operand = false
		return Token{Type: RParen, Value: ")", Pos: pos}, nil

	case r == '-' && l.operand && l.offset+1 < len(l.input) && isDigit(l.input[l.offset+1]):
		// Sign of a number, consumed as part of the run below.
		l.advance(size)

	case strings.ContainsRune(operators, r):
		l.advance(size)
		l.operand = true
		return Token{Type: Operator, Value: string(r), Pos: pos}, nil
	}

	start := l.offset
	for l.offset < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.offset:])
		if r == utf8.RuneError && size == 1 {
			return Token{}, Errorf(l.pos(), "invalid UTF-8 encoding")
		}
		if unicode.IsSpace(r) || (l.offset > start && strings.ContainsRune(punctuation, r)) {
			break
		}
		l.advance(size)
	}
	value := l.input[pos.Offset:l.offset]
	l.operand = false
	if isNumber(value) {
		return Token{Type: Number, Value: value, Pos: pos}, nil
	}
	return Token{Type: Word, Value: value, Pos: pos}, nil
}

func (l *lineLexer) skipSpace() {
	for l.offset < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.offset:])
		if !unicode.IsSpace(r) {
			return
		}
		l.advance(size)
	}
}

func (l *lineLexer) advance(size int) {
	l.offset += size
	l.column++
}

func (l *lineLexer) pos() Position {
	return Position{
		Filename: l.filename,
		Offset:   l.offset,
		Line:     1,
		Column:   l.column,
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isNumber(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
