package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/exprtree/lexer"
)

type staticLexer struct {
	tokens []lexer.Token
	calls  int
}

func (s *staticLexer) Next() (lexer.Token, error) {
	s.calls++
	if len(s.tokens) == 0 {
		return lexer.EOFToken(lexer.Position{}), nil
	}
	t := s.tokens[0]
	s.tokens = s.tokens[1:]
	return t, nil
}

func mustNext(t *testing.T, lex lexer.Lexer) lexer.Token {
	t.Helper()
	token, err := lex.Next()
	require.NoError(t, err)
	return token
}

func TestUpgrade(t *testing.T) {
	t0 := lexer.Token{Type: lexer.Number, Value: "1"}
	t1 := lexer.Token{Type: lexer.Operator, Value: "+"}
	static := &staticLexer{tokens: []lexer.Token{t0, t1}}
	l, err := lexer.Upgrade(static)
	require.NoError(t, err)
	require.Equal(t, 1, static.calls, "only a single token of lookahead is loaded")
	require.Equal(t, t0, l.Peek())
	require.Equal(t, t0, l.Peek())
	require.Equal(t, t0, mustNext(t, l))
	require.Equal(t, t1, l.Peek())
	require.Equal(t, t1, mustNext(t, l))
	require.True(t, l.Peek().EOF())
}

func TestPeekingLexerStopsAtEOF(t *testing.T) {
	static := &staticLexer{}
	l, err := lexer.Upgrade(static)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.True(t, mustNext(t, l).EOF())
	}
	require.Equal(t, 1, static.calls)
	require.Equal(t, "", l.Peek().Value)
}

func TestUpgradeLexString(t *testing.T) {
	l, err := lexer.Upgrade(lexer.LexString("", "( 7 )"))
	require.NoError(t, err)
	require.Equal(t, "(", l.Peek().Value)
	require.Equal(t, "(", mustNext(t, l).Value)
	require.Equal(t, "7", mustNext(t, l).Value)
	require.Equal(t, ")", mustNext(t, l).Value)
	require.True(t, l.Peek().EOF())
}

func TestUpgradeError(t *testing.T) {
	_, err := lexer.Upgrade(lexer.LexString("", "\xfe"))
	require.Error(t, err)
}
