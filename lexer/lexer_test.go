package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/exprtree/lexer"
)

func lexValues(t *testing.T, input string) []string {
	t.Helper()
	tokens, err := lexer.ConsumeAll(lexer.LexString("", input))
	require.NoError(t, err)
	values := []string{}
	for _, token := range tokens {
		if token.EOF() {
			break
		}
		values = append(values, token.Value)
	}
	return values
}

func TestLexString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Empty", "", []string{}},
		{"Spaces", "   \t ", []string{}},
		{"Number", "42", []string{"42"}},
		{"Spaced", "3 + 4 * 2", []string{"3", "+", "4", "*", "2"}},
		{"Unspaced", "2+2", []string{"2", "+", "2"}},
		{"Parens", "(1+2)*3", []string{"(", "1", "+", "2", ")", "*", "3"}},
		{"AllOperators", "1+2-3*4/5%6^7", []string{"1", "+", "2", "-", "3", "*", "4", "/", "5", "%", "6", "^", "7"}},
		{"LeadingNegative", "-1 + 2", []string{"-1", "+", "2"}},
		{"NegativeExponent", "5 ^ -1", []string{"5", "^", "-1"}},
		{"NegativeAfterParen", "(-3)", []string{"(", "-3", ")"}},
		{"MinusAfterOperand", "5 -1", []string{"5", "-", "1"}},
		{"MinusAfterParen", "(1) -2", []string{"(", "1", ")", "-", "2"}},
		{"DoubleMinus", "5 - -1", []string{"5", "-", "-1"}},
		{"LoneMinus", "- x", []string{"-", "x"}},
		{"Word", "abc + 1", []string{"abc", "+", "1"}},
		{"WordSplitOnOperator", "a1b-c", []string{"a1b", "-", "c"}},
		{"Tabs", "1\t*\t2", []string{"1", "*", "2"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, lexValues(t, test.input))
		})
	}
}

func TestLexTypes(t *testing.T) {
	tokens, err := lexer.ConsumeAll(lexer.LexString("", "(1 - x) ^ -2"))
	require.NoError(t, err)
	types := []lexer.TokenType{}
	for _, token := range tokens {
		types = append(types, token.Type)
	}
	require.Equal(t, []lexer.TokenType{
		lexer.LParen, lexer.Number, lexer.Operator, lexer.Word, lexer.RParen,
		lexer.Operator, lexer.Number, lexer.EOF,
	}, types)
}

func TestLexPositions(t *testing.T) {
	tokens, err := lexer.ConsumeAll(lexer.LexString("test", "12 +  3"))
	require.NoError(t, err)
	require.Equal(t, []lexer.Token{
		{Type: lexer.Number, Value: "12", Pos: lexer.Position{Filename: "test", Offset: 0, Line: 1, Column: 1}},
		{Type: lexer.Operator, Value: "+", Pos: lexer.Position{Filename: "test", Offset: 3, Line: 1, Column: 4}},
		{Type: lexer.Number, Value: "3", Pos: lexer.Position{Filename: "test", Offset: 6, Line: 1, Column: 7}},
		{Type: lexer.EOF, Pos: lexer.Position{Filename: "test", Offset: 7, Line: 1, Column: 8}},
	}, tokens)
}

func TestLexInvalidUTF8(t *testing.T) {
	_, err := lexer.ConsumeAll(lexer.LexString("", "1 + \xff"))
	require.EqualError(t, err, "1:5: invalid UTF-8 encoding")
	_, err = lexer.ConsumeAll(lexer.LexString("", "1\xff"))
	require.EqualError(t, err, "1:2: invalid UTF-8 encoding")
}

func TestTokenString(t *testing.T) {
	require.Equal(t, "<EOF>", lexer.EOFToken(lexer.Position{}).String())
	require.Equal(t, "+", lexer.Token{Type: lexer.Operator, Value: "+"}.String())
	require.Equal(t, `Token{Operator, "+"}`, lexer.Token{Type: lexer.Operator, Value: "+"}.GoString())
	require.Equal(t, "TokenType(99)", lexer.TokenType(99).String())
}

func TestFormatError(t *testing.T) {
	require.Equal(t, "oops", lexer.FormatError(lexer.Position{}, "oops"))
	require.Equal(t, "1:3: oops", lexer.FormatError(lexer.Position{Line: 1, Column: 3}, "oops"))
	require.Equal(t, "in:1:3: oops", lexer.FormatError(lexer.Position{Filename: "in", Line: 1, Column: 3}, "oops"))
}
