package exprtree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{"7", "7"},
		{"1 + 2 * 3", "1 + 2 * 3"},
		{"(1 + 2) * 3", "( 1 + 2 ) * 3"},
		{"3+4*2", "3 + 4 * 2"},
		{"2 ^ 3 ^ 2", "2 ^ 3 ^ 2"},
		{"2 ^ (3 ^ 2)", "2 ^ ( 3 ^ 2 )"},
		{"(1 * 2) ^ 3", "( 1 * 2 ) ^ 3"},
		{"2 * (3 + 4) - 5", "2 * ( 3 + 4 ) - 5"},
		{"((1))", "1"},
		{"(((1 + 2)))", "1 + 2"},
		{"(1 - 2) - 3", "1 - 2 - 3"},
		// Equal precedence on the right is only parenthesised under "^".
		{"1 - (2 - 3)", "1 - 2 - 3"},
		{"10 % (3 * 2)", "10 % 3 * 2"},
		{"2 ^ (1 + 1)", "2 ^ ( 1 + 1 )"},
	}
	for _, test := range tests {
		t.Run(test.source, func(t *testing.T) {
			require.Equal(t, test.expected, mustParse(t, test.source).String())
		})
	}
}

func TestStringIsStableUnderReparse(t *testing.T) {
	sources := []string{
		"1 + 2 * 3",
		"(1 + 2) * 3",
		"2 ^ 3 ^ 2",
		"2 ^ (3 ^ 2)",
		"((4 - 1) * (2 + 2)) % 5 ^ 2",
		"100 / (5 - 3) / 2",
		"(1 + 2) ^ (3 * 4) - 6 % (7 - 5)",
	}
	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			printed := mustParse(t, source).String()
			require.Equal(t, printed, mustParse(t, printed).String())
		})
	}
}

func TestStringLongChain(t *testing.T) {
	const terms = 50000
	source := "1" + strings.Repeat(" + 1", terms-1)
	tree := mustParse(t, source)
	require.Equal(t, source, tree.String())
	value, err := tree.Eval()
	require.NoError(t, err)
	require.Equal(t, int64(terms), value)
}
