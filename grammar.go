package exprtree

import (
	"strings"

	"golang.org/x/exp/ebnf"
)

// Grammar accepted by Parser in golang.org/x/exp/ebnf notation, starting at Expr.
//
// Number is shown as the lexer produces it. Non-numeric words are also accepted in its place and
// rejected by Eval.
const Grammar = `Expr    = Term { ( "+" | "-" ) Term } .
Term    = Power { ( "*" | "/" | "%" ) Power } .
Power   = Primary { "^" Primary } .
Primary = "(" Expr ")" | Number .
Number  = [ "-" ] digit { digit } .
digit   = "0" … "9" .
`

// GrammarStart is the start production of Grammar.
const GrammarStart = "Expr"

// ParseGrammar parses and verifies Grammar.
func ParseGrammar() (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse("grammar", strings.NewReader(Grammar))
	if err != nil {
		return nil, err
	}
	if err := ebnf.Verify(grammar, GrammarStart); err != nil {
		return nil, err
	}
	return grammar, nil
}
