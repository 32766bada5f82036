package exprtree

import "fmt"

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// Permissive disables validation of the token stream.
//
// In permissive mode the token after a parenthesised expression is consumed whether or not it is
// ")", any token in operand position is taken as a literal (including operators and the empty
// EOF token), and tokens left over after a complete expression are ignored.
func Permissive() Option {
	return func(p *Parser) error {
		p.permissive = true
		return nil
	}
}

// Filename sets the filename reported in token positions.
func Filename(filename string) Option {
	return func(p *Parser) error {
		p.filename = filename
		return nil
	}
}

// MaxNesting limits how deeply parenthesised groups may nest. Deeper input fails with a
// *NestingError instead of growing the stack without bound.
func MaxNesting(limit int) Option {
	return func(p *Parser) error {
		if limit < 1 {
			return fmt.Errorf("nesting limit must be at least 1, not %d", limit)
		}
		p.maxNesting = limit
		return nil
	}
}
