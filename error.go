package exprtree

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alecthomas/exprtree/lexer"
)

// Error represents an error while parsing or evaluating.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() lexer.Position
}

var (
	_ Error = &lexer.Error{}
	_ Error = &UnexpectedTokenError{}
	_ Error = &NumericError{}
	_ Error = &EvalError{}
	_ Error = &UnknownOperatorError{}
	_ Error = &NestingError{}
)

// Evaluation failures, wrapped in an *EvalError by Eval.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrModuloByZero   = errors.New("modulo by zero")
	ErrOverflow       = errors.New("integer overflow")
)

// UnexpectedTokenError is returned by ParseString when an unexpected token is encountered.
type UnexpectedTokenError struct {
	Unexpected lexer.Token
	Expected   string
}

func (u *UnexpectedTokenError) Error() string {
	return lexer.FormatError(u.Unexpected.Pos, u.Message())
}

func (u *UnexpectedTokenError) Message() string { // nolint: golint
	var expected string
	if u.Expected != "" {
		expected = fmt.Sprintf(" (expected %s)", u.Expected)
	}
	if u.Unexpected.EOF() {
		return "unexpected end of expression" + expected
	}
	return fmt.Sprintf("unexpected token %q%s", u.Unexpected.Value, expected)
}
func (u *UnexpectedTokenError) Position() lexer.Position { return u.Unexpected.Pos } // nolint: golint

// NumericError is returned when text can not be converted to an integer.
type NumericError struct {
	Text string
	Pos  lexer.Position
	Err  error
}

func (n *NumericError) Error() string { return lexer.FormatError(n.Pos, n.Message()) }

func (n *NumericError) Message() string { // nolint: golint
	if errors.Is(n.Err, strconv.ErrRange) {
		return fmt.Sprintf("number %q out of range", n.Text)
	}
	return fmt.Sprintf("invalid number %q", n.Text)
}
func (n *NumericError) Position() lexer.Position { return n.Pos } // nolint: golint
func (n *NumericError) Unwrap() error { return n.Err }

// EvalError is returned by Eval when applying an operator fails.
//
// Use errors.Is with ErrDivisionByZero, ErrModuloByZero or ErrOverflow to determine the cause.
type EvalError struct {
	Op  string
	Pos lexer.Position
	Err error
}

func (e *EvalError) Error() string { return lexer.FormatError(e.Pos, e.Message()) }
func (e *EvalError) Message() string { return e.Err.Error() } // nolint: golint
func (e *EvalError) Position() lexer.Position { return e.Pos } // nolint: golint
func (e *EvalError) Unwrap() error { return e.Err }

// UnknownOperatorError is returned by Eval for an operator node with an unsupported symbol.
type UnknownOperatorError struct {
	Op  string
	Pos lexer.Position
}

func (u *UnknownOperatorError) Error() string { return lexer.FormatError(u.Pos, u.Message()) }
func (u *UnknownOperatorError) Message() string { return fmt.Sprintf("unknown operator %q", u.Op) } // nolint: golint
func (u *UnknownOperatorError) Position() lexer.Position { return u.Pos } // nolint: golint

// NestingError is returned by ParseString when parenthesised groups nest deeper than the Parser's
// limit.
type NestingError struct {
	Pos   lexer.Position
	Limit int
}

func (n *NestingError) Error() string { return lexer.FormatError(n.Pos, n.Message()) }
func (n *NestingError) Message() string { // nolint: golint
	return fmt.Sprintf("expression nested too deeply (limit %d)", n.Limit)
}
func (n *NestingError) Position() lexer.Position { return n.Pos } // nolint: golint
