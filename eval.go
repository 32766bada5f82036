package exprtree

import (
	"math"
	"strconv"

	"github.com/alecthomas/exprtree/lexer"
)

// Eval evaluates the tree to an integer.
func (t *Tree) Eval() (int64, error) {
	return t.Root.Eval()
}

// Eval evaluates the expression rooted at n, children before parents.
//
// "+", "-" and "*" wrap on overflow. "/" and "%" truncate toward zero. "^" with a non-negative
// exponent is computed exactly and fails with ErrOverflow if the result does not fit in an int64.
// A negative exponent is computed in floating point and truncated toward zero, so 5 ^ -1 is 0,
// while 0 ^ -1 fails with ErrOverflow.
func (n *Node) Eval() (int64, error) {
	if n.IsLiteral() {
		return ParseInt(n.Value, n.Pos)
	}
	left, err := n.Left.Eval()
	if err != nil {
		return 0, err
	}
	right, err := n.Right.Eval()
	if err != nil {
		return 0, err
	}
	switch n.Op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, &EvalError{Op: n.Op, Pos: n.Pos, Err: ErrDivisionByZero}
		}
		return left / right, nil
	case "%":
		if right == 0 {
			return 0, &EvalError{Op: n.Op, Pos: n.Pos, Err: ErrModuloByZero}
		}
		return left % right, nil
	case "^":
		result, ok := pow(left, right)
		if !ok {
			return 0, &EvalError{Op: n.Op, Pos: n.Pos, Err: ErrOverflow}
		}
		return result, nil
	}
	return 0, &UnknownOperatorError{Op: n.Op, Pos: n.Pos}
}

// ParseInt converts base 10 text at pos to an int64, returning a *NumericError on failure.
func ParseInt(text string, pos lexer.Position) (int64, error) {
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, &NumericError{Text: text, Pos: pos, Err: err}
	}
	return value, nil
}

func pow(base, exp int64) (int64, bool) {
	if exp < 0 {
		f := math.Pow(float64(base), float64(exp))
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int64(f), true
	}
	result := int64(1)
	for exp > 0 {
		var ok bool
		if exp&1 == 1 {
			if result, ok = mul(result, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp > 0 {
			if base, ok = mul(base, base); !ok {
				return 0, false
			}
		}
	}
	return result, true
}

// mul multiplies two int64s, reporting false on overflow.
func mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}
