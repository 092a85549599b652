package rpn

import (
	"math"
	"math/big"
	"strconv"
)

// op is a single element of a program.
type op struct {
	kind opKind

	// sym is the display symbol of an operator or constant, or the name of
	// a variable.
	sym string
	num float64
	// prec is the rendering precedence of binary operators.
	prec int

	fn1 func(float64) float64
	fn2 func(a, b float64) float64

	// big1 and big2 are the arbitrary-precision forms of fn1 and fn2. They
	// set out and return it, panicking with big.ErrNaN outside their domain.
	big1 func(out, x *big.Float) *big.Float
	big2 func(out, a, b *big.Float) *big.Float
}

type opKind int8

const (
	opNone opKind = iota

	opOperand  // push num
	opVariable // push vars[sym]
	opConstant // push constants[sym]
	opUnary    // pop a, push fn1(a)
	opBinary   // pop a, pop b, push fn2(a, b)
)

var opKindNames = [...]string{"None", "Operand", "Variable", "Constant", "Unary", "Binary"}

func (k opKind) String() string {
	if k < 0 || int(k) >= len(opKindNames) {
		return "opKind(" + strconv.Itoa(int(k)) + ")"
	}
	return opKindNames[k]
}

// maxPrec is the precedence of everything that never needs brackets.
const maxPrec = math.MaxInt

// precedence returns the rendering precedence of the op.
func (o *op) precedence() int {
	if o.kind == opBinary {
		return o.prec
	}
	return maxPrec
}

// arity returns the number of operands the op consumes.
func (o *op) arity() int {
	switch o.kind {
	case opUnary:
		return 1
	case opBinary:
		return 2
	default:
		return 0
	}
}

// String returns the token for the op.
func (o *op) String() string {
	switch o.kind {
	case opOperand:
		return FormatOperand(o.num)
	case opVariable, opConstant, opUnary, opBinary:
		return o.sym
	default:
		panic("rpn: invalid op kind " + o.kind.String())
	}
}

// FormatOperand formats a number the way the calculator displays operands.
// Integers get a trailing ".0" so that they read as real numbers, e.g. 5.0.
// Magnitudes of at least 1e16 or below 1e-4 use exponent notation.
func FormatOperand(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	a := math.Abs(v)
	switch {
	case a != 0 && (a >= 1e16 || a < 1e-4):
		return strconv.FormatFloat(v, 'e', -1, 64)
	case v == math.Trunc(v):
		return strconv.FormatFloat(v, 'f', -1, 64) + ".0"
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}
