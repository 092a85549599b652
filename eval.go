package rpn

import (
	"context"
	"log/slog"
	"math/big"
)

// Eval evaluates the program and returns the result. The result is undefined
// (false) if an operator is missing operands or the expression refers to an
// unbound variable. Arithmetic that produces NaN or an infinity is still
// defined.
//
// Only the expression at the end of the program is evaluated. Elements
// before it, left over when more operands were pushed than operators
// consumed, are ignored.
func (b *Brain) Eval() (float64, bool) {
	r, ok, rest := walk(b.prog, len(b.prog), b.leaf, undef[float64], applyf)
	b.logEval(r, ok, rest)
	return r, ok
}

// EvalBig evaluates the program to prec bits of precision. If prec is 0, it
// is 64. Besides the cases where Eval is undefined, the result is undefined
// where it would be NaN, e.g. 0÷0 or √ of a negative number.
//
// Trigonometric functions are computed with float64 precision.
func (b *Brain) EvalBig(prec uint) (r *big.Float, ok bool) {
	if prec == 0 {
		prec = 64
	}
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		if _, nan := e.(big.ErrNaN); !nan {
			panic(e)
		}
		r, ok = nil, false
	}()
	leaf := func(o *op) (*big.Float, bool) {
		x := new(big.Float).SetPrec(prec)
		switch o.kind {
		case opOperand:
			return x.SetFloat64(o.num), true
		case opConstant:
			c := bigconsts[o.sym]
			if c == nil {
				return nil, false
			}
			return c(x), true
		case opVariable:
			v, ok := b.vars[o.sym]
			if !ok {
				return nil, false
			}
			return x.SetFloat64(v), true
		default:
			panic("rpn: leaf on " + o.kind.String())
		}
	}
	apply := func(o *op, args []*big.Float) *big.Float {
		x := new(big.Float).SetPrec(prec)
		if o.kind == opUnary {
			return o.big1(x, args[0])
		}
		return o.big2(x, args[0], args[1])
	}
	r, ok, _ = walk(b.prog, len(b.prog), leaf, undef[*big.Float], apply)
	return r, ok
}

// leaf values an operand, constant, or variable reference.
func (b *Brain) leaf(o *op) (float64, bool) {
	switch o.kind {
	case opOperand:
		return o.num, true
	case opConstant:
		v, ok := constants[o.sym]
		return v, ok
	case opVariable:
		v, ok := b.vars[o.sym]
		return v, ok
	default:
		panic("rpn: leaf on " + o.kind.String())
	}
}

func applyf(o *op, args []float64) float64 {
	if o.kind == opUnary {
		return o.fn1(args[0])
	}
	return o.fn2(args[0], args[1])
}

// undef is the value of a missing operand during evaluation.
func undef[T any]() (T, bool) {
	var z T
	return z, false
}

func (b *Brain) logEval(r float64, ok bool, rest int) {
	l := b.log
	if l == nil {
		l = slog.Default()
	}
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("evaluated program",
		slog.Any("program", b.Program()),
		slog.Float64("result", r),
		slog.Bool("defined", ok),
		slog.Int("remainder", rest),
	)
}
