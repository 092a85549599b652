package rpn

import (
	"math"
	"math/big"
	"sort"

	"github.com/zephyrtronium/bigfloat"
)

// Operator symbols understood by Perform.
const (
	Pi       = "π"
	Div      = "÷"
	Mul      = "×"
	Add      = "+"
	Sub      = "−"
	Sqrt     = "√"
	Sin      = "sin"
	Cos      = "cos"
	Tan      = "tan"
	FlipSign = "ᐩ/-"
)

// knownOps maps display symbols to operations. It is filled once by init and
// never modified afterward.
var knownOps = map[string]*op{}

// constants holds the values of named constants.
var constants = map[string]float64{
	Pi: math.Pi,
}

// bigconsts computes named constants to the precision of out.
var bigconsts = map[string]func(out *big.Float) *big.Float{
	Pi: bigfloat.Pi,
}

func init() {
	learn(&op{kind: opConstant, sym: Pi})
	learn(dyadic(Div, 2, func(a, b float64) float64 { return b / a }, func(out, a, b *big.Float) *big.Float {
		return out.Quo(b, a)
	}))
	learn(dyadic(Mul, 2, func(a, b float64) float64 { return a * b }, (*big.Float).Mul))
	learn(dyadic(Add, 1, func(a, b float64) float64 { return a + b }, (*big.Float).Add))
	learn(dyadic(Sub, 1, func(a, b float64) float64 { return b - a }, func(out, a, b *big.Float) *big.Float {
		return out.Sub(b, a)
	}))
	learn(monadic(Sqrt, math.Sqrt, (*big.Float).Sqrt))
	learn(monadic(Sin, math.Sin, viaFloat64(math.Sin)))
	learn(monadic(Cos, math.Cos, viaFloat64(math.Cos)))
	learn(monadic(Tan, math.Tan, viaFloat64(math.Tan)))
	learn(monadic(FlipSign, func(x float64) float64 { return -x }, (*big.Float).Neg))
}

// learn registers an operation under its display symbol.
func learn(o *op) {
	knownOps[o.sym] = o
}

func monadic(sym string, f func(float64) float64, g func(out, x *big.Float) *big.Float) *op {
	return &op{kind: opUnary, sym: sym, fn1: f, big1: g}
}

func dyadic(sym string, prec int, f func(a, b float64) float64, g func(out, a, b *big.Float) *big.Float) *op {
	return &op{kind: opBinary, sym: sym, prec: prec, fn2: f, big2: g}
}

// viaFloat64 adapts a float64 function to big.Float. The result has only
// float64 precision.
func viaFloat64(f func(float64) float64) func(out, x *big.Float) *big.Float {
	return func(out, x *big.Float) *big.Float {
		v, _ := x.Float64()
		// SetFloat64 panics with big.ErrNaN when f leaves its domain.
		return out.SetFloat64(f(v))
	}
}

// Known reports whether sym names a built-in operator or constant.
func Known(sym string) bool {
	_, ok := knownOps[sym]
	return ok
}

// Symbols returns the symbols of all built-in operators and constants in
// sorted order.
func Symbols() []string {
	r := make([]string, 0, len(knownOps))
	for k := range knownOps {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}
