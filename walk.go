package rpn

// walk consumes the expression whose last element is prog[end-1], working
// from the tail toward the head of the program. Leaves are valued by leaf.
// Operators receive their operands from apply, nearest the top of the stack
// first, so for a binary operator args[0] is the right-hand operand and
// args[1] is the left-hand one. When the program runs out before an operator
// has all of its operands, missing supplies the rest.
//
// walk returns the expression's value, whether it is defined, and the index of
// the first element of the expression, i.e. the length of the remainder. If
// any leaf is undefined, the whole expression is undefined and the remainder
// is all of prog[:end].
//
// Pending operators are kept on an explicit stack rather than the call stack,
// so programs of any length are fine.
func walk[T any](prog []*op, end int, leaf func(*op) (T, bool), missing func() (T, bool), apply func(o *op, args []T) T) (T, bool, int) {
	var stk []frame[T]
	i := end
	for {
		var v T
		var ok bool
		if i > 0 {
			i--
			o := prog[i]
			if o.arity() > 0 {
				stk = append(stk, frame[T]{o: o})
				continue
			}
			v, ok = leaf(o)
		} else {
			v, ok = missing()
		}
		if !ok {
			var z T
			return z, false, end
		}
		// Hand v to the innermost waiting operator. Each operator that
		// becomes complete produces a value for the one below it.
		for {
			if len(stk) == 0 {
				return v, true, i
			}
			f := &stk[len(stk)-1]
			f.args[f.n] = v
			f.n++
			if f.n < f.o.arity() {
				break
			}
			v = apply(f.o, f.args[:f.n])
			stk = stk[:len(stk)-1]
		}
	}
}

// frame is an operator waiting for its operands.
type frame[T any] struct {
	o    *op
	args [2]T
	n    int
}
