package rpn

import (
	"log/slog"
)

// Vars maps variable names to their values.
type Vars map[string]float64

// Brain is a reverse Polish calculator. It holds a program of operands and
// operations, which it evaluates and describes on demand, and reads variable
// values from a binding table which may be shared with the caller.
//
// A Brain is not safe for concurrent use. Use one Brain per expression, or
// Clone it.
type Brain struct {
	prog []*op
	vars Vars
	log  *slog.Logger
}

// Option is an option used when creating a Brain.
type Option interface {
	brainOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt Vars
	logopt  struct{ l *slog.Logger }
)

func (varopt) brainOption()  {}
func (varsopt) brainOption() {}
func (logopt) brainOption()  {}

// SetVar sets the value of a variable in the brain's bindings.
func SetVar(name string, val float64) Option {
	return varopt{name, val}
}

// WithVars makes the brain read variables from vars. The map is shared, not
// copied, so the caller may change bindings between evaluations. Options
// applied after WithVars, like SetVar, write into vars.
func WithVars(vars Vars) Option {
	return varsopt(vars)
}

// WithLogger sets the logger which receives debug records of evaluations.
// The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return logopt{l}
}

// New creates a Brain with an empty program.
func New(opts ...Option) *Brain {
	b := &Brain{}
	b.apply(opts)
	return b
}

// Clone creates a copy of the brain's program with its own bindings, which
// start as a copy of the brain's, and applies options to it.
func (b *Brain) Clone(opts ...Option) *Brain {
	n := &Brain{
		prog: make([]*op, len(b.prog)),
		vars: make(Vars, len(b.vars)),
		log:  b.log,
	}
	copy(n.prog, b.prog)
	for k, v := range b.vars {
		n.vars[k] = v
	}
	n.apply(opts)
	return n
}

func (b *Brain) apply(opts []Option) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varsopt:
			b.vars = Vars(opt)
		case varopt:
			b.Set(opt.name, opt.val)
		case logopt:
			b.log = opt.l
		default:
			panic("rpn: unknown option type")
		}
	}
	if b.log == nil {
		b.log = slog.Default()
	}
}

// Push appends an operand to the program and returns the new result.
func (b *Brain) Push(v float64) (float64, bool) {
	b.prog = append(b.prog, &op{kind: opOperand, num: v})
	return b.Eval()
}

// PushVar appends a reference to a variable to the program and returns the
// new result. The variable does not need to be bound yet.
func (b *Brain) PushVar(name string) (float64, bool) {
	b.prog = append(b.prog, &op{kind: opVariable, sym: name})
	return b.Eval()
}

// Perform appends the operator or constant named by sym to the program and
// returns the new result. Unknown symbols are ignored.
func (b *Brain) Perform(sym string) (float64, bool) {
	if o := knownOps[sym]; o != nil {
		b.prog = append(b.prog, o)
	}
	return b.Eval()
}

// Clear empties the program. Variable bindings are unchanged.
func (b *Brain) Clear() {
	b.prog = b.prog[:0]
}

// Len returns the number of elements in the program.
func (b *Brain) Len() int {
	return len(b.prog)
}

// Set sets the value of a variable. Returns b for chaining.
func (b *Brain) Set(name string, value float64) *Brain {
	if b.vars == nil {
		b.vars = make(Vars)
	}
	b.vars[name] = value
	return b
}

// Unset removes a variable binding.
func (b *Brain) Unset(name string) {
	delete(b.vars, name)
}

// Lookup returns the value of a variable and whether it is bound.
func (b *Brain) Lookup(name string) (float64, bool) {
	v, ok := b.vars[name]
	return v, ok
}

// Vars returns the brain's live binding table. Changes to it are seen by
// later evaluations.
func (b *Brain) Vars() Vars {
	if b.vars == nil {
		b.vars = make(Vars)
	}
	return b.vars
}
