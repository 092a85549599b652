package rpn

// phrase is a rendered subexpression.
type phrase struct {
	text string
	prec int
}

// String describes the program in infix notation. When the program holds
// several independent expressions, they are separated by ", " in the order
// they were entered. Operands that an operator is missing are rendered as
// nothing, so a lone "+" describes as "+".
func (b *Brain) String() string {
	var s string
	end := len(b.prog)
	for {
		p, _, rest := walk(b.prog, end, describeLeaf, nothing, describeOp)
		if s == "" {
			s = p.text
		} else {
			s = p.text + ", " + s
		}
		end = rest
		if end == 0 {
			return s
		}
	}
}

// Title describes only the last expression in the program.
func (b *Brain) Title() string {
	p, _, _ := walk(b.prog, len(b.prog), describeLeaf, nothing, describeOp)
	return p.text
}

func describeLeaf(o *op) (phrase, bool) {
	return phrase{o.String(), o.precedence()}, true
}

func nothing() (phrase, bool) {
	return phrase{"", maxPrec}, true
}

func describeOp(o *op, args []phrase) phrase {
	if o.kind == opUnary {
		return phrase{o.sym + "(" + args[0].text + ")", o.precedence()}
	}
	// Only the right operand is checked. The left one is always bare.
	r := args[0].text
	if o.prec > args[0].prec {
		r = "(" + r + ")"
	}
	return phrase{args[1].text + o.sym + r, o.prec}
}
