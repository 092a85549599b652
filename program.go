package rpn

import (
	"strconv"
	"strings"
	"unicode"
)

// Program returns the program as a list of tokens: operator and constant
// symbols, variable names, and formatted operands. The list can be handed to
// SetProgram on another Brain to rebuild an equivalent program.
func (b *Brain) Program() []string {
	r := make([]string, len(b.prog))
	for i, o := range b.prog {
		r[i] = o.String()
	}
	return r
}

// SetProgram replaces the program with one built from tokens. Each token that
// is a known symbol becomes that operation, each token that parses as a
// number becomes an operand, and every other token becomes a reference to a
// variable with that name. Every list of tokens is a valid program.
func (b *Brain) SetProgram(tokens []string) {
	prog := make([]*op, 0, len(tokens))
	for _, tok := range tokens {
		prog = append(prog, lexop(tok))
	}
	b.prog = prog
}

// lexop classifies a single token.
func lexop(tok string) *op {
	if o := knownOps[tok]; o != nil {
		return o
	}
	if v, err := strconv.ParseFloat(tok, 64); err == nil || isRangeErr(err) {
		// Out of range numbers parse to ±Inf or ±0, which is the value
		// they would display as anyway.
		return &op{kind: opOperand, num: v}
	}
	return &op{kind: opVariable, sym: tok}
}

func isRangeErr(err error) bool {
	e, ok := err.(*strconv.NumError)
	return ok && e.Err == strconv.ErrRange
}

// Fields splits a line of text into program tokens at whitespace. Commas
// also separate tokens, so the output of String for a program with several
// independent operands, like "1.0, 2.0", splits back into operands.
func Fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
