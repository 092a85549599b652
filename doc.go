// Package rpn implements the engine of a reverse Polish calculator.
//
// A Brain holds a program: operands, variable references, constants, and
// operators, in the order they were entered. Pushing an operand or performing
// an operation appends to the program and reevaluates it. Operators consume
// operands from the end of the program, so
//
//	5 3 −
//
// is 5−3 = 2. Results are (value, ok) pairs; ok is false when the program
// can't be evaluated, e.g. because an operator lacks operands or a variable
// is unbound.
//
// The same program can be described in infix notation with String, and moved
// between brains as a list of tokens with Program and SetProgram. Variables
// let you build a program once and evaluate it for many inputs, which is how
// the graph package plots it.
//
package rpn
