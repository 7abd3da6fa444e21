// Package ast defines the syntax tree of an arithmetic expression.
package ast

import "fmt"

// Expr is a node of the tree. The set of implementations is closed: only the
// types in this package satisfy it.
type Expr interface {
	// Dump renders the expression fully parenthesized.
	Dump() string
	expr()
}

// Operator is a unary or binary operator.
type Operator rune

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '/'
	OpPow Operator = '^'
)

func (op Operator) String() string {
	return string(op)
}

// Constant is the name of a predefined constant.
type Constant string

const (
	ConstPi Constant = "pi"
	ConstE  Constant = "e"
)

// LookupConstant reports whether name is a constant.
func LookupConstant(name string) (Constant, bool) {
	switch c := Constant(name); c {
	case ConstPi, ConstE:
		return c, true
	}
	return "", false
}

// Func is the name of a builtin function of one argument.
type Func string

const (
	FuncSin  Func = "sin"
	FuncCos  Func = "cos"
	FuncTan  Func = "tan"
	FuncSqrt Func = "sqrt"
)

// LookupFunc reports whether name is a builtin function.
func LookupFunc(name string) (Func, bool) {
	switch f := Func(name); f {
	case FuncSin, FuncCos, FuncTan, FuncSqrt:
		return f, true
	}
	return "", false
}

// IsReserved reports whether name is a constant or a function, i.e. it
// cannot name a variable.
func IsReserved(name string) bool {
	if _, ok := LookupConstant(name); ok {
		return true
	}
	_, ok := LookupFunc(name)
	return ok
}

func dumpBinary(left Expr, op Operator, right Expr) string {
	return fmt.Sprintf("(%s %s %s)", left.Dump(), op, right.Dump())
}
