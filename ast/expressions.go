package ast

import "strconv"

type NumberExpr struct {
	Value float64
}

func (NumberExpr) expr() {}

func (n NumberExpr) Dump() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// VariableExpr references a symbol table entry, resolved at evaluation.
type VariableExpr struct {
	Name string
}

func (VariableExpr) expr() {}

func (v VariableExpr) Dump() string { return v.Name }

type ConstantExpr struct {
	Name Constant
}

func (ConstantExpr) expr() {}

func (c ConstantExpr) Dump() string { return string(c.Name) }

// UnaryExpr is a prefix operation. Only negation is parsed.
type UnaryExpr struct {
	Operator Operator
	Operand  Expr
}

func (UnaryExpr) expr() {}

func (u UnaryExpr) Dump() string {
	return "(" + u.Operator.String() + u.Operand.Dump() + ")"
}

type BinaryExpr struct {
	Left     Expr
	Operator Operator
	Right    Expr
}

func (BinaryExpr) expr() {}

func (b BinaryExpr) Dump() string {
	return dumpBinary(b.Left, b.Operator, b.Right)
}

type CallExpr struct {
	Func Func
	Arg  Expr
}

func (CallExpr) expr() {}

func (c CallExpr) Dump() string {
	return string(c.Func) + "(" + c.Arg.Dump() + ")"
}

// AssignmentExpr stores the value of Value under Name and yields it.
type AssignmentExpr struct {
	Name  string
	Value Expr
}

func (AssignmentExpr) expr() {}

func (a AssignmentExpr) Dump() string {
	return a.Name + " = " + a.Value.Dump()
}
