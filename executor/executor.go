// Package executor evaluates expression trees against a symbol table.
package executor

import (
	"fmt"
	"math"

	"go.creack.net/calc/ast"
)

// constants holds the values of ast.Constant names.
var constants = map[ast.Constant]float64{
	ast.ConstPi: math.Pi,
	ast.ConstE:  math.E,
}

func evaluateBinary(expr *ast.BinaryExpr, syms *SymbolTable) (float64, error) {
	left, err := Evaluate(expr.Left, syms)
	if err != nil {
		return 0, err
	}
	right, err := Evaluate(expr.Right, syms)
	if err != nil {
		return 0, err
	}
	switch expr.Operator {
	case ast.OpAdd:
		return left + right, nil
	case ast.OpSub:
		return left - right, nil
	case ast.OpMul:
		return left * right, nil
	case ast.OpDiv:
		if right == 0 {
			return 0, &DivisionByZeroError{Dividend: left}
		}
		return left / right, nil
	case ast.OpPow:
		return math.Pow(left, right), nil
	default:
		panic(fmt.Errorf("unsupported binary operator %q", expr.Operator))
	}
}

func evaluateUnary(expr *ast.UnaryExpr, syms *SymbolTable) (float64, error) {
	v, err := Evaluate(expr.Operand, syms)
	if err != nil {
		return 0, err
	}
	switch expr.Operator {
	case ast.OpSub:
		return -v, nil
	default:
		panic(fmt.Errorf("unsupported unary operator %q", expr.Operator))
	}
}

func evaluateCall(expr *ast.CallExpr, syms *SymbolTable) (float64, error) {
	arg, err := Evaluate(expr.Arg, syms)
	if err != nil {
		return 0, err
	}
	switch expr.Func {
	case ast.FuncSin:
		return math.Sin(arg), nil
	case ast.FuncCos:
		return math.Cos(arg), nil
	case ast.FuncTan:
		return math.Tan(arg), nil
	case ast.FuncSqrt:
		if arg < 0 {
			return 0, &NegativeSqrtError{X: arg}
		}
		return math.Sqrt(arg), nil
	default:
		panic(fmt.Errorf("unsupported function %q", expr.Func))
	}
}

func evaluateAssignment(expr *ast.AssignmentExpr, syms *SymbolTable) (float64, error) {
	v, err := Evaluate(expr.Value, syms)
	if err != nil {
		return 0, err
	}
	syms.Set(expr.Name, v)
	return v, nil
}

// Evaluate computes the value of expr. Variables are read from syms, and
// assignments write to it. A failed evaluation leaves syms unchanged.
func Evaluate(expr ast.Expr, syms *SymbolTable) (float64, error) {
	switch e := expr.(type) {
	case *ast.NumberExpr:
		return e.Value, nil
	case *ast.VariableExpr:
		return syms.Get(e.Name)
	case *ast.ConstantExpr:
		v, ok := constants[e.Name]
		if !ok {
			panic(fmt.Errorf("unsupported constant %q", e.Name))
		}
		return v, nil
	case *ast.UnaryExpr:
		return evaluateUnary(e, syms)
	case *ast.BinaryExpr:
		return evaluateBinary(e, syms)
	case *ast.CallExpr:
		return evaluateCall(e, syms)
	case *ast.AssignmentExpr:
		return evaluateAssignment(e, syms)
	default:
		panic(fmt.Errorf("unsupported expr type %T", e))
	}
}
