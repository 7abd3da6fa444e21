package executor

import (
	"strconv"
)

// UndefinedVariableError is an error from a lookup for a variable that was
// never set.
type UndefinedVariableError struct {
	Name string
}

func (err *UndefinedVariableError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// DivisionByZeroError is returned when the right operand of '/' is zero.
type DivisionByZeroError struct {
	Dividend float64
}

func (err *DivisionByZeroError) Error() string {
	return "Division by zero"
}

// NegativeSqrtError is returned when sqrt is called on a negative number.
type NegativeSqrtError struct {
	X float64
}

func (err *NegativeSqrtError) Error() string {
	return "Square root of negative number: " + strconv.FormatFloat(err.X, 'g', -1, 64)
}
