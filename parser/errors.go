package parser

import (
	"strconv"

	"go.creack.net/calc/lexer"
)

// SyntaxError indicates structurally malformed input.
type SyntaxError struct {
	// Col is the column of the offending rune.
	Col int
	Msg string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, err.Msg)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// UnknownFunctionOrConstantError indicates an identifier that is neither a
// constant nor a function, when parsing with StrictIdentifiers.
type UnknownFunctionOrConstantError struct {
	// Col is the column where the identifier starts.
	Col  int
	Name string
}

func (err *UnknownFunctionOrConstantError) Error() string {
	return errpos(err.Col, "Unknown identifier: "+err.Name)
}

func (err *UnknownFunctionOrConstantError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input to Parse implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column of the rune that caused the error.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*UnknownFunctionOrConstantError)(nil)
	_ InputError = (*lexer.NumberFormatError)(nil)
)
