package lexer

import "fmt"

// NumberFormatError indicates a malformed number literal.
type NumberFormatError struct {
	// Col is the column where the literal starts.
	Col int
	// Text is the literal scanned up to and including the invalid rune.
	Text string
	// Reason describes what is wrong with the literal.
	Reason string
}

func (err *NumberFormatError) Error() string {
	return fmt.Sprintf("%d: invalid number %q: %s", err.Col, err.Text, err.Reason)
}

func (err *NumberFormatError) Pos() int {
	return err.Col
}
