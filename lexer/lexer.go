// Package lexer provides the character cursor used by the expression parser.
//
// There is no token stream: the parser inspects one rune at a time with Peek
// and consumes it with Advance, and calls ScanNumber or ScanIdentifier when a
// multi-rune token starts.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// EOF is returned by Peek and Advance at the end of the input.
const EOF rune = -1

const digits = "0123456789"

type Lexer struct {
	input string

	pos int // Current byte position in input.
	col int // Number of runes consumed so far.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Peek skips whitespace and returns the current rune without consuming it.
func (l *Lexer) Peek() rune {
	l.skipWhitespace()
	return l.peek()
}

// Advance skips whitespace, then consumes and returns the current rune.
func (l *Lexer) Advance() rune {
	l.skipWhitespace()
	return l.next()
}

// Pos returns the 1-based rune column of the next unread rune.
func (l *Lexer) Pos() int {
	return l.col + 1
}

// Rest returns the unread input.
func (l *Lexer) Rest() string {
	return l.input[l.pos:]
}

func (l *Lexer) skipWhitespace() {
	for unicode.IsSpace(l.peek()) {
		l.next()
	}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		return EOF
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	l.col++
	return r
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return EOF
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

// accept consumes the next rune if it is in valid.
func (l *Lexer) accept(valid string) bool {
	if r := l.peek(); r != EOF && strings.ContainsRune(valid, r) {
		l.next()
		return true
	}
	return false
}

// acceptRun consumes a run of runes from valid.
func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for l.accept(valid) {
		accepted = true
	}
	return accepted
}

// IsNumberStart reports whether r begins a number literal.
func IsNumberStart(r rune) bool {
	return r == '.' || (r >= '0' && r <= '9')
}

// IsIdentifierStart reports whether r begins an identifier.
func IsIdentifierStart(r rune) bool {
	return r != EOF && unicode.IsLetter(r)
}

func isIdentifierRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
