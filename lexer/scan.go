package lexer

import (
	"errors"
	"strconv"
)

// ScanNumber consumes a number literal starting at the current rune and
// returns its value and text. A literal is a run of digits with at most one
// decimal point, optionally followed by a single exponent: e or E, an
// optional sign and at least one digit. Values too large for a float64 are an
// error; values too small round to zero or a subnormal.
func (l *Lexer) ScanNumber() (float64, string, error) {
	l.skipWhitespace()
	start, col := l.pos, l.Pos()

	var dot, exp bool
scan:
	for {
		switch r := l.peek(); {
		case r >= '0' && r <= '9':
			l.acceptRun(digits)
		case r == '.':
			l.next()
			if exp {
				return 0, "", l.numberError(start, col, "decimal point in exponent")
			}
			if dot {
				return 0, "", l.numberError(start, col, "multiple decimal points")
			}
			dot = true
		case r == 'e' || r == 'E':
			l.next()
			if exp {
				return 0, "", l.numberError(start, col, "multiple exponent markers")
			}
			exp = true
			l.accept("+-")
			if !l.acceptRun(digits) {
				// Include the offending rune in the error text.
				if r := l.peek(); r != EOF {
					l.next()
				}
				return 0, "", l.numberError(start, col, "expected digit after exponent marker")
			}
		default:
			break scan
		}
	}

	text := l.input[start:l.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		reason := "malformed literal"
		if errors.Is(err, strconv.ErrRange) {
			reason = "value out of range"
		}
		return 0, text, l.numberError(start, col, reason)
	}
	return v, text, nil
}

// ScanIdentifier consumes an identifier starting at the current rune: a
// letter followed by letters, digits or underscores. The result is empty if
// the current rune does not start an identifier.
func (l *Lexer) ScanIdentifier() string {
	l.skipWhitespace()
	start := l.pos
	if !IsIdentifierStart(l.peek()) {
		return ""
	}
	for isIdentifierRune(l.peek()) {
		l.next()
	}
	return l.input[start:l.pos]
}

func (l *Lexer) numberError(start, col int, reason string) error {
	return &NumberFormatError{
		Col:    col,
		Text:   l.input[start:l.pos],
		Reason: reason,
	}
}
