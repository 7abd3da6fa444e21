// Package parser turns one line of input into an expression tree.
//
// Grammar, loosest binding first:
//
//	line       = assignment | expr
//	assignment = variable '=' expr
//	expr       = term { ('+' | '-') term }
//	term       = power { ('*' | '/') power }
//	power      = unary [ '^' power ]
//	unary      = '-' unary | primary
//	primary    = number | constant | call | variable
//	           | '(' expr ')' | '[' expr ']' | '{' expr '}'
//	call       = ('sin' | 'cos' | 'tan' | 'sqrt') '(' expr ')'
//
// Note that unary minus binds tighter than '^', so -2^2 is 4.
package parser

import (
	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

type parser struct {
	lex *lexer.Lexer

	// strict rejects identifiers that are neither constants nor functions.
	strict bool

	nudLookupTable          lookupTable[nudHandler]
	ledLookupTable          lookupTable[ledHandler]
	bindingPowerLookupTable lookupTable[bindingPower]
}

// Option configures parsing.
type Option func(*parser)

// StrictIdentifiers makes any identifier other than a constant or a function
// name a parse error instead of a variable reference. Assignment is then
// impossible.
func StrictIdentifiers() Option {
	return func(p *parser) { p.strict = true }
}

func newParser(input string, opts ...Option) *parser {
	p := &parser{
		lex: lexer.New(input),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.createTokenLookups()
	return p
}

// Parse parses a single expression, which must span the whole input.
func Parse(input string, opts ...Option) (ast.Expr, error) {
	p := newParser(input, opts...)
	expr, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	if r := p.lex.Peek(); r != lexer.EOF {
		return nil, p.unexpected(r)
	}
	return expr, nil
}

// expect consumes the next rune if it is want, and fails with msg otherwise.
func (p *parser) expect(want rune, msg string) error {
	if p.lex.Peek() != want {
		return &SyntaxError{Col: p.lex.Pos(), Msg: msg}
	}
	p.lex.Advance()
	return nil
}
