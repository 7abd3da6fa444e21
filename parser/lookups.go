package parser

import (
	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

type bindingPower int

const (
	bpDefault bindingPower = iota
	bpAssignment
	bpAdditive
	bpMultiplicative
	bpPower
	bpPrefix
)

type nudHandler func(*parser) (ast.Expr, error)
type ledHandler func(*parser, ast.Expr, bindingPower) (ast.Expr, error)

type lookupTable[T any] map[rune]T

func (p *parser) led(r rune, bp bindingPower, fn ledHandler) {
	if _, ok := p.ledLookupTable[r]; ok {
		panic("duplicate led handler")
	}
	p.ledLookupTable[r] = fn
	p.bindingPowerLookupTable[r] = bp
}

func (p *parser) nud(r rune, fn nudHandler) {
	if _, ok := p.nudLookupTable[r]; ok {
		panic("duplicate nud handler")
	}
	p.nudLookupTable[r] = fn
}

// nudFor returns the handler for an expression starting with r, or nil.
func (p *parser) nudFor(r rune) nudHandler {
	if fn, ok := p.nudLookupTable[r]; ok {
		return fn
	}
	if lexer.IsNumberStart(r) {
		return parseNumberExpr
	}
	if lexer.IsIdentifierStart(r) {
		return parseIdentifierExpr
	}
	return nil
}

func (p *parser) createTokenLookups() {
	p.nudLookupTable = lookupTable[nudHandler]{}
	p.ledLookupTable = lookupTable[ledHandler]{}
	p.bindingPowerLookupTable = lookupTable[bindingPower]{}

	// Assignment.
	p.led('=', bpAssignment, parseAssignmentExpr)

	// Additive, multiplicative & power.
	p.led('+', bpAdditive, parseBinaryExpr)
	p.led('-', bpAdditive, parseBinaryExpr)
	p.led('*', bpMultiplicative, parseBinaryExpr)
	p.led('/', bpMultiplicative, parseBinaryExpr)
	p.led('^', bpPower, parsePowerExpr)

	// Grouping & negation. Numbers and identifiers are dispatched by nudFor.
	for open := range closingBrackets {
		p.nud(open, parseGroupingExpr)
	}
	p.nud('-', parsePrefixExpr)
}
