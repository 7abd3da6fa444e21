package parser

import (
	"fmt"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

// closingBrackets maps each opening bracket to the one that must close it.
var closingBrackets = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
}

func parseExpr(p *parser, bp bindingPower) (ast.Expr, error) {
	// Parse the primary expression, always start with nud.
	r := p.lex.Peek()
	nudFn := p.nudFor(r)
	if nudFn == nil {
		return nil, p.unexpected(r)
	}
	left, err := nudFn(p)
	if err != nil {
		return nil, err
	}

	// While we have operators with a higher binding power, parse them using led.
	for {
		r := p.lex.Peek()
		opBP, ok := p.bindingPowerLookupTable[r]
		if !ok || opBP <= bp {
			return left, nil
		}
		left, err = p.ledLookupTable[r](p, left, opBP)
		if err != nil {
			return nil, err
		}
	}
}

func parseNumberExpr(p *parser) (ast.Expr, error) {
	value, _, err := p.lex.ScanNumber()
	if err != nil {
		return nil, err
	}
	return &ast.NumberExpr{Value: value}, nil
}

func parseIdentifierExpr(p *parser) (ast.Expr, error) {
	col := p.lex.Pos()
	name := p.lex.ScanIdentifier()
	if c, ok := ast.LookupConstant(name); ok {
		return &ast.ConstantExpr{Name: c}, nil
	}
	if fn, ok := ast.LookupFunc(name); ok {
		return parseCallExpr(p, fn)
	}
	if p.strict {
		return nil, &UnknownFunctionOrConstantError{Col: col, Name: name}
	}
	return &ast.VariableExpr{Name: name}, nil
}

func parseCallExpr(p *parser, fn ast.Func) (ast.Expr, error) {
	if err := p.expect('(', "Expected '(' after function"); err != nil {
		return nil, err
	}
	arg, err := parseExpr(p, bpAssignment)
	if err != nil {
		return nil, err
	}
	if err := p.expect(')', "Expected ')' after function argument"); err != nil {
		return nil, err
	}
	return &ast.CallExpr{Func: fn, Arg: arg}, nil
}

func parseGroupingExpr(p *parser) (ast.Expr, error) {
	closing := closingBrackets[p.lex.Advance()]
	inner, err := parseExpr(p, bpAssignment)
	if err != nil {
		return nil, err
	}
	if err := p.expect(closing, fmt.Sprintf("Expected '%c'", closing)); err != nil {
		return nil, err
	}
	return inner, nil
}

func parsePrefixExpr(p *parser) (ast.Expr, error) {
	op := ast.Operator(p.lex.Advance())
	operand, err := parseExpr(p, bpPrefix)
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{Operator: op, Operand: operand}, nil
}

func parseBinaryExpr(p *parser, left ast.Expr, bp bindingPower) (ast.Expr, error) {
	op := ast.Operator(p.lex.Advance())
	right, err := parseExpr(p, bp)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{Left: left, Operator: op, Right: right}, nil
}

// parsePowerExpr is parseBinaryExpr binding to the right: 2^3^2 is 2^(3^2).
func parsePowerExpr(p *parser, left ast.Expr, bp bindingPower) (ast.Expr, error) {
	op := ast.Operator(p.lex.Advance())
	right, err := parseExpr(p, bp-1)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{Left: left, Operator: op, Right: right}, nil
}

// parseAssignmentExpr is non-associative: the value cannot itself contain an
// assignment, so x = y = 1 fails on the second '='.
func parseAssignmentExpr(p *parser, left ast.Expr, bp bindingPower) (ast.Expr, error) {
	col := p.lex.Pos()
	p.lex.Advance()
	variable, ok := left.(*ast.VariableExpr)
	if !ok {
		return nil, &SyntaxError{Col: col, Msg: "Left side of assignment must be a variable"}
	}
	value, err := parseExpr(p, bp)
	if err != nil {
		return nil, err
	}
	return &ast.AssignmentExpr{Name: variable.Name, Value: value}, nil
}

func (p *parser) unexpected(r rune) error {
	if r == lexer.EOF {
		return &SyntaxError{Col: p.lex.Pos(), Msg: "Unexpected end of input"}
	}
	return &SyntaxError{Col: p.lex.Pos(), Msg: fmt.Sprintf("Unexpected character %q", r)}
}
