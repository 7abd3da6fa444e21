package parser

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

func TestParser(t *testing.T) {
	expr, err := Parse("bar = foo * 10 + [45 / 10 - -5]")
	require.NoError(t, err)

	want := &ast.AssignmentExpr{
		Name: "bar",
		Value: &ast.BinaryExpr{
			Left: &ast.BinaryExpr{
				Left:     &ast.VariableExpr{Name: "foo"},
				Operator: ast.OpMul,
				Right:    &ast.NumberExpr{Value: 10},
			},
			Operator: ast.OpAdd,
			Right: &ast.BinaryExpr{
				Left: &ast.BinaryExpr{
					Left:     &ast.NumberExpr{Value: 45},
					Operator: ast.OpDiv,
					Right:    &ast.NumberExpr{Value: 10},
				},
				Operator: ast.OpSub,
				Right:    &ast.UnaryExpr{Operator: ast.OpSub, Operand: &ast.NumberExpr{Value: 5}},
			},
		},
	}
	assert.Equal(t, want, expr, "diff: %v", pretty.Diff(want, expr))
}

func TestParseTrees(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "number", input: "42", want: "42"},
		{name: "decimal", input: "3.25", want: "3.25"},
		{name: "scientific", input: "1.5e3", want: "1500"},
		{name: "variable", input: "x", want: "x"},
		{name: "pi", input: "pi", want: "pi"},
		{name: "e", input: "e", want: "e"},
		{name: "paren", input: "(x)", want: "x"},
		{name: "square", input: "[x]", want: "x"},
		{name: "curly", input: "{x}", want: "x"},
		{name: "nested brackets", input: "([{{[((x))]}}])", want: "x"},

		{name: "neg", input: "-x", want: "(-x)"},
		{name: "negneg", input: "--5", want: "(-(-5))"},
		{name: "add", input: "x+y", want: "(x + y)"},
		{name: "sub", input: "x-y", want: "(x - y)"},
		{name: "mul", input: "x*y", want: "(x * y)"},
		{name: "div", input: "x/y", want: "(x / y)"},
		{name: "pow", input: "x^y", want: "(x ^ y)"},

		{name: "add4", input: "w+x+y+z", want: "(((w + x) + y) + z)"},
		{name: "sub4", input: "w-x-y-z", want: "(((w - x) - y) - z)"},
		{name: "mul4", input: "w*x*y*z", want: "(((w * x) * y) * z)"},
		{name: "div4", input: "w/x/y/z", want: "(((w / x) / y) / z)"},
		{name: "pow4", input: "w^x^y^z", want: "(w ^ (x ^ (y ^ z)))"},
		{name: "mixed sub add", input: "a-b+c", want: "((a - b) + c)"},
		{name: "mixed div mul", input: "a/b*c", want: "((a / b) * c)"},

		{name: "desc", input: "w^x*y+z", want: "(((w ^ x) * y) + z)"},
		{name: "asc", input: "w+x*y^z", want: "(w + (x * (y ^ z)))"},
		{name: "grouping", input: "(2+3)*4", want: "((2 + 3) * 4)"},
		{name: "negpow", input: "-2^2", want: "((-2) ^ 2)"},
		{name: "powneg", input: "2^-1", want: "(2 ^ (-1))"},
		{name: "negsub", input: "-x-x", want: "((-x) - x)"},
		{name: "neg grouping", input: "-(1+2)", want: "(-(1 + 2))"},

		{name: "call", input: "sin(x)", want: "sin(x)"},
		{name: "call space", input: "sqrt (16)", want: "sqrt(16)"},
		{name: "call expr", input: "cos(pi/2)", want: "cos((pi / 2))"},
		{name: "call nested", input: "sqrt(sin(x)^2 + cos(x)^2)", want: "sqrt(((sin(x) ^ 2) + (cos(x) ^ 2)))"},
		{name: "neg call", input: "-tan(0)", want: "(-tan(0))"},
		{name: "call pow", input: "sin(x)^2", want: "(sin(x) ^ 2)"},

		{name: "assign", input: "x = 5", want: "x = 5"},
		{name: "assign expr", input: "y = x * 2 + 1", want: "y = ((x * 2) + 1)"},
		{name: "assign self", input: "x = x + 1", want: "x = (x + 1)"},

		{name: "whitespace", input: " \t2 +   3\t*4  ", want: "(2 + (3 * 4))"},
		{name: "no whitespace", input: "2+3*4", want: "(2 + (3 * 4))"},
		{name: "identifier digits", input: "x1 + y_2", want: "(x1 + y_2)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.input)
			require.NoError(t, err, "parse %q", tt.input)
			assert.Equal(t, tt.want, expr.Dump(), "tree: %# v", pretty.Formatter(expr))
		})
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
		col   int
	}{
		{name: "empty", input: "", msg: "Unexpected end of input", col: 1},
		{name: "blank", input: "   ", msg: "Unexpected end of input", col: 4},
		{name: "trailing operator", input: "2 + ", msg: "Unexpected end of input", col: 5},
		{name: "double operator", input: "2^^3", msg: "Unexpected character '^'", col: 3},
		{name: "leading operator", input: "*2", msg: "Unexpected character '*'", col: 1},
		{name: "unary plus", input: "+2", msg: "Unexpected character '+'", col: 1},
		{name: "unclosed paren", input: "(2 + 3", msg: "Expected ')'", col: 7},
		{name: "mismatched square", input: "[2 + 3)", msg: "Expected ']'", col: 7},
		{name: "mismatched curly", input: "{2 + 3]", msg: "Expected '}'", col: 7},
		{name: "stray closer", input: "2 + 3)", msg: "Unexpected character ')'", col: 6},
		{name: "empty brackets", input: "()", msg: "Unexpected character ')'", col: 2},
		{name: "function without paren", input: "sin 2", msg: "Expected '(' after function", col: 5},
		{name: "function with square", input: "sqrt[4]", msg: "Expected '(' after function", col: 5},
		{name: "function unclosed", input: "cos(0", msg: "Expected ')' after function argument", col: 6},
		{name: "function bare", input: "sqrt", msg: "Expected '(' after function", col: 5},
		{name: "unknown call", input: "unknown(2)", msg: "Unexpected character '('", col: 8},
		{name: "juxtaposition", input: "2 3", msg: "Unexpected character '3'", col: 3},
		{name: "implicit multiplication", input: "2pi", msg: "Unexpected character 'p'", col: 2},
		{name: "unknown character", input: "2 $ 3", msg: "Unexpected character '$'", col: 3},
		{name: "underscore start", input: "_x", msg: "Unexpected character '_'", col: 1},
		{name: "assign to number", input: "5 = x", msg: "Left side of assignment must be a variable", col: 3},
		{name: "assign to constant", input: "pi = 3", msg: "Left side of assignment must be a variable", col: 4},
		{name: "assign to expression", input: "x + 1 = 2", msg: "Left side of assignment must be a variable", col: 7},
		{name: "assign to negation", input: "-x = 2", msg: "Left side of assignment must be a variable", col: 4},
		{name: "chained assignment", input: "x = y = 1", msg: "Left side of assignment must be a variable", col: 7},
		{name: "assign in brackets", input: "(x = 1)", msg: "Expected ')'", col: 4},
		{name: "assign in argument", input: "sin(x = 1)", msg: "Expected ')' after function argument", col: 7},
		{name: "assign without value", input: "x =", msg: "Unexpected end of input", col: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.input)
			require.Error(t, err, "parsed %q as %s", tt.input, dump(expr))
			assert.Nil(t, expr)

			var serr *SyntaxError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.msg, serr.Msg)
			assert.Equal(t, tt.col, serr.Pos())
		})
	}
}

func TestParseNumberFormatErrors(t *testing.T) {
	for _, input := range []string{"1.2.3", "2 + 1e", "1e2e3", "3 * 1e+", ".", "1e5.3"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			var nerr *lexer.NumberFormatError
			require.ErrorAs(t, err, &nerr, "input %q", input)

			var ierr InputError
			require.ErrorAs(t, err, &ierr)
		})
	}
}

func TestParseStrictIdentifiers(t *testing.T) {
	for _, input := range []string{"sin(pi/2)", "e^2", "sqrt(16) * -pi"} {
		_, err := Parse(input, StrictIdentifiers())
		assert.NoError(t, err, "input %q", input)
	}

	tests := []struct {
		input string
		name  string
		col   int
	}{
		{input: "x", name: "x", col: 1},
		{input: "2 * foo", name: "foo", col: 5},
		{input: "unknown(2)", name: "unknown", col: 1},
		{input: "x = 5", name: "x", col: 1},
		{input: "sqrt(y)", name: "y", col: 6},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input, StrictIdentifiers())
			var uerr *UnknownFunctionOrConstantError
			require.ErrorAs(t, err, &uerr)
			assert.Equal(t, tt.name, uerr.Name)
			assert.Equal(t, tt.col, uerr.Pos())
			assert.Contains(t, err.Error(), "Unknown identifier: "+tt.name)
		})
	}
}

func TestParseIsFresh(t *testing.T) {
	// Each call gets its own cursor; parsing the same input twice yields
	// equal trees.
	a, err := Parse("2 + 2")
	require.NoError(t, err)
	b, err := Parse("2 + 2")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.NotSame(t, a, b)
}

func dump(expr ast.Expr) string {
	if expr == nil {
		return "<nil>"
	}
	return expr.Dump()
}
