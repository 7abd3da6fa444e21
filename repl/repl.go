// Package repl runs an interactive calculator session.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/kr/pretty"
	"github.com/rs/zerolog"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/executor"
	"go.creack.net/calc/parser"
)

// Session evaluates successive lines against one symbol table. A Session is
// not safe for concurrent use.
type Session struct {
	syms      *executor.SymbolTable
	parseOpts []parser.Option
	log       zerolog.Logger

	prompt  string
	format  string
	showAST bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

func WithLogger(log zerolog.Logger) SessionOption {
	return func(s *Session) { s.log = log }
}

func WithParseOptions(opts ...parser.Option) SessionOption {
	return func(s *Session) { s.parseOpts = append(s.parseOpts, opts...) }
}

// WithVariables presets variables in the session's table.
func WithVariables(vars map[string]float64) SessionOption {
	return func(s *Session) {
		for name, v := range vars {
			s.syms.Set(name, v)
		}
	}
}

// WithPrompt sets the prompt printed before each line read by Run.
func WithPrompt(prompt string) SessionOption {
	return func(s *Session) { s.prompt = prompt }
}

// WithFormat sets the fmt verb used to print results.
func WithFormat(format string) SessionOption {
	return func(s *Session) { s.format = format }
}

// WithShowAST makes Run print the parse tree of every line.
func WithShowAST(show bool) SessionOption {
	return func(s *Session) { s.showAST = show }
}

func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		syms:   executor.NewSymbolTable(),
		log:    zerolog.Nop(),
		prompt: "> ",
		format: "%g",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Symbols returns the session's symbol table.
func (s *Session) Symbols() *executor.SymbolTable {
	return s.syms
}

// Eval parses and evaluates one line.
func (s *Session) Eval(line string) (float64, error) {
	expr, err := s.parse(line)
	if err != nil {
		return 0, err
	}
	return s.evaluate(line, expr)
}

func (s *Session) parse(line string) (ast.Expr, error) {
	expr, err := parser.Parse(line, s.parseOpts...)
	if err != nil {
		s.log.Debug().Str("input", line).Err(err).Msg("parse failed")
		return nil, err
	}
	s.log.Debug().Str("input", line).Str("ast", expr.Dump()).Msg("parsed")
	return expr, nil
}

func (s *Session) evaluate(line string, expr ast.Expr) (float64, error) {
	v, err := executor.Evaluate(expr, s.syms)
	if err != nil {
		s.log.Debug().Str("input", line).Err(err).Msg("evaluation failed")
		return 0, err
	}
	s.log.Debug().Str("input", line).Float64("result", v).Msg("evaluated")
	return v, nil
}

// Run reads lines of any length from in until an empty line or EOF. Results go to out and
// errors to errOut; an error on one line does not end the session.
func (s *Session) Run(in io.Reader, out, errOut io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for {
		fmt.Fprint(out, s.prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		}
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			return nil
		}
		if s.command(line, out) {
			continue
		}
		s.EvalLine(line, out, errOut)
	}
}

// EvalLine evaluates line and prints its result to out, or its error to
// errOut. It reports whether the evaluation succeeded.
func (s *Session) EvalLine(line string, out, errOut io.Writer) bool {
	expr, err := s.parse(line)
	if err == nil {
		if s.showAST {
			fmt.Fprintf(out, "%# v\n", pretty.Formatter(expr))
		}
		var v float64
		if v, err = s.evaluate(line, expr); err == nil {
			fmt.Fprintf(out, "= "+s.format+"\n", v)
			return true
		}
	}
	fmt.Fprintf(errOut, "Error: %s\n", err)
	return false
}

// command handles the session commands, which start with ':'.
func (s *Session) command(line string, out io.Writer) bool {
	switch strings.TrimSpace(line) {
	case ":vars":
		for _, name := range s.syms.Names() {
			v, _ := s.syms.Get(name)
			fmt.Fprintf(out, "%s = "+s.format+"\n", name, v)
		}
		return true
	case ":clear":
		s.syms.Clear()
		s.log.Debug().Msg("symbol table cleared")
		return true
	}
	return false
}

// Banner prints the greeting shown before an interactive session.
func Banner(w io.Writer) {
	fmt.Fprint(w, `Math Expression Calculator
Enter expressions (empty line to exit):
Examples:
  2 + 3 * 4
  x = 5
  x * 2
  sin(pi/2)
  1.23e-4
  sqrt(16)
Commands: :vars lists variables, :clear removes them.

`)
}
