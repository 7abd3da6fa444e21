// Package config loads the calculator's YAML configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

type Config struct {
	Prompt            string             `yaml:"prompt"`
	Format            string             `yaml:"format"`
	Banner            bool               `yaml:"banner"`
	StrictIdentifiers bool               `yaml:"strict_identifiers"`
	ShowAST           bool               `yaml:"show_ast"`
	LogLevel          string             `yaml:"log_level"`
	Variables         map[string]float64 `yaml:"variables,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Prompt:   "> ",
		Format:   "%g",
		Banner:   true,
		LogLevel: "warn",
	}
}

// Load reads the file at path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML data over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the output format has exactly one float verb and that
// every preset variable could be written by an assignment.
func (c *Config) Validate() error {
	if n := countVerbs(c.Format); n != 1 {
		return fmt.Errorf("format %q must contain exactly one verb, got %d", c.Format, n)
	}
	if !strings.ContainsAny(verbOf(c.Format), "eEfFgGvxX") {
		return fmt.Errorf("format %q is not a float verb", c.Format)
	}
	for name := range c.Variables {
		l := lexer.New(name)
		if l.ScanIdentifier() != name {
			return fmt.Errorf("variable %q is not a valid identifier", name)
		}
		if ast.IsReserved(name) {
			return fmt.Errorf("variable %q is a reserved name", name)
		}
	}
	return nil
}

// countVerbs counts the formatting verbs in format, ignoring "%%".
func countVerbs(format string) int {
	n := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			i++
			continue
		}
		n++
	}
	return n
}

// verbOf returns the verb letter of the single directive in format.
func verbOf(format string) string {
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			i++
			continue
		}
		// Skip flags, width and precision.
		j := i + 1
		for j < len(format) && strings.IndexByte("+-# 0123456789.", format[j]) >= 0 {
			j++
		}
		if j < len(format) {
			return format[j : j+1]
		}
		return ""
	}
	return ""
}
