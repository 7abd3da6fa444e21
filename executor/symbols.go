package executor

import "sort"

// SymbolTable maps variable names to values. It is not safe for concurrent
// use; each session owns its own table.
type SymbolTable struct {
	vars map[string]float64
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{vars: map[string]float64{}}
}

// Set defines or redefines a variable.
func (s *SymbolTable) Set(name string, value float64) {
	if s.vars == nil {
		s.vars = map[string]float64{}
	}
	s.vars[name] = value
}

// Get returns the value of a variable, or an *UndefinedVariableError if it
// was never set.
func (s *SymbolTable) Get(name string) (float64, error) {
	v, ok := s.vars[name]
	if !ok {
		return 0, &UndefinedVariableError{Name: name}
	}
	return v, nil
}

func (s *SymbolTable) Has(name string) bool {
	_, ok := s.vars[name]
	return ok
}

// Clear removes all variables.
func (s *SymbolTable) Clear() {
	clear(s.vars)
}

func (s *SymbolTable) Len() int {
	return len(s.vars)
}

// Names returns the defined variable names in sorted order.
func (s *SymbolTable) Names() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
