package parser

import "github.com/cwbudde/go-webidl/internal/constructs"

// SymbolTable maps a top-level declared name to the Construct that last
// declared it (spec.md §3, "Symbol table: last-write-wins map"). It may be
// shared across multiple Parser instances via WithSymbolTable; the package
// performs no locking, so a caller sharing one across goroutines must
// serialize writes itself (spec.md §5).
type SymbolTable struct {
	order []string
	types map[string]constructs.Construct
}

// NewSymbolTable returns an empty SymbolTable.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{types: make(map[string]constructs.Construct)}
}

// AddType installs c under its own name, overwriting any prior entry but
// preserving that name's original position in Keys() order (spec.md §8,
// "Partial and re-declared entries overwrite in declaration order").
func (s *SymbolTable) AddType(c constructs.Construct) {
	name := c.Name()
	if _, exists := s.types[name]; !exists {
		s.order = append(s.order, name)
	}
	s.types[name] = c
}

// GetType returns the construct last registered under name, or nil.
func (s *SymbolTable) GetType(name string) constructs.Construct {
	return s.types[name]
}

// Resolve implements constructs.Resolver.
func (s *SymbolTable) Resolve(name string) constructs.Construct {
	return s.GetType(name)
}

// Keys returns every registered name in first-declaration order.
func (s *SymbolTable) Keys() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Has reports whether name is registered.
func (s *SymbolTable) Has(name string) bool {
	_, ok := s.types[name]
	return ok
}

// Len returns the number of distinct registered names.
func (s *SymbolTable) Len() int { return len(s.order) }
