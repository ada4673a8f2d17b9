// Package parser implements the top-level WebIDL document parser:
// dispatching top-level forms in precedence order, accumulating a
// construct list across repeated Parse calls, and the query API
// (Find/FindAll, NormalizedMethodName[s], Keys/Get/Has/Len) spec.md §4.4
// and §6 describe.
package parser

import (
	"strings"

	"github.com/cwbudde/go-webidl/errors"
	"github.com/cwbudde/go-webidl/internal/ast"
	"github.com/cwbudde/go-webidl/internal/constructs"
	"github.com/cwbudde/go-webidl/internal/lexer"
	"github.com/cwbudde/go-webidl/internal/markup"
)

// Option configures a Parser at construction time, the same
// functional-options idiom internal/lexer uses for WithUI.
type Option func(*Parser)

// WithUI attaches a diagnostic sink. Without one, diagnostics are silently
// discarded (the same default internal/lexer.Tokenizer has with a nil ui).
func WithUI(ui errors.UI) Option {
	return func(p *Parser) { p.ui = ui }
}

// WithSymbolTable supplies a pre-existing SymbolTable, letting several
// Parsers share one name→Construct map (spec.md §5).
func WithSymbolTable(st *SymbolTable) Option {
	return func(p *Parser) { p.symbols = st }
}

// Parser accumulates the top-level Constructs parsed from one or more
// calls to Parse, backed by a SymbolTable for name resolution.
type Parser struct {
	ui         errors.UI
	symbols    *SymbolTable
	constructs []constructs.Construct
}

// New creates a Parser. With no WithSymbolTable option it starts with a
// fresh, unshared SymbolTable.
func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	if p.symbols == nil {
		p.symbols = NewSymbolTable()
	}
	return p
}

// Parse tokenizes and parses text, appending every top-level construct it
// finds to p's existing list (spec.md §4.4: "parse appends to the
// existing list — multiple calls accumulate"). The returned error is
// always nil today: WebIDL parsing has no fatal condition (spec.md §7,
// "There are no fatal errors"); the signature stays honest for future
// callers that feed Parse file contents read from disk.
func (p *Parser) Parse(text string) error {
	t := lexer.New(text, lexer.WithUI(p.ui))
	for t.HasTokens() {
		c := p.parseTopLevel(t)
		c.SetParent(nil)
		p.register(c)
		p.constructs = append(p.constructs, c)
	}
	return nil
}

// checker adapts the symbol table into the closure
// ast.NewArgumentList/constructs.NewOperation (etc.) need for the
// dictionary-without-required-members ordering check (spec.md §4.2 rule
// 3): a required argument whose type names a dictionary with no required
// members of its own must itself be optional.
func (p *Parser) checker() constructs.DictionaryChecker {
	return func(typeName string) bool {
		d, ok := p.symbols.GetType(typeName).(*constructs.Dictionary)
		if !ok {
			return false
		}
		return !d.Required(func(name string) *constructs.Dictionary {
			dd, _ := p.symbols.GetType(name).(*constructs.Dictionary)
			return dd
		})
	}
}

// register installs c's name in the symbol table when c is one of the
// named, symbol-table-visible top-level forms (spec.md §3): Interface,
// Mixin, Namespace, Dictionary, Enum, Typedef, Callback. ImplementsStatement,
// IncludesStatement, and legacy top-level Const are never registered.
func (p *Parser) register(c constructs.Construct) {
	switch c.(type) {
	case *constructs.Interface, *constructs.Mixin, *constructs.Namespace,
		*constructs.Dictionary, *constructs.Enum, *constructs.Typedef,
		*constructs.Callback:
		p.symbols.AddType(c)
	}
}

// parseTopLevel dispatches one top-level form in the precedence order
// spec.md §4.4 specifies: Callback, Interface, Mixin, Namespace,
// Dictionary, Enum, Typedef, Const (legacy), ImplementsStatement,
// IncludesStatement; otherwise a SyntaxError.
func (p *Parser) parseTopLevel(t *lexer.Tokenizer) constructs.Construct {
	checker := p.checker()
	switch {
	case constructs.PeekCallback(t):
		return constructs.NewCallback(t, checker)
	case constructs.PeekInterfaceMixin(t):
		return constructs.NewMixin(t, checker)
	case constructs.PeekInterface(t):
		return constructs.NewInterface(t, checker)
	case constructs.PeekNamespace(t):
		return constructs.NewNamespace(t, checker)
	case constructs.PeekDictionary(t):
		return constructs.NewDictionary(t)
	case constructs.PeekEnum(t):
		return constructs.NewEnum(t)
	case constructs.PeekTypedef(t):
		return constructs.NewTypedef(t)
	case constructs.PeekConst(t):
		return constructs.NewConst(t)
	case constructs.PeekImplementsStatement(t):
		return constructs.NewImplementsStatement(t)
	case constructs.PeekIncludesStatement(t):
		return constructs.NewIncludesStatement(t)
	default:
		return constructs.NewSyntaxError(t)
	}
}

// Constructs returns every top-level construct in declaration order.
func (p *Parser) Constructs() []constructs.Construct {
	return p.constructs
}

// Len returns the number of top-level constructs.
func (p *Parser) Len() int { return len(p.constructs) }

// Keys returns the names of every symbol-table-visible top-level
// construct, in first-declaration order (spec.md §6, "keys() returns
// member names in declaration order").
func (p *Parser) Keys() []string { return p.symbols.Keys() }

// Get returns the construct registered under name in the symbol table, or
// nil.
func (p *Parser) Get(name string) constructs.Construct { return p.symbols.GetType(name) }

// Has reports whether name is registered in the symbol table.
func (p *Parser) Has(name string) bool { return p.symbols.Has(name) }

// SymbolTable returns the Parser's underlying symbol table, for sharing
// via WithSymbolTable with another Parser.
func (p *Parser) SymbolTable() *SymbolTable { return p.symbols }

// ComplexityFactor sums, over every top-level construct, len(members)+1
// for a container, 0 for a const, 1 otherwise (spec.md §6).
func (p *Parser) ComplexityFactor() int {
	total := 0
	for _, c := range p.constructs {
		total += constructs.Complexity(c)
	}
	return total
}

// String renders every top-level construct back to back, yielding exactly
// the input text when Parse was given unmodified WebIDL (spec.md §6,
// "str(parser) yields exactly the input text when unmodified").
func (p *Parser) String() string {
	var sb strings.Builder
	for _, c := range p.constructs {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Markup renders every top-level construct through marker, a caller-supplied
// set of hook interfaces from internal/markup (ConstructMarker, TypeMarker,
// NameMarker, ...), decorating each named element with whatever head/tail
// text the corresponding hook returns. A nil marker (or one implementing
// none of the hooks) yields exactly String()'s output, since every
// undecorated hook falls back to `("", "")` (spec.md §6, §8 "Markup
// identity": `parser.markup(noop) == str(parser)`).
func (p *Parser) Markup(marker any) string {
	root := markup.NewGenerator(nil)
	for _, c := range p.constructs {
		markup.AttachConstruct(root, c)
	}
	return root.Markup(marker)
}

// GoString renders debug information: one line per top-level construct
// naming its idl_type and name (spec.md §6's "__repr__" analogue).
func (p *Parser) GoString() string {
	var sb strings.Builder
	for _, c := range p.constructs {
		sb.WriteString(c.IdlType())
		sb.WriteString(" ")
		sb.WriteString(c.Name())
		sb.WriteString("\n")
	}
	return sb.String()
}

// stripArgumentParens repeatedly collapses a trailing `(...)` span,
// matching spec.md §4.4 find's step 1 ("repeatedly replace
// prefix(args)suffix with prefixsuffix until no parens remain").
func stripArgumentParens(name string) string {
	for {
		open := strings.IndexByte(name, '(')
		if open < 0 {
			return name
		}
		depth := 0
		closeIdx := -1
		for i := open; i < len(name); i++ {
			switch name[i] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					closeIdx = i
				}
			}
			if closeIdx >= 0 {
				break
			}
		}
		if closeIdx < 0 {
			return name[:open]
		}
		name = name[:open] + name[closeIdx+1:]
	}
}

// splitPath splits a stripped name on "/" or "." into 1-3 segments
// (spec.md §4.4 find's step 2).
func splitPath(name string) []string {
	sep := "/"
	if !strings.ContainsRune(name, '/') && strings.ContainsRune(name, '.') {
		sep = "."
	}
	if !strings.Contains(name, sep) {
		return []string{name}
	}
	parts := strings.SplitN(name, sep, 3)
	return parts
}
