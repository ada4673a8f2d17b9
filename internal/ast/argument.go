package ast

import (
	"strings"

	"github.com/cwbudde/go-webidl/internal/lexer"
	"github.com/cwbudde/go-webidl/pkg/token"
)

// Default is the `= ConstValue|String|[]|{}` initializer of an optional
// Argument or Dictionary member.
type Default struct {
	Production
	body string
}

func (d *Default) String() string { return d.Render(d.body) }

// PeekDefault reports whether a Default starts here.
func PeekDefault(t *lexer.Tokenizer) bool {
	return t.Peek(0).Is("=")
}

// NewDefault commits a Default.
func NewDefault(t *lexer.Tokenizer) *Default {
	d := &Default{}
	d.TakeLeading(t)
	var sb strings.Builder
	sb.WriteString(t.Next().Text) // "="
	switch {
	case t.Peek(0).Is("["):
		ws1, open := nextTok(t)
		ws2, closeTok := nextTok(t)
		sb.WriteString(ws1 + open.Text + ws2 + closeTok.Text)
	case t.Peek(0).Is("{"):
		ws1, open := nextTok(t)
		ws2, closeTok := nextTok(t)
		sb.WriteString(ws1 + open.Text + ws2 + closeTok.Text)
	default:
		ws, tok := nextTok(t)
		sb.WriteString(ws + tok.Text)
	}
	d.body = sb.String()
	return d
}

// ArgumentName is an Identifier, or one of the ARGUMENT_NAME_KEYWORDS
// (productions.py ArgumentName).
type ArgumentName struct {
	Production
	Token token.Token
}

func (n *ArgumentName) Name() string   { return n.Token.Name() }
func (n *ArgumentName) String() string { return n.Render(n.Token.Text) }

// PeekArgumentName reports whether an ArgumentName starts here.
func PeekArgumentName(t *lexer.Tokenizer) bool {
	tok := t.Peek(0)
	return tok.Kind == token.Identifier || lexer.IsArgumentNameKeyword(tok.Text)
}

// NewArgumentName commits an ArgumentName.
func NewArgumentName(t *lexer.Tokenizer) *ArgumentName {
	n := &ArgumentName{}
	n.TakeLeading(t)
	n.Token = t.Next()
	return n
}

// Argument is a single parameter of an operation, constructor, or
// callback signature (spec.md §3, "Argument"). It is modeled as a
// production here, not a Construct: query code that needs to look an
// argument up by name (Container.FindArgument, spec.md §4.3) operates
// directly on this data rather than requiring Argument to implement the
// full Construct interface, since WebIDL never names an argument in the
// symbol table and never gives it members of its own.
type Argument struct {
	Production
	Optional   bool
	Variadic   bool
	Type       *TypeWithExtendedAttributes
	ArgName    *ArgumentName
	Default    *Default
	Ellipsis   *token.Token
	commaAfter string
}

func (a *Argument) Name() string { return a.ArgName.Name() }

func (a *Argument) String() string {
	var sb strings.Builder
	if a.Optional {
		sb.WriteString("optional")
	}
	sb.WriteString(a.Type.String())
	if a.Ellipsis != nil {
		sb.WriteString(a.Ellipsis.Text)
	}
	sb.WriteString(a.ArgName.String())
	if a.Default != nil {
		sb.WriteString(a.Default.String())
	}
	return a.Render(sb.String())
}

// PeekArgument reports whether an Argument starts here.
func PeekArgument(t *lexer.Tokenizer) bool {
	tok := t.PushPosition()
	ok := tok.Is("optional") || PeekTypeWithExtendedAttributes(t)
	return t.PopPosition(ok)
}

// NewArgument commits an Argument.
func NewArgument(t *lexer.Tokenizer) *Argument {
	a := &Argument{}
	a.TakeLeading(t)
	if t.Peek(0).Is("optional") {
		t.Next()
		a.Optional = true
		// the whitespace between "optional" and the type is folded into
		// the type's own leading space by NewTypeWithExtendedAttributes
	}
	if PeekIgnoreInOut(t) {
		NewIgnoreInOut(t) // legacy stray in/out, reported via did_ignore
	}
	a.Type = NewTypeWithExtendedAttributes(t)
	if t.Peek(0).Is("...") {
		tok := t.Next()
		a.Ellipsis = &tok
		a.Variadic = true
	}
	a.ArgName = NewArgumentName(t)
	if PeekDefault(t) {
		a.Default = NewDefault(t)
	}
	return a
}

// DictionaryChecker resolves a type name to whether it names a dictionary
// that has no required members, for ArgumentList rule 3 of spec.md §4.2.
// A nil checker (used for standalone ArgumentList parses with no owning
// symbol table, e.g. normalized-method-name re-tokenization) disables the
// check entirely, matching the original's behavior when constructed
// without a parser.
type DictionaryChecker func(typeName string) (isDictionaryWithoutRequired bool)

// ArgumentList is the comma-separated Argument sequence of an operation,
// constructor, or callback signature. Construction enforces the three
// ordering rules of spec.md §4.2 via reports to the tokenizer's UI sink;
// none of them abort the parse.
type ArgumentList struct {
	Production
	Arguments []*Argument
	Commas    []token.Token
}

func (al *ArgumentList) String() string {
	var sb strings.Builder
	for i, arg := range al.Arguments {
		sb.WriteString(arg.String())
		if i < len(al.Commas) {
			sb.WriteString(al.Commas[i].Text)
		}
	}
	return al.Render(sb.String())
}

// PeekArgumentList reports whether an ArgumentList starts here. An empty
// argument list is always valid (the production may match zero
// arguments), so this always succeeds; it exists for symmetry with every
// other production's peek/new pair and for NormalizedMethodName's use
// described in spec.md §4.4.
func PeekArgumentList(t *lexer.Tokenizer) bool {
	return true
}

// NewArgumentList commits an ArgumentList, applying checker (which may be
// nil) to every required argument's type.
func NewArgumentList(t *lexer.Tokenizer, checker DictionaryChecker) *ArgumentList {
	al := &ArgumentList{}
	al.TakeLeading(t)
	if !PeekArgument(t) {
		return al
	}
	al.Arguments = append(al.Arguments, NewArgument(t))
	for t.Peek(0).Is(",") {
		comma := t.Next()
		al.Commas = append(al.Commas, comma)
		al.Arguments = append(al.Arguments, NewArgument(t))
	}
	al.checkOrdering(t, checker)
	return al
}

func (al *ArgumentList) checkOrdering(t *lexer.Tokenizer, checker DictionaryChecker) {
	for i, arg := range al.Arguments {
		pos := arg.ArgName.Token.Pos
		if i > 0 {
			prev := al.Arguments[i-1]
			if prev.Variadic {
				t.Error(pos, "argument", "'"+arg.Name()+"'", "follows a variadic argument")
			}
			if prev.Optional && !prev.Variadic && !arg.Optional && !arg.Variadic {
				t.Error(pos, "required argument", "'"+arg.Name()+"'", "follows optional argument", "'"+prev.Name()+"'")
			}
		}
		if !arg.Optional && !arg.Variadic && checker != nil {
			hasMoreRequired := false
			for _, later := range al.Arguments[i+1:] {
				if !later.Optional && !later.Variadic {
					hasMoreRequired = true
					break
				}
			}
			if !hasMoreRequired && checker(arg.Type.Type.Name) {
				t.Error(pos, "argument", "'"+arg.Name()+"'", "must be optional: its type has no required members")
			}
		}
	}
}

// ArgumentNames returns the canonical and progressively-shorter
// argument-name variants of spec.md §4.4 ("Argument-name variants"): the
// canonical form names every argument (variadic ones prefixed with
// "..."); then each trailing optional argument is dropped in turn, down
// to the empty signature.
func (al *ArgumentList) ArgumentNames() []string {
	names := make([]string, len(al.Arguments))
	for i, arg := range al.Arguments {
		if arg.Variadic {
			names[i] = "..." + arg.Name()
		} else {
			names[i] = arg.Name()
		}
	}
	variants := []string{strings.Join(names, ", ")}
	for i := len(al.Arguments) - 1; i >= 0; i-- {
		if !al.Arguments[i].Optional {
			break
		}
		names = names[:i]
		variants = append(variants, strings.Join(names, ", "))
	}
	return variants
}

// MatchesNames reports whether argumentNames positionally matches this
// list per spec.md §4.3's FindMethod matching rule: for each position,
// either a name is supplied and the argument exists with exactly that
// name, or no name is supplied and every remaining argument from that
// position on is optional or variadic.
func (al *ArgumentList) MatchesNames(argumentNames []string) bool {
	if argumentNames == nil {
		return true
	}
	for i := range al.Arguments {
		if i >= len(argumentNames) {
			for _, rest := range al.Arguments[i:] {
				if !(rest.Optional || rest.Variadic) {
					return false
				}
			}
			return true
		}
		want := argumentNames[i]
		if want == "" {
			if !(al.Arguments[i].Optional || al.Arguments[i].Variadic) {
				return false
			}
			continue
		}
		if al.Arguments[i].Name() != strings.TrimPrefix(want, "...") {
			return false
		}
	}
	return len(argumentNames) <= len(al.Arguments)
}
