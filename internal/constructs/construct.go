// Package constructs implements the named, symbol-table-visible entities of
// spec.md §4.3: Interface, Mixin, Namespace, Dictionary, Enum, Typedef,
// Callback, Const, ImplementsStatement, IncludesStatement, the member
// dispatch families (InterfaceMember, MixinMember, NamespaceMember,
// DictionaryMember), the six ExtendedAttribute variants plus Unknown, and
// the SyntaxError recovery construct. Every Construct embeds Base, which in
// turn embeds ast.Production for the lossless trivia every node carries.
package constructs

import (
	"strings"

	"github.com/cwbudde/go-webidl/internal/ast"
	"github.com/cwbudde/go-webidl/internal/lexer"
)

// Resolver looks a simple name up in the owning Parser's symbol table. It is
// the "reference to the owning Parser" spec.md §3 gives every Construct,
// narrowed to the one capability constructs actually need: resolving a type
// name to its definition. Base stores one via SetResolver; the Parser's
// ArgumentList dictionary check and its Find lookups read the symbol table
// directly rather than through this interface.
type Resolver interface {
	Resolve(name string) Construct
}

// Construct is the common capability of every named top-level or
// member-level entity (spec.md §3, "Construct (abstract)").
type Construct interface {
	IdlType() string
	Name() string
	Parent() Construct
	SetParent(Construct)
	String() string
}

// HasArguments is implemented by every Construct with its own argument
// list: Operation, Constructor, Stringifier, StaticMember, AsyncIterable,
// the argument-list extended attributes, and Callback. Container.FindMethod/FindArgument use it to avoid a type switch
// over every member shape.
type HasArguments interface {
	Arguments() *ast.ArgumentList
}

// Trivia exposes the lossless whitespace and recovered-token trivia every
// Construct carries via its embedded Base/ast.Production, narrowed to what
// internal/markup needs to reproduce a construct's exact surrounding text
// (spec.md §3's serialization invariant) without internal/markup importing
// ast.Production directly. Every Construct satisfies this automatically
// through Base's promoted methods.
type Trivia interface {
	Leading() string
	Trailing() string
	TailText() string
	SemicolonText() string
}

// Base is embedded by every Construct. It owns the trivia (via
// ast.Production), the idl_type tag, the resolved name, the parent link,
// and the resolver used to look up sibling/ancestor definitions.
type Base struct {
	ast.Production
	Kind     string
	NameText string
	ExtAttrs *ExtendedAttributeList
	parent   Construct
	resolver Resolver
}

func (b *Base) IdlType() string       { return b.Kind }
func (b *Base) Name() string          { return b.NameText }
func (b *Base) Parent() Construct     { return b.parent }
func (b *Base) SetParent(p Construct) { b.parent = p }
func (b *Base) Resolver() Resolver    { return b.resolver }
func (b *Base) SetResolver(r Resolver) {
	b.resolver = r
}

// Leading returns the whitespace preceding the construct's first
// significant token.
func (b *Base) Leading() string { return b.LeadingSpace }

// Trailing returns the whitespace following the construct's trailing
// trivia (recovered tail tokens and/or semicolon).
func (b *Base) Trailing() string { return b.TrailingSpace }

// TailText renders any tokens recovered as trailing syntax-error trivia
// (spec.md §5, error recovery), concatenated verbatim.
func (b *Base) TailText() string {
	if len(b.Tail) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, tok := range b.Tail {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

// SemicolonText renders the construct's optional trailing `;`, or "" when
// it has none.
func (b *Base) SemicolonText() string {
	if b.Semicolon == nil {
		return ""
	}
	return b.Semicolon.Text
}

// extAttrsPrefix renders the leading "[ ... ] " extended-attribute block,
// or "" when there is none, for use by every Construct's String().
func (b *Base) extAttrsPrefix() string {
	if b.ExtAttrs == nil {
		return ""
	}
	return b.ExtAttrs.String()
}

// ExtendedAttributes returns the construct's leading `[ ... ]` list, or nil
// when it has none. Exported (unlike extAttrsPrefix) so internal/markup can
// decompose the list into its own markup subtree instead of inlining it as
// opaque text.
func (b *Base) ExtendedAttributes() *ExtendedAttributeList { return b.ExtAttrs }

// Complexity implements spec.md §6's per-construct complexity_factor term:
// 0 for a const, len(members)+1 for a container, 1 otherwise.
func Complexity(c Construct) int {
	switch v := c.(type) {
	case *Const:
		return 0
	case Container:
		return v.Len() + 1
	default:
		return 1
	}
}

// Container is the dual ordinal/name/method access interface spec.md §4.3
// gives Interface, Mixin, Namespace, Dictionary, and an interface-bodied
// Callback.
type Container interface {
	Construct
	Len() int
	MemberAt(i int) Construct
	Members() []Construct
	FindMember(name string) Construct
	FindMembers(name string) []Construct
	FindMethod(name string, argumentNames []string) Construct
	FindMethods(name string, argumentNames []string) []Construct
	FindArgument(name string, searchMembers bool) *ast.Argument
}

// MemberList implements the member-access half of Container; every
// container construct embeds it alongside Base.
type MemberList struct {
	members []Construct
}

func (m *MemberList) Len() int                 { return len(m.members) }
func (m *MemberList) MemberAt(i int) Construct  { return m.members[i] }
func (m *MemberList) Members() []Construct      { return m.members }

func (m *MemberList) Append(c Construct) {
	m.members = append(m.members, c)
}

// FindMember returns the last member with the given name, matching
// spec.md §4.3's "last write wins" convention.
func (m *MemberList) FindMember(name string) Construct {
	for i := len(m.members) - 1; i >= 0; i-- {
		if m.members[i].Name() == name {
			return m.members[i]
		}
	}
	return nil
}

// FindMembers returns every member with the given name, in declaration
// order.
func (m *MemberList) FindMembers(name string) []Construct {
	var out []Construct
	for _, c := range m.members {
		if c.Name() == name {
			out = append(out, c)
		}
	}
	return out
}

// FindMethod returns the last member named name whose argument list
// positionally matches argumentNames (spec.md §4.3).
func (m *MemberList) FindMethod(name string, argumentNames []string) Construct {
	for i := len(m.members) - 1; i >= 0; i-- {
		c := m.members[i]
		if c.Name() != name {
			continue
		}
		ha, ok := c.(HasArguments)
		if !ok {
			continue
		}
		if ha.Arguments().MatchesNames(argumentNames) {
			return c
		}
	}
	return nil
}

// FindMethods returns every matching member, in declaration order.
func (m *MemberList) FindMethods(name string, argumentNames []string) []Construct {
	var out []Construct
	for _, c := range m.members {
		if c.Name() != name {
			continue
		}
		ha, ok := c.(HasArguments)
		if !ok {
			continue
		}
		if ha.Arguments().MatchesNames(argumentNames) {
			out = append(out, c)
		}
	}
	return out
}

// FindArgument scans self's own arguments first (if self has any), then
// each member's arguments in reverse declaration order, matching
// spec.md §4.3's "own arguments, then members' arguments" rule.
func (m *MemberList) FindArgument(self Construct, name string, searchMembers bool) *ast.Argument {
	if ha, ok := self.(HasArguments); ok {
		if arg := findArgumentByName(ha.Arguments(), name); arg != nil {
			return arg
		}
	}
	if !searchMembers {
		return nil
	}
	for i := len(m.members) - 1; i >= 0; i-- {
		ha, ok := m.members[i].(HasArguments)
		if !ok {
			continue
		}
		if arg := findArgumentByName(ha.Arguments(), name); arg != nil {
			return arg
		}
	}
	return nil
}

func findArgumentByName(al *ast.ArgumentList, name string) *ast.Argument {
	if al == nil {
		return nil
	}
	for _, a := range al.Arguments {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

// peekPastExtendedAttributes reports whether match holds for the token
// stream once any leading `[ ... ]` list is skipped, without consuming
// anything itself. Every construct-level Peek function uses this so
// dispatch works the same whether or not a member carries its own
// extended-attribute list.
func peekPastExtendedAttributes(t *lexer.Tokenizer, match func(*lexer.Tokenizer) bool) bool {
	t.PushPosition()
	if PeekExtendedAttributeList(t) {
		NewExtendedAttributeList(t)
	}
	ok := match(t)
	t.PopPosition(false)
	return ok
}

// parseExtendedAttributes consumes an optional leading `[ ... ]` list and
// installs it on b, returning it so callers needing the rendered prefix
// for logging or peek decisions have it at hand.
func (b *Base) parseExtendedAttributes(t *lexer.Tokenizer) *ExtendedAttributeList {
	if !PeekExtendedAttributeList(t) {
		return nil
	}
	b.ExtAttrs = NewExtendedAttributeList(t)
	return b.ExtAttrs
}
