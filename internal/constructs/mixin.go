package constructs

import (
	"github.com/cwbudde/go-webidl/internal/ast"
	"github.com/cwbudde/go-webidl/internal/lexer"
	"github.com/cwbudde/go-webidl/pkg/token"
)

// PeekMixinMember reports whether a MixinMember starts here: Const,
// Stringifier, Attribute (inherit disallowed), or Operation, in that order
// (spec.md §4.2).
func PeekMixinMember(t *lexer.Tokenizer) bool {
	switch {
	case PeekConst(t):
	case PeekStringifier(t):
	case PeekAttribute(t, false):
	case PeekOperation(t):
	default:
		return false
	}
	return true
}

// NewMixinMember commits a MixinMember.
func NewMixinMember(t *lexer.Tokenizer, checker DictionaryChecker) Construct {
	switch {
	case PeekConst(t):
		return NewConst(t)
	case PeekStringifier(t):
		return NewStringifier(t)
	case PeekAttribute(t, false):
		return NewAttribute(t, false)
	default:
		return NewOperation(t, checker)
	}
}

// Mixin is `interface mixin Identifier { MixinMember* } ;` (spec.md
// §3/§4.3) — a Container whose members are included into an interface or
// namespace via an IncludesStatement rather than by inheritance.
type Mixin struct {
	Base
	MemberList
	InterfaceKeyword token.Token
	MixinKeyword     token.Token
	Ident            *ast.Identifier
	Open             token.Token
	Close            token.Token
	Partial          *token.Token
}

func (m *Mixin) FindArgument(name string, searchMembers bool) *ast.Argument {
	return m.MemberList.FindArgument(m, name, searchMembers)
}

func (m *Mixin) String() string {
	var body string
	if m.Partial != nil {
		body += m.Partial.Text
	}
	body += m.InterfaceKeyword.Text + m.MixinKeyword.Text + m.Ident.String() + m.Open.Text
	for _, mem := range m.Members() {
		body += mem.String()
	}
	body += m.Close.Text
	return m.Render(m.extAttrsPrefix() + body)
}

// PeekMixin reports whether `interface mixin` starts here.
func PeekMixin(t *lexer.Tokenizer) bool {
	return PeekInterfaceMixin(t)
}

// NewMixin commits a Mixin.
func NewMixin(t *lexer.Tokenizer, checker DictionaryChecker) *Mixin {
	m := &Mixin{}
	m.Kind = "mixin"
	m.TakeLeading(t)
	m.parseExtendedAttributes(t)
	if t.Peek(0).Is("partial") {
		_, tok := ast.NextToken(t)
		m.Partial = &tok
		_, kw := ast.NextToken(t)
		m.InterfaceKeyword = kw
	} else {
		_, kw := ast.NextToken(t)
		m.InterfaceKeyword = kw
	}
	_, mixinKw := ast.NextToken(t)
	m.MixinKeyword = mixinKw
	m.Ident = ast.NewIdentifier(t)
	m.NameText = m.Ident.Name()
	_, open := ast.NextToken(t)
	m.Open = open
	for !t.Peek(0).Is("}") && t.HasTokens() {
		if PeekMixinMember(t) {
			member := NewMixinMember(t, checker)
			member.SetParent(m)
			m.Append(member)
			continue
		}
		se := NewSyntaxError(t)
		se.SetParent(m)
		m.Append(se)
	}
	_, closeTok := ast.NextToken(t)
	m.Close = closeTok
	m.TakeTrailingSemicolon(t)
	return m
}
