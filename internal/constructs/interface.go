package constructs

import (
	"github.com/cwbudde/go-webidl/internal/ast"
	"github.com/cwbudde/go-webidl/internal/lexer"
	"github.com/cwbudde/go-webidl/pkg/token"
)

// PeekInterfaceMember reports whether an InterfaceMember starts here, tried
// in the precedence order spec.md §4.2 requires: Const, Stringifier,
// StaticMember, AsyncIterable, Iterable, Maplike, Setlike, Attribute,
// Operation (special or regular).
func PeekInterfaceMember(t *lexer.Tokenizer) bool {
	switch {
	case PeekConst(t):
	case PeekStringifier(t):
	case PeekStaticMember(t):
	case PeekAsyncIterable(t):
	case PeekIterable(t):
	case PeekMaplike(t):
	case PeekSetlike(t):
	case PeekAttribute(t, true):
	case PeekOperation(t):
	default:
		return false
	}
	return true
}

// NewInterfaceMember commits an InterfaceMember, dispatching in the same
// precedence order PeekInterfaceMember checks. checker (may be nil) is
// threaded to every member form that owns an ArgumentList.
func NewInterfaceMember(t *lexer.Tokenizer, checker DictionaryChecker) Construct {
	switch {
	case PeekConst(t):
		return NewConst(t)
	case PeekStringifier(t):
		return NewStringifier(t)
	case PeekStaticMember(t):
		return NewStaticMember(t, checker)
	case PeekAsyncIterable(t):
		return NewAsyncIterable(t)
	case PeekIterable(t):
		return NewIterable(t)
	case PeekMaplike(t):
		return NewMaplike(t)
	case PeekSetlike(t):
		return NewSetlike(t)
	case PeekAttribute(t, true):
		return NewAttribute(t, true)
	default:
		return NewOperation(t, checker)
	}
}

// Interface is `interface Identifier Inheritance? { InterfaceMember* } ;`
// (spec.md §3/§4.3). Constructor and NamedConstructor extended attributes
// are lifted into the member list as synthesized Constructor members ahead
// of the body's own members, matching declaration order in the original
// attribute list.
type Interface struct {
	Base
	MemberList
	InterfaceKeyword token.Token
	Ident            *ast.Identifier
	Inherit          *ast.Inheritance
	Open             token.Token
	Close            token.Token
	Partial          *token.Token
}

func (i *Interface) FindArgument(name string, searchMembers bool) *ast.Argument {
	return i.MemberList.FindArgument(i, name, searchMembers)
}

func (i *Interface) String() string {
	var body string
	if i.Partial != nil {
		body += i.Partial.Text
	}
	body += i.InterfaceKeyword.Text + i.Ident.String()
	if i.Inherit != nil {
		body += i.Inherit.String()
	}
	body += i.Open.Text
	for _, m := range i.Members() {
		body += m.String()
	}
	body += i.Close.Text
	return i.Render(i.extAttrsPrefix() + body)
}

// PeekInterface reports whether an Interface starts here (partial? interface,
// excluding the mixin form).
func PeekInterface(t *lexer.Tokenizer) bool {
	return peekPastExtendedAttributes(t, func(t *lexer.Tokenizer) bool {
		t.PushPosition()
		if t.Peek(0).Is("partial") {
			t.Next()
		}
		ok := t.Peek(0).Is("interface") && !t.Peek(1).Is("mixin")
		return t.PopPosition(ok)
	})
}

// NewInterface commits an Interface. checker (may be nil) is threaded to
// every member's ArgumentList.
func NewInterface(t *lexer.Tokenizer, checker DictionaryChecker) *Interface {
	i := &Interface{}
	i.Kind = "interface"
	i.TakeLeading(t)
	i.parseExtendedAttributes(t)
	if t.Peek(0).Is("partial") {
		_, tok := ast.NextToken(t)
		i.Partial = &tok
		_, kw := ast.NextToken(t)
		i.InterfaceKeyword = kw
	} else {
		_, kw := ast.NextToken(t)
		i.InterfaceKeyword = kw
	}
	i.Ident = ast.NewIdentifier(t)
	i.NameText = i.Ident.Name()
	if ast.PeekInheritance(t) {
		i.Inherit = ast.NewInheritance(t)
	}
	_, open := ast.NextToken(t)
	i.Open = open

	for _, ctor := range liftConstructors(i.ExtAttrs, i.NameText) {
		ctor.SetParent(i)
		i.Append(ctor)
	}

	for !t.Peek(0).Is("}") && t.HasTokens() {
		if PeekInterfaceMember(t) {
			member := NewInterfaceMember(t, checker)
			member.SetParent(i)
			i.Append(member)
			continue
		}
		se := NewSyntaxError(t)
		se.SetParent(i)
		i.Append(se)
	}
	_, closeTok := ast.NextToken(t)
	i.Close = closeTok
	i.TakeTrailingSemicolon(t)
	return i
}

// PeekInterfaceMixin reports whether `partial? interface mixin` starts here.
func PeekInterfaceMixin(t *lexer.Tokenizer) bool {
	return peekPastExtendedAttributes(t, func(t *lexer.Tokenizer) bool {
		t.PushPosition()
		if t.Peek(0).Is("partial") {
			t.Next()
		}
		ok := t.Peek(0).Is("interface") && t.Peek(1).Is("mixin")
		return t.PopPosition(ok)
	})
}
