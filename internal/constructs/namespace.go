package constructs

import (
	"github.com/cwbudde/go-webidl/internal/ast"
	"github.com/cwbudde/go-webidl/internal/lexer"
	"github.com/cwbudde/go-webidl/pkg/token"
)

// PeekNamespaceMember reports whether a NamespaceMember starts here: a
// readonly Attribute, or an Operation (spec.md §4.2).
func PeekNamespaceMember(t *lexer.Tokenizer) bool {
	readonly := peekPastExtendedAttributes(t, func(t *lexer.Tokenizer) bool {
		return t.Peek(0).Is("readonly")
	})
	return (readonly && PeekAttribute(t, false)) || PeekOperation(t)
}

// NewNamespaceMember commits a NamespaceMember.
func NewNamespaceMember(t *lexer.Tokenizer, checker DictionaryChecker) Construct {
	if PeekAttribute(t, false) {
		return NewAttribute(t, false)
	}
	return NewOperation(t, checker)
}

// Namespace is `namespace Identifier { NamespaceMember* } ;` (spec.md
// §3/§4.3).
type Namespace struct {
	Base
	MemberList
	NamespaceKeyword token.Token
	Ident            *ast.Identifier
	Open             token.Token
	Close            token.Token
	Partial          *token.Token
}

func (n *Namespace) FindArgument(name string, searchMembers bool) *ast.Argument {
	return n.MemberList.FindArgument(n, name, searchMembers)
}

func (n *Namespace) String() string {
	var body string
	if n.Partial != nil {
		body += n.Partial.Text
	}
	body += n.NamespaceKeyword.Text + n.Ident.String() + n.Open.Text
	for _, m := range n.Members() {
		body += m.String()
	}
	body += n.Close.Text
	return n.Render(n.extAttrsPrefix() + body)
}

// PeekNamespace reports whether a Namespace starts here.
func PeekNamespace(t *lexer.Tokenizer) bool {
	return peekPastExtendedAttributes(t, func(t *lexer.Tokenizer) bool {
		t.PushPosition()
		if t.Peek(0).Is("partial") {
			t.Next()
		}
		ok := t.Peek(0).Is("namespace")
		return t.PopPosition(ok)
	})
}

// NewNamespace commits a Namespace.
func NewNamespace(t *lexer.Tokenizer, checker DictionaryChecker) *Namespace {
	n := &Namespace{}
	n.Kind = "namespace"
	n.TakeLeading(t)
	n.parseExtendedAttributes(t)
	if t.Peek(0).Is("partial") {
		_, tok := ast.NextToken(t)
		n.Partial = &tok
		_, kw := ast.NextToken(t)
		n.NamespaceKeyword = kw
	} else {
		_, kw := ast.NextToken(t)
		n.NamespaceKeyword = kw
	}
	n.Ident = ast.NewIdentifier(t)
	n.NameText = n.Ident.Name()
	_, open := ast.NextToken(t)
	n.Open = open
	for !t.Peek(0).Is("}") && t.HasTokens() {
		if PeekNamespaceMember(t) {
			member := NewNamespaceMember(t, checker)
			member.SetParent(n)
			n.Append(member)
			continue
		}
		se := NewSyntaxError(t)
		se.SetParent(n)
		n.Append(se)
	}
	_, closeTok := ast.NextToken(t)
	n.Close = closeTok
	n.TakeTrailingSemicolon(t)
	return n
}
