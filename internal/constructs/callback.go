package constructs

import (
	"github.com/cwbudde/go-webidl/internal/ast"
	"github.com/cwbudde/go-webidl/internal/lexer"
	"github.com/cwbudde/go-webidl/pkg/token"
)

// Callback is `callback Identifier = ReturnType ( ArgumentList ) ;` (the
// function form), or `callback interface Identifier Inheritance? {
// InterfaceMember* } ;` (the interface form, e.g. EventListener-shaped
// callbacks) — spec.md §3/§4.3. Only the interface form is a Container.
type Callback struct {
	Base
	MemberList

	CallbackKeyword token.Token
	Ident           *ast.Identifier

	// function form
	Eq      *token.Token
	ReturnT *ast.ReturnType
	Open    *token.Token
	Args    *ast.ArgumentList
	Close   *token.Token

	// interface form
	InterfaceKeyword *token.Token
	Inherit          *ast.Inheritance
	BodyOpen         *token.Token
	BodyClose        *token.Token
}

// IsInterfaceForm reports whether this Callback wraps an interface body.
func (c *Callback) IsInterfaceForm() bool { return c.InterfaceKeyword != nil }

func (c *Callback) Arguments() *ast.ArgumentList { return c.Args }

func (c *Callback) FindArgument(name string, searchMembers bool) *ast.Argument {
	return c.MemberList.FindArgument(c, name, searchMembers)
}

func (c *Callback) String() string {
	body := c.CallbackKeyword.Text
	if c.IsInterfaceForm() {
		body += c.InterfaceKeyword.Text + c.Ident.String()
		if c.Inherit != nil {
			body += c.Inherit.String()
		}
		body += c.BodyOpen.Text
		for _, m := range c.Members() {
			body += m.String()
		}
		body += c.BodyClose.Text
	} else {
		body += c.Ident.String() + c.Eq.Text + c.ReturnT.String() + c.Open.Text + c.Args.String() + c.Close.Text
	}
	return c.Render(c.extAttrsPrefix() + body)
}

// PeekCallback reports whether a Callback starts here (either form).
func PeekCallback(t *lexer.Tokenizer) bool {
	return peekPastExtendedAttributes(t, func(t *lexer.Tokenizer) bool {
		return t.Peek(0).Is("callback")
	})
}

// NewCallback commits a Callback. checker (may be nil) is threaded into
// every ArgumentList parsed along the way.
func NewCallback(t *lexer.Tokenizer, checker DictionaryChecker) *Callback {
	c := &Callback{}
	c.Kind = "callback"
	c.TakeLeading(t)
	c.parseExtendedAttributes(t)
	_, kw := ast.NextToken(t)
	c.CallbackKeyword = kw
	if t.Peek(0).Is("interface") {
		_, ifaceKw := ast.NextToken(t)
		c.InterfaceKeyword = &ifaceKw
		c.Ident = ast.NewIdentifier(t)
		c.NameText = c.Ident.Name()
		if ast.PeekInheritance(t) {
			c.Inherit = ast.NewInheritance(t)
		}
		_, open := ast.NextToken(t)
		c.BodyOpen = &open
		for !t.Peek(0).Is("}") && t.HasTokens() {
			if PeekInterfaceMember(t) {
				member := NewInterfaceMember(t, checker)
				member.SetParent(c)
				c.Append(member)
				continue
			}
			se := NewSyntaxError(t)
			se.SetParent(c)
			c.Append(se)
		}
		_, closeTok := ast.NextToken(t)
		c.BodyClose = &closeTok
		c.TakeTrailingSemicolon(t)
		return c
	}
	c.Ident = ast.NewIdentifier(t)
	c.NameText = c.Ident.Name()
	_, eq := ast.NextToken(t)
	c.Eq = &eq
	c.ReturnT = ast.NewReturnType(t)
	_, open := ast.NextToken(t)
	c.Open = &open
	c.Args = ast.NewArgumentList(t, checker)
	_, closeTok := ast.NextToken(t)
	c.Close = &closeTok
	c.TakeTrailingSemicolon(t)
	return c
}
