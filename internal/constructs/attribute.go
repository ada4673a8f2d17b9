package constructs

import (
	"github.com/cwbudde/go-webidl/internal/ast"
	"github.com/cwbudde/go-webidl/internal/lexer"
	"github.com/cwbudde/go-webidl/pkg/token"
)

// Attribute is `inherit? readonly? attribute TypeWithExtendedAttributes
// AttributeName ;` (spec.md §4.2). Inherit is only legal on an
// InterfaceMember; MixinMember and NamespaceMember attributes are parsed
// with allowInherit false, matching the original grammar's per-container
// restriction.
type Attribute struct {
	Base
	Inherit          *token.Token
	ReadOnly         *token.Token
	AttributeKeyword token.Token
	Type             *ast.TypeWithExtendedAttributes
	AttrName         *ast.AttributeName
}

func (a *Attribute) String() string {
	var body string
	if a.Inherit != nil {
		body += a.Inherit.Text
	}
	if a.ReadOnly != nil {
		body += a.ReadOnly.Text
	}
	body += a.AttributeKeyword.Text + a.Type.String() + a.AttrName.String()
	return a.Render(a.extAttrsPrefix() + body)
}

// PeekAttribute reports whether an Attribute starts here.
func PeekAttribute(t *lexer.Tokenizer, allowInherit bool) bool {
	return peekPastExtendedAttributes(t, func(t *lexer.Tokenizer) bool {
		t.PushPosition()
		if allowInherit && t.Peek(0).Is("inherit") {
			t.Next()
		}
		if t.Peek(0).Is("readonly") {
			t.Next()
		}
		ok := t.Peek(0).Is("attribute")
		return t.PopPosition(ok)
	})
}

// NewAttribute commits an Attribute.
func NewAttribute(t *lexer.Tokenizer, allowInherit bool) *Attribute {
	a := &Attribute{}
	a.Kind = "attribute"
	a.TakeLeading(t)
	a.parseExtendedAttributes(t)
	if allowInherit && t.Peek(0).Is("inherit") {
		_, tok := ast.NextToken(t)
		a.Inherit = &tok
	}
	if t.Peek(0).Is("readonly") {
		_, tok := ast.NextToken(t)
		a.ReadOnly = &tok
	}
	_, kw := ast.NextToken(t)
	a.AttributeKeyword = kw
	a.Type = ast.NewTypeWithExtendedAttributes(t)
	a.AttrName = ast.NewAttributeName(t)
	a.NameText = a.AttrName.Name()
	a.TakeTrailingSemicolon(t)
	return a
}

// StaticMember is `static AttributeRest | static OperationRest`
// (spec.md §4.2, InterfaceMember dispatch).
type StaticMember struct {
	Base
	StaticKeyword token.Token
	Attr          *Attribute
	Op            *Operation
}

func (s *StaticMember) String() string {
	body := s.StaticKeyword.Text
	if s.Attr != nil {
		body += s.Attr.String()
	} else {
		body += s.Op.String()
	}
	return s.Render(s.extAttrsPrefix() + body)
}

func (s *StaticMember) Arguments() *ast.ArgumentList {
	if s.Op != nil {
		return s.Op.Arguments()
	}
	return nil
}

// PeekStaticMember reports whether a StaticMember starts here.
func PeekStaticMember(t *lexer.Tokenizer) bool {
	return peekPastExtendedAttributes(t, func(t *lexer.Tokenizer) bool {
		t.PushPosition()
		if !t.Peek(0).Is("static") {
			return t.PopPosition(false)
		}
		t.Next()
		ok := PeekAttribute(t, false) || PeekOperation(t)
		return t.PopPosition(ok)
	})
}

// NewStaticMember commits a StaticMember, threading checker into the
// operation form's ArgumentList (may be nil).
func NewStaticMember(t *lexer.Tokenizer, checker DictionaryChecker) *StaticMember {
	s := &StaticMember{}
	s.Kind = "static"
	s.TakeLeading(t)
	s.parseExtendedAttributes(t)
	_, kw := ast.NextToken(t)
	s.StaticKeyword = kw
	if PeekAttribute(t, false) {
		s.Attr = NewAttribute(t, false)
		s.NameText = s.Attr.Name()
	} else {
		s.Op = NewOperation(t, checker)
		s.NameText = s.Op.Name()
	}
	return s
}
