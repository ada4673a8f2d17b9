package constructs

import (
	"github.com/cwbudde/go-webidl/internal/ast"
	"github.com/cwbudde/go-webidl/internal/lexer"
	"github.com/cwbudde/go-webidl/pkg/token"
)

// DictionaryMember is `[ExtendedAttributeList]? required? TypeWithExtendedAttributes
// Identifier Default? ;` (spec.md §4.2).
type DictionaryMember struct {
	Base
	Required *token.Token
	Type     *ast.TypeWithExtendedAttributes
	Ident    *ast.Identifier
	Default  *ast.Default
}

// IsRequired reports whether this member was declared `required`.
func (m *DictionaryMember) IsRequired() bool { return m.Required != nil }

func (m *DictionaryMember) String() string {
	body := ""
	if m.Required != nil {
		body += m.Required.Text
	}
	body += m.Type.String() + m.Ident.String()
	if m.Default != nil {
		body += m.Default.String()
	}
	return m.Render(m.extAttrsPrefix() + body)
}

// PeekDictionaryMember reports whether a DictionaryMember starts here. A
// leading `[` is always treated as the start of a member's extended
// attribute list: a Dictionary body has no other bracketed shape to
// confuse it with, so this never needs to skip the bracketed span just to
// peek past it.
func PeekDictionaryMember(t *lexer.Tokenizer) bool {
	if t.Peek(0).Is("[") {
		return true
	}
	return t.Peek(0).Is("required") || ast.PeekTypeWithExtendedAttributes(t)
}

// NewDictionaryMember commits a DictionaryMember.
func NewDictionaryMember(t *lexer.Tokenizer) *DictionaryMember {
	m := &DictionaryMember{}
	m.Kind = "dict-member"
	m.TakeLeading(t)
	m.parseExtendedAttributes(t)
	if t.Peek(0).Is("required") {
		_, tok := ast.NextToken(t)
		m.Required = &tok
	}
	m.Type = ast.NewTypeWithExtendedAttributes(t)
	m.Ident = ast.NewIdentifier(t)
	m.NameText = m.Ident.Name()
	if ast.PeekDefault(t) {
		m.Default = ast.NewDefault(t)
	}
	m.TakeTrailingSemicolon(t)
	return m
}

// Dictionary is `dictionary Identifier Inheritance? { DictionaryMember* } ;`
// (spec.md §3/§4.3). It is a Container and is entered into the owning
// Parser's symbol table.
type Dictionary struct {
	Base
	MemberList
	DictKeyword token.Token
	Ident       *ast.Identifier
	Inherit     *ast.Inheritance
	Open        token.Token
	Close       token.Token
	Partial     *token.Token
}

func (d *Dictionary) FindArgument(name string, searchMembers bool) *ast.Argument {
	return d.MemberList.FindArgument(d, name, searchMembers)
}

// Required reports whether this dictionary has at least one required
// member, directly or (when resolve is non-nil) via an inherited
// dictionary — used by ArgumentList rule 3 (spec.md §4.2).
func (d *Dictionary) Required(resolve func(name string) *Dictionary) bool {
	for _, m := range d.Members() {
		if dm, ok := m.(*DictionaryMember); ok && dm.IsRequired() {
			return true
		}
	}
	if d.Inherit != nil && resolve != nil {
		if parent := resolve(d.Inherit.Name.Name()); parent != nil {
			return parent.Required(resolve)
		}
	}
	return false
}

func (d *Dictionary) String() string {
	var body string
	if d.Partial != nil {
		body += d.Partial.Text
	}
	body += d.DictKeyword.Text + d.Ident.String()
	if d.Inherit != nil {
		body += d.Inherit.String()
	}
	body += d.Open.Text
	for _, m := range d.Members() {
		body += m.String()
	}
	body += d.Close.Text
	return d.Render(d.extAttrsPrefix() + body)
}

// PeekDictionary reports whether a Dictionary starts here.
func PeekDictionary(t *lexer.Tokenizer) bool {
	return peekPastExtendedAttributes(t, func(t *lexer.Tokenizer) bool {
		t.PushPosition()
		if t.Peek(0).Is("partial") {
			t.Next()
		}
		ok := t.Peek(0).Is("dictionary")
		return t.PopPosition(ok)
	})
}

// NewDictionary commits a Dictionary.
func NewDictionary(t *lexer.Tokenizer) *Dictionary {
	d := &Dictionary{}
	d.Kind = "dictionary"
	d.TakeLeading(t)
	d.parseExtendedAttributes(t)
	if t.Peek(0).Is("partial") {
		_, tok := ast.NextToken(t)
		d.Partial = &tok
		_, kw := ast.NextToken(t)
		d.DictKeyword = kw
	} else {
		_, kw := ast.NextToken(t)
		d.DictKeyword = kw
	}
	d.Ident = ast.NewIdentifier(t)
	d.NameText = d.Ident.Name()
	if ast.PeekInheritance(t) {
		d.Inherit = ast.NewInheritance(t)
	}
	_, open := ast.NextToken(t)
	d.Open = open
	for !t.Peek(0).Is("}") && t.HasTokens() {
		if PeekDictionaryMember(t) {
			member := NewDictionaryMember(t)
			member.SetParent(d)
			d.Append(member)
			continue
		}
		se := NewSyntaxError(t)
		se.SetParent(d)
		d.Append(se)
	}
	_, closeTok := ast.NextToken(t)
	d.Close = closeTok
	d.TakeTrailingSemicolon(t)
	return d
}
