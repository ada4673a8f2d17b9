package constructs

import (
	"strings"

	"github.com/cwbudde/go-webidl/internal/ast"
	"github.com/cwbudde/go-webidl/internal/lexer"
	"github.com/cwbudde/go-webidl/pkg/token"
)

// Operation is a regular or special operation member (spec.md §4.2,
// "Special operations"): zero or more Special markers, a ReturnType, an
// optional OperationName, and a parenthesized ArgumentList. An Operation
// with no declared name is given a synthesized name of the form
// `__<special>__` (or `__<specials-joined>__` when more than one marker
// applies), and is never entered into the owning Parser's symbol table —
// the symbol table is populated only from Interface/Mixin/Namespace/
// Dictionary/Enum/Typedef/Callback (spec.md §3).
type Operation struct {
	Base
	Specials []token.Token
	ReturnT  *ast.ReturnType
	OpName   *ast.OperationName
	Open     token.Token
	Args     *ast.ArgumentList
	Close    token.Token
}

func (op *Operation) Arguments() *ast.ArgumentList { return op.Args }

func (op *Operation) String() string {
	var sb strings.Builder
	for _, s := range op.Specials {
		sb.WriteString(s.Text)
	}
	sb.WriteString(op.ReturnT.String())
	if op.OpName != nil {
		sb.WriteString(op.OpName.String())
	}
	sb.WriteString(op.Open.Text)
	sb.WriteString(op.Args.String())
	sb.WriteString(op.Close.Text)
	return op.Render(op.extAttrsPrefix() + sb.String())
}

// PeekOperation reports whether a (possibly special) Operation starts here.
func PeekOperation(t *lexer.Tokenizer) bool {
	return peekPastExtendedAttributes(t, func(t *lexer.Tokenizer) bool {
		t.PushPosition()
		for lexer.IsSpecialSymbol(t.Peek(0).Text) {
			t.Next()
		}
		if !ast.PeekReturnType(t) {
			return t.PopPosition(false)
		}
		ast.NewReturnType(t)
		if ast.PeekOperationName(t) {
			ast.NewOperationName(t)
		}
		return t.PopPosition(t.Peek(0).Is("("))
	})
}

// NewOperation commits an Operation, with checker supplied to
// ArgumentList's dictionary-without-required-members rule (may be nil).
func NewOperation(t *lexer.Tokenizer, checker DictionaryChecker) *Operation {
	op := &Operation{}
	op.Kind = "method"
	op.TakeLeading(t)
	op.parseExtendedAttributes(t)
	for lexer.IsSpecialSymbol(t.Peek(0).Text) {
		_, tok := ast.NextToken(t)
		op.Specials = append(op.Specials, tok)
	}
	op.ReturnT = ast.NewReturnType(t)
	if ast.PeekOperationName(t) {
		op.OpName = ast.NewOperationName(t)
	}
	_, open := ast.NextToken(t)
	op.Open = open
	op.Args = ast.NewArgumentList(t, checker)
	_, closeTok := ast.NextToken(t)
	op.Close = closeTok
	op.NameText = op.name()
	op.TakeTrailingSemicolon(t)
	return op
}

func (op *Operation) name() string {
	if op.OpName != nil {
		return op.OpName.Name()
	}
	if len(op.Specials) == 0 {
		return ""
	}
	var parts []string
	for _, s := range op.Specials {
		parts = append(parts, s.Text)
	}
	return "__" + strings.Join(parts, "_") + "__"
}

// DictionaryChecker is shared by package ast's ArgumentList and every
// construct that owns one (Operation, Constructor, Callback).
type DictionaryChecker = ast.DictionaryChecker

// Stringifier is `stringifier ;`, `stringifier AttributeRest`, or
// `stringifier ReturnType OperationRest` — the anonymous, attribute, and
// operation forms of a stringifier member. An anonymous stringifier is
// given the synthesized name `__stringifier__`.
type Stringifier struct {
	Base
	StringifierKeyword token.Token
	Attr               *Attribute
	Op                 *Operation
}

func (s *Stringifier) Arguments() *ast.ArgumentList {
	if s.Op != nil {
		return s.Op.Arguments()
	}
	return nil
}

func (s *Stringifier) String() string {
	body := s.StringifierKeyword.Text
	switch {
	case s.Attr != nil:
		body += s.Attr.String()
	case s.Op != nil:
		body += s.Op.String()
	}
	return s.Render(s.extAttrsPrefix() + body)
}

// PeekStringifier reports whether a Stringifier starts here.
func PeekStringifier(t *lexer.Tokenizer) bool {
	return peekPastExtendedAttributes(t, func(t *lexer.Tokenizer) bool {
		return t.Peek(0).Is("stringifier")
	})
}

// NewStringifier commits a Stringifier.
func NewStringifier(t *lexer.Tokenizer) *Stringifier {
	s := &Stringifier{}
	s.Kind = "stringifier"
	s.TakeLeading(t)
	s.parseExtendedAttributes(t)
	_, kw := ast.NextToken(t)
	s.StringifierKeyword = kw
	switch {
	case t.Peek(0).Is(";"):
		s.NameText = "__stringifier__"
		s.TakeTrailingSemicolon(t)
	case PeekAttribute(t, false):
		s.Attr = NewAttribute(t, false)
		s.NameText = s.Attr.Name()
	default:
		s.Op = NewOperation(t, nil)
		s.NameText = s.Op.Name()
		if s.NameText == "" {
			s.NameText = "__stringifier__"
		}
	}
	return s
}

// Iterable is `iterable<TypeWithExtendedAttributes (, TypeWithExtendedAttributes)?> ;`,
// or the deprecated `legacyiterable<T> ;` form (spec.md §4.4 accepted
// deprecated forms). Given the synthesized name `__iterable__`.
type Iterable struct {
	Base
	Keyword  token.Token // "iterable" or "legacyiterable"
	Open     token.Token
	KeyOrVal *ast.TypeWithExtendedAttributes
	Comma    *token.Token
	Value    *ast.TypeWithExtendedAttributes
	Close    token.Token
}

func (it *Iterable) String() string {
	body := it.Keyword.Text + it.Open.Text + it.KeyOrVal.String()
	if it.Comma != nil {
		body += it.Comma.Text + it.Value.String()
	}
	body += it.Close.Text
	return it.Render(it.extAttrsPrefix() + body)
}

// PeekIterable reports whether an Iterable starts here.
func PeekIterable(t *lexer.Tokenizer) bool {
	return peekPastExtendedAttributes(t, func(t *lexer.Tokenizer) bool {
		tok := t.Peek(0)
		return tok.Is("iterable") || tok.Is("legacyiterable")
	})
}

// NewIterable commits an Iterable.
func NewIterable(t *lexer.Tokenizer) *Iterable {
	it := &Iterable{}
	it.Kind = "iterable"
	it.NameText = "__iterable__"
	it.TakeLeading(t)
	it.parseExtendedAttributes(t)
	_, kw := ast.NextToken(t)
	it.Keyword = kw
	_, open := ast.NextToken(t)
	it.Open = open
	it.KeyOrVal = ast.NewTypeWithExtendedAttributes(t)
	if t.Peek(0).Is(",") {
		_, comma := ast.NextToken(t)
		it.Comma = &comma
		it.Value = ast.NewTypeWithExtendedAttributes(t)
	}
	_, closeTok := ast.NextToken(t)
	it.Close = closeTok
	it.TakeTrailingSemicolon(t)
	return it
}

// AsyncIterable is `async iterable<TypeWithExtendedAttributes (,
// TypeWithExtendedAttributes)?> (ArgumentList)? ;`. Given the synthesized
// name `__async_iterable__`.
type AsyncIterable struct {
	Base
	AsyncKeyword    token.Token
	IterableKeyword token.Token
	Open            token.Token
	KeyOrVal        *ast.TypeWithExtendedAttributes
	Comma           *token.Token
	Value           *ast.TypeWithExtendedAttributes
	Close           token.Token
	ArgsOpen        *token.Token
	Args            *ast.ArgumentList
	ArgsClose       *token.Token
}

func (ai *AsyncIterable) Arguments() *ast.ArgumentList { return ai.Args }

func (ai *AsyncIterable) String() string {
	body := ai.AsyncKeyword.Text + ai.IterableKeyword.Text + ai.Open.Text + ai.KeyOrVal.String()
	if ai.Comma != nil {
		body += ai.Comma.Text + ai.Value.String()
	}
	body += ai.Close.Text
	if ai.ArgsOpen != nil {
		body += ai.ArgsOpen.Text + ai.Args.String() + ai.ArgsClose.Text
	}
	return ai.Render(ai.extAttrsPrefix() + body)
}

// PeekAsyncIterable reports whether an AsyncIterable starts here.
func PeekAsyncIterable(t *lexer.Tokenizer) bool {
	return peekPastExtendedAttributes(t, func(t *lexer.Tokenizer) bool {
		t.PushPosition()
		ok := t.Peek(0).Is("async") && t.Peek(1).Is("iterable")
		return t.PopPosition(ok)
	})
}

// NewAsyncIterable commits an AsyncIterable.
func NewAsyncIterable(t *lexer.Tokenizer) *AsyncIterable {
	ai := &AsyncIterable{}
	ai.Kind = "async-iterable"
	ai.NameText = "__async_iterable__"
	ai.TakeLeading(t)
	ai.parseExtendedAttributes(t)
	_, kw := ast.NextToken(t)
	ai.AsyncKeyword = kw
	_, iterKw := ast.NextToken(t)
	ai.IterableKeyword = iterKw
	_, open := ast.NextToken(t)
	ai.Open = open
	ai.KeyOrVal = ast.NewTypeWithExtendedAttributes(t)
	if t.Peek(0).Is(",") {
		_, comma := ast.NextToken(t)
		ai.Comma = &comma
		ai.Value = ast.NewTypeWithExtendedAttributes(t)
	}
	_, closeTok := ast.NextToken(t)
	ai.Close = closeTok
	if t.Peek(0).Is("(") {
		_, argsOpen := ast.NextToken(t)
		ai.ArgsOpen = &argsOpen
		ai.Args = ast.NewArgumentList(t, nil)
		_, argsClose := ast.NextToken(t)
		ai.ArgsClose = &argsClose
	}
	ai.TakeTrailingSemicolon(t)
	return ai
}

// Maplike is `readonly? maplike<TypeWithExtendedAttributes,
// TypeWithExtendedAttributes> ;`. Given the synthesized name `__maplike__`.
type Maplike struct {
	Base
	ReadOnly       *token.Token
	MaplikeKeyword token.Token
	Open           token.Token
	Key            *ast.TypeWithExtendedAttributes
	Comma          token.Token
	Value          *ast.TypeWithExtendedAttributes
	Close          token.Token
}

func (m *Maplike) String() string {
	var body string
	if m.ReadOnly != nil {
		body += m.ReadOnly.Text
	}
	body += m.MaplikeKeyword.Text + m.Open.Text + m.Key.String() + m.Comma.Text + m.Value.String() + m.Close.Text
	return m.Render(m.extAttrsPrefix() + body)
}

// PeekMaplike reports whether a Maplike starts here.
func PeekMaplike(t *lexer.Tokenizer) bool {
	return peekPastExtendedAttributes(t, func(t *lexer.Tokenizer) bool {
		t.PushPosition()
		if t.Peek(0).Is("readonly") {
			t.Next()
		}
		ok := t.Peek(0).Is("maplike")
		return t.PopPosition(ok)
	})
}

// NewMaplike commits a Maplike.
func NewMaplike(t *lexer.Tokenizer) *Maplike {
	m := &Maplike{}
	m.Kind = "maplike"
	m.NameText = "__maplike__"
	m.TakeLeading(t)
	m.parseExtendedAttributes(t)
	if t.Peek(0).Is("readonly") {
		_, tok := ast.NextToken(t)
		m.ReadOnly = &tok
	}
	_, kw := ast.NextToken(t)
	m.MaplikeKeyword = kw
	_, open := ast.NextToken(t)
	m.Open = open
	m.Key = ast.NewTypeWithExtendedAttributes(t)
	_, comma := ast.NextToken(t)
	m.Comma = comma
	m.Value = ast.NewTypeWithExtendedAttributes(t)
	_, closeTok := ast.NextToken(t)
	m.Close = closeTok
	m.TakeTrailingSemicolon(t)
	return m
}

// Setlike is `readonly? setlike<TypeWithExtendedAttributes> ;`. Given the
// synthesized name `__setlike__`.
type Setlike struct {
	Base
	ReadOnly      *token.Token
	SetlikeKeyword token.Token
	Open          token.Token
	Value         *ast.TypeWithExtendedAttributes
	Close         token.Token
}

func (s *Setlike) String() string {
	var body string
	if s.ReadOnly != nil {
		body += s.ReadOnly.Text
	}
	body += s.SetlikeKeyword.Text + s.Open.Text + s.Value.String() + s.Close.Text
	return s.Render(s.extAttrsPrefix() + body)
}

// PeekSetlike reports whether a Setlike starts here.
func PeekSetlike(t *lexer.Tokenizer) bool {
	return peekPastExtendedAttributes(t, func(t *lexer.Tokenizer) bool {
		t.PushPosition()
		if t.Peek(0).Is("readonly") {
			t.Next()
		}
		ok := t.Peek(0).Is("setlike")
		return t.PopPosition(ok)
	})
}

// NewSetlike commits a Setlike.
func NewSetlike(t *lexer.Tokenizer) *Setlike {
	s := &Setlike{}
	s.Kind = "setlike"
	s.NameText = "__setlike__"
	s.TakeLeading(t)
	s.parseExtendedAttributes(t)
	if t.Peek(0).Is("readonly") {
		_, tok := ast.NextToken(t)
		s.ReadOnly = &tok
	}
	_, kw := ast.NextToken(t)
	s.SetlikeKeyword = kw
	_, open := ast.NextToken(t)
	s.Open = open
	s.Value = ast.NewTypeWithExtendedAttributes(t)
	_, closeTok := ast.NextToken(t)
	s.Close = closeTok
	s.TakeTrailingSemicolon(t)
	return s
}
