package constructs

import (
	"strings"

	"github.com/cwbudde/go-webidl/internal/ast"
	"github.com/cwbudde/go-webidl/internal/lexer"
	"github.com/cwbudde/go-webidl/pkg/token"
)

// ExtendedAttributeList is the ordered, comma-separated `[ ... ]` list that
// may precede any Construct (spec.md §4.2). It renders itself (including
// the brackets) so ast.TypeWithExtendedAttributes can embed the rendered
// text via the registered parser without importing this package.
type ExtendedAttributeList struct {
	Base
	Open       token.Token
	Attributes []Construct
	Commas     []token.Token
	Close      token.Token
}

func (l *ExtendedAttributeList) String() string {
	var sb strings.Builder
	sb.WriteString(l.Open.Text)
	for i, a := range l.Attributes {
		sb.WriteString(a.String())
		if i < len(l.Commas) {
			sb.WriteString(l.Commas[i].Text)
		}
	}
	sb.WriteString(l.Close.Text)
	return l.Render(sb.String())
}

// PeekExtendedAttributeList reports whether a `[ ... ]` list starts here.
func PeekExtendedAttributeList(t *lexer.Tokenizer) bool {
	return t.Peek(0).Is("[")
}

// NewExtendedAttributeList commits an ExtendedAttributeList.
func NewExtendedAttributeList(t *lexer.Tokenizer) *ExtendedAttributeList {
	l := &ExtendedAttributeList{}
	l.Kind = "extended-attribute-list"
	l.TakeLeading(t)
	l.Open = t.Next() // "["
	if !t.Peek(0).Is("]") {
		l.Attributes = append(l.Attributes, NewExtendedAttribute(t))
		for t.Peek(0).Is(",") {
			l.Commas = append(l.Commas, t.Next())
			l.Attributes = append(l.Attributes, NewExtendedAttribute(t))
		}
	}
	_, closeTok := ast.NextToken(t) // "]"
	l.Close = closeTok
	l.TrailingSpace = t.Whitespace().Text
	return l
}

// extendedAttributeListParser adapts NewExtendedAttributeList to the
// function shape ast.RegisterExtendedAttributeListParser expects, closing
// the ast<->constructs seam described in internal/ast/type.go.
func extendedAttributeListParser(t *lexer.Tokenizer) (string, bool) {
	if !PeekExtendedAttributeList(t) {
		return "", false
	}
	return NewExtendedAttributeList(t).String(), true
}

func init() {
	ast.RegisterExtendedAttributeListParser(extendedAttributeListParser)
}

// PeekExtendedAttribute reports whether any ExtendedAttribute shape (or the
// Unknown fallback) starts here: anything short of the list's own
// terminators.
func PeekExtendedAttribute(t *lexer.Tokenizer) bool {
	tok := t.Peek(0)
	return !tok.Is(",") && !tok.Is("]") && !tok.IsEOF()
}

// NewExtendedAttribute commits one ExtendedAttribute, trying each named
// shape in the dispatch order spec.md §4.2 specifies (NamedArgList,
// ArgList, NoArgs, TypePair, IdentList, Ident) before falling back to
// Unknown.
func NewExtendedAttribute(t *lexer.Tokenizer) Construct {
	if c, ok := tryNamedArgList(t); ok {
		return c
	}
	if c, ok := tryArgList(t); ok {
		return c
	}
	if c, ok := tryNoArgs(t); ok {
		return c
	}
	if c, ok := tryTypePair(t); ok {
		return c
	}
	if c, ok := tryIdentList(t); ok {
		return c
	}
	if c, ok := tryIdent(t); ok {
		return c
	}
	return newExtendedAttributeUnknown(t)
}

func isListTerminator(tok token.Token) bool {
	return tok.Is(",") || tok.Is("]") || tok.IsEOF()
}

// attrBody accumulates the pieces of a multi-token extended-attribute body,
// capturing interstitial whitespace the way internal/ast's productions do,
// so String() reconstructs the source exactly.
type attrBody struct {
	sb strings.Builder
}

func (a *attrBody) add(t *lexer.Tokenizer) token.Token {
	ws, tok := ast.NextToken(t)
	a.sb.WriteString(ws + tok.Text)
	return tok
}

func (a *attrBody) addIdent(id *ast.Identifier) {
	a.sb.WriteString(id.String())
}

func (a *attrBody) String() string { return a.sb.String() }

// ExtendedAttributeNoArgs is a bare `Identifier`.
type ExtendedAttributeNoArgs struct {
	Base
	Ident *ast.Identifier
}

func (e *ExtendedAttributeNoArgs) String() string { return e.Render(e.Ident.String()) }

func tryNoArgs(t *lexer.Tokenizer) (*ExtendedAttributeNoArgs, bool) {
	t.PushPosition()
	if !ast.PeekIdentifier(t) {
		t.PopPosition(false)
		return nil, false
	}
	e := &ExtendedAttributeNoArgs{}
	e.Kind = "extended-attribute"
	e.Ident = ast.NewIdentifier(t)
	e.NameText = e.Ident.Name()
	if !isListTerminator(t.Peek(0)) {
		t.PopPosition(false)
		return nil, false
	}
	t.PopPosition(true)
	return e, true
}

// ExtendedAttributeArgList is `Identifier ( ArgumentList )`.
type ExtendedAttributeArgList struct {
	Base
	Ident *ast.Identifier
	body  string
	Args  *ast.ArgumentList
}

func (e *ExtendedAttributeArgList) Arguments() *ast.ArgumentList { return e.Args }
func (e *ExtendedAttributeArgList) String() string               { return e.Render(e.body) }

// Body returns the verbatim reconstructed significant-token text (the
// identifier plus parenthesized argument list), with no leading or
// trailing trivia. Exported for internal/markup, which carves this body
// around Ident and Args to wrap each independently rather than emitting
// the whole attribute as opaque text.
func (e *ExtendedAttributeArgList) Body() string { return e.body }

func tryArgList(t *lexer.Tokenizer) (*ExtendedAttributeArgList, bool) {
	t.PushPosition()
	if !ast.PeekIdentifier(t) {
		t.PopPosition(false)
		return nil, false
	}
	e := &ExtendedAttributeArgList{}
	e.Kind = "extended-attribute"
	e.Ident = ast.NewIdentifier(t)
	e.NameText = e.Ident.Name()
	if !t.Peek(0).Is("(") {
		t.PopPosition(false)
		return nil, false
	}
	var b attrBody
	b.addIdent(e.Ident)
	b.add(t) // "("
	e.Args = ast.NewArgumentList(t, nil)
	b.sb.WriteString(e.Args.String())
	if !t.Peek(0).Is(")") {
		t.PopPosition(false)
		return nil, false
	}
	b.add(t)
	e.body = b.String()
	t.PopPosition(true)
	return e, true
}

// ExtendedAttributeIdent is `Identifier = Identifier`.
type ExtendedAttributeIdent struct {
	Base
	body string
	name string
}

func (e *ExtendedAttributeIdent) String() string { return e.Render(e.body) }

func tryIdent(t *lexer.Tokenizer) (*ExtendedAttributeIdent, bool) {
	t.PushPosition()
	if !ast.PeekIdentifier(t) {
		t.PopPosition(false)
		return nil, false
	}
	ident := ast.NewIdentifier(t)
	if !t.Peek(0).Is("=") {
		t.PopPosition(false)
		return nil, false
	}
	var b attrBody
	b.addIdent(ident)
	b.add(t) // "="
	if !ast.PeekIdentifier(t) {
		t.PopPosition(false)
		return nil, false
	}
	value := ast.NewIdentifier(t)
	b.addIdent(value)
	if !isListTerminator(t.Peek(0)) {
		t.PopPosition(false)
		return nil, false
	}
	e := &ExtendedAttributeIdent{body: b.String(), name: ident.Name()}
	e.Kind = "extended-attribute"
	e.NameText = e.name
	t.PopPosition(true)
	return e, true
}

// ExtendedAttributeIdentList is `Identifier = ( IdentifierList )`.
type ExtendedAttributeIdentList struct {
	Base
	body string
}

func (e *ExtendedAttributeIdentList) String() string { return e.Render(e.body) }

func tryIdentList(t *lexer.Tokenizer) (*ExtendedAttributeIdentList, bool) {
	t.PushPosition()
	if !ast.PeekIdentifier(t) {
		t.PopPosition(false)
		return nil, false
	}
	ident := ast.NewIdentifier(t)
	if !t.Peek(0).Is("=") {
		t.PopPosition(false)
		return nil, false
	}
	var b attrBody
	b.addIdent(ident)
	b.add(t) // "="
	if !t.Peek(0).Is("(") {
		t.PopPosition(false)
		return nil, false
	}
	b.add(t) // "("
	values := ast.NewIdentifiers(t)
	b.sb.WriteString(values.String())
	if !t.Peek(0).Is(")") {
		t.PopPosition(false)
		return nil, false
	}
	b.add(t) // ")"
	e := &ExtendedAttributeIdentList{body: b.String()}
	e.Kind = "extended-attribute"
	e.NameText = ident.Name()
	t.PopPosition(true)
	return e, true
}

// ExtendedAttributeNamedArgList is `Identifier = Identifier ( ArgumentList )`.
type ExtendedAttributeNamedArgList struct {
	Base
	body string
	// ValueIdent is the identifier named after "=" (not named Name: that
	// would shadow Base's promoted Name() method and break Construct
	// satisfaction for this type).
	ValueIdent *ast.Identifier
	Args       *ast.ArgumentList
}

func (e *ExtendedAttributeNamedArgList) Arguments() *ast.ArgumentList { return e.Args }
func (e *ExtendedAttributeNamedArgList) String() string               { return e.Render(e.body) }

// Body returns the verbatim reconstructed significant-token text (the two
// identifiers, "=", and the parenthesized argument list), with no leading
// or trailing trivia. Exported for internal/markup's structural carving.
func (e *ExtendedAttributeNamedArgList) Body() string { return e.body }

func tryNamedArgList(t *lexer.Tokenizer) (*ExtendedAttributeNamedArgList, bool) {
	t.PushPosition()
	if !ast.PeekIdentifier(t) {
		t.PopPosition(false)
		return nil, false
	}
	ident := ast.NewIdentifier(t)
	if !t.Peek(0).Is("=") {
		t.PopPosition(false)
		return nil, false
	}
	var b attrBody
	b.addIdent(ident)
	b.add(t) // "="
	if !ast.PeekIdentifier(t) {
		t.PopPosition(false)
		return nil, false
	}
	name := ast.NewIdentifier(t)
	b.addIdent(name)
	if !t.Peek(0).Is("(") {
		t.PopPosition(false)
		return nil, false
	}
	b.add(t) // "("
	args := ast.NewArgumentList(t, nil)
	b.sb.WriteString(args.String())
	if !t.Peek(0).Is(")") {
		t.PopPosition(false)
		return nil, false
	}
	b.add(t) // ")"
	e := &ExtendedAttributeNamedArgList{body: b.String(), ValueIdent: name, Args: args}
	e.Kind = "extended-attribute"
	e.NameText = ident.Name()
	t.PopPosition(true)
	return e, true
}

// ExtendedAttributeTypePair is `Identifier = Identifier , Identifier`: a
// shape used by extended attributes naming a key/value type pair (e.g. a
// map-class hint), distinct from the parenthesized IdentList.
type ExtendedAttributeTypePair struct {
	Base
	body string
}

func (e *ExtendedAttributeTypePair) String() string { return e.Render(e.body) }

func tryTypePair(t *lexer.Tokenizer) (*ExtendedAttributeTypePair, bool) {
	t.PushPosition()
	if !ast.PeekIdentifier(t) {
		t.PopPosition(false)
		return nil, false
	}
	ident := ast.NewIdentifier(t)
	if !t.Peek(0).Is("=") {
		t.PopPosition(false)
		return nil, false
	}
	var b attrBody
	b.addIdent(ident)
	b.add(t) // "="
	if !ast.PeekIdentifier(t) {
		t.PopPosition(false)
		return nil, false
	}
	first := ast.NewIdentifier(t)
	b.addIdent(first)
	if !t.Peek(0).Is(",") {
		t.PopPosition(false)
		return nil, false
	}
	b.add(t) // ","
	if !ast.PeekIdentifier(t) {
		t.PopPosition(false)
		return nil, false
	}
	second := ast.NewIdentifier(t)
	b.addIdent(second)
	if !isListTerminator(t.Peek(0)) {
		t.PopPosition(false)
		return nil, false
	}
	e := &ExtendedAttributeTypePair{body: b.String()}
	e.Kind = "extended-attribute"
	e.NameText = ident.Name()
	t.PopPosition(true)
	return e, true
}

// ExtendedAttributeUnknown is the fallback shape: every token from the
// current position through (but not including) the next `,` or `]`,
// captured without interpretation (spec.md §4.2).
type ExtendedAttributeUnknown struct {
	Base
	Tokens []token.Token
}

func (e *ExtendedAttributeUnknown) String() string {
	var sb strings.Builder
	for _, tok := range e.Tokens {
		sb.WriteString(tok.Text)
	}
	return e.Render(sb.String())
}

func newExtendedAttributeUnknown(t *lexer.Tokenizer) *ExtendedAttributeUnknown {
	e := &ExtendedAttributeUnknown{}
	e.Kind = "unknown"
	e.TakeLeading(t)
	e.Tokens = t.SyntaxError([]string{",", "]"}, false)
	return e
}
