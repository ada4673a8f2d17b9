package ast

import (
	"strings"

	"github.com/cwbudde/go-webidl/internal/lexer"
	"github.com/cwbudde/go-webidl/pkg/token"
)

// Identifier is a bare WebIDL identifier (argument names, member names,
// enum/dictionary/interface names that are not themselves a type).
type Identifier struct {
	Production
	Token token.Token
}

// Name returns the semantic name (leading underscore stripped).
func (i *Identifier) Name() string {
	if i == nil {
		return ""
	}
	return i.Token.Name()
}

func (i *Identifier) String() string {
	if i == nil {
		return ""
	}
	return i.Render(i.Token.Text)
}

// PeekIdentifier reports whether the next significant token is an
// identifier.
func PeekIdentifier(t *lexer.Tokenizer) bool {
	return t.Peek(0).Kind == token.Identifier
}

// NewIdentifier commits an Identifier, asserting PeekIdentifier held.
func NewIdentifier(t *lexer.Tokenizer) *Identifier {
	id := &Identifier{}
	id.TakeLeading(t)
	id.Token = t.Next()
	return id
}

// TypeIdentifier is an identifier used where a type name is expected
// (typedef target, interface inheritance, dictionary inheritance). It is a
// distinct production from Identifier only in the original for call-site
// documentation purposes; the grammar is identical.
type TypeIdentifier struct {
	Identifier
}

// PeekTypeIdentifier is an alias of PeekIdentifier, kept distinct so call
// sites read like the grammar they implement.
func PeekTypeIdentifier(t *lexer.Tokenizer) bool { return PeekIdentifier(t) }

// NewTypeIdentifier commits a TypeIdentifier.
func NewTypeIdentifier(t *lexer.Tokenizer) *TypeIdentifier {
	return &TypeIdentifier{Identifier: *NewIdentifier(t)}
}

// Identifiers is a comma-separated, non-empty list of Identifier, used by
// the legacy multiple-inheritance tail.
type Identifiers struct {
	Production
	Items  []*Identifier
	Commas []token.Token
}

func (ids *Identifiers) String() string {
	var sb strings.Builder
	for i, item := range ids.Items {
		sb.WriteString(item.String())
		if i < len(ids.Commas) {
			sb.WriteString(ids.Commas[i].Text)
		}
	}
	return ids.Render(sb.String())
}

// PeekIdentifiers reports whether an identifier list starts here.
func PeekIdentifiers(t *lexer.Tokenizer) bool { return PeekIdentifier(t) }

// NewIdentifiers commits an Identifiers list.
func NewIdentifiers(t *lexer.Tokenizer) *Identifiers {
	ids := &Identifiers{}
	ids.TakeLeading(t)
	ids.Items = append(ids.Items, NewIdentifier(t))
	for t.Peek(0).Is(",") {
		comma := t.Next()
		ids.Commas = append(ids.Commas, comma)
		ids.Items = append(ids.Items, NewIdentifier(t))
	}
	return ids
}

// TypeIdentifiers is the TypeIdentifier analogue of Identifiers.
type TypeIdentifiers struct {
	Production
	Items  []*TypeIdentifier
	Commas []token.Token
}

func (ids *TypeIdentifiers) String() string {
	var sb strings.Builder
	for i, item := range ids.Items {
		sb.WriteString(item.String())
		if i < len(ids.Commas) {
			sb.WriteString(ids.Commas[i].Text)
		}
	}
	return ids.Render(sb.String())
}

// PeekTypeIdentifiers reports whether a type-identifier list starts here.
func PeekTypeIdentifiers(t *lexer.Tokenizer) bool { return PeekIdentifier(t) }

// NewTypeIdentifiers commits a TypeIdentifiers list.
func NewTypeIdentifiers(t *lexer.Tokenizer) *TypeIdentifiers {
	ids := &TypeIdentifiers{}
	ids.TakeLeading(t)
	ids.Items = append(ids.Items, NewTypeIdentifier(t))
	for t.Peek(0).Is(",") {
		comma := t.Next()
		ids.Commas = append(ids.Commas, comma)
		ids.Items = append(ids.Items, NewTypeIdentifier(t))
	}
	return ids
}

// StringLiteral is a quoted string production, used for enum values.
type StringLiteral struct {
	Production
	Token token.Token
}

// Value returns the literal text including surrounding quotes, matching
// the original's convention of preserving quote characters verbatim.
func (s *StringLiteral) Value() string { return s.Token.Text }

func (s *StringLiteral) String() string { return s.Render(s.Token.Text) }

// PeekStringLiteral reports whether a string literal starts here.
func PeekStringLiteral(t *lexer.Tokenizer) bool {
	return t.Peek(0).Kind == token.String
}

// NewStringLiteral commits a StringLiteral.
func NewStringLiteral(t *lexer.Tokenizer) *StringLiteral {
	s := &StringLiteral{}
	s.TakeLeading(t)
	s.Token = t.Next()
	return s
}
