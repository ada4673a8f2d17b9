// Package ast implements the WebIDL grammar productions: the low-level,
// mutually-recursive network of types, identifiers, literals, argument
// lists, extended attributes, and legacy-syntax eaters described in
// spec.md §4.2. Every production embeds Production, which carries the
// lossless trivia (leading/trailing whitespace, recovered tail tokens, an
// optional semicolon) that makes serialization nullipotent (spec.md §3).
package ast

import (
	"strings"

	"github.com/cwbudde/go-webidl/internal/lexer"
	"github.com/cwbudde/go-webidl/pkg/token"
)

// Production is embedded by every grammar node. It owns the trivia
// surrounding the node's significant tokens; Render concatenates
// leading + body + tail + semicolon + trailing, the invariant spec.md §3
// requires of every Production's serialization.
type Production struct {
	LeadingSpace  string
	TrailingSpace string
	Tail          []token.Token
	Semicolon     *token.Token
}

// Render assembles the final string for a production given its already
//-serialized body.
func (p *Production) Render(body string) string {
	var sb strings.Builder
	sb.WriteString(p.LeadingSpace)
	sb.WriteString(body)
	for _, tok := range p.Tail {
		sb.WriteString(tok.Text)
	}
	if p.Semicolon != nil {
		sb.WriteString(p.Semicolon.Text)
	}
	sb.WriteString(p.TrailingSpace)
	return sb.String()
}

// TakeLeading consumes the pending whitespace token at the tokenizer's
// current position and stores it as LeadingSpace, the way every production
// constructor begins: capture trivia, then the significant tokens.
func (p *Production) TakeLeading(t *lexer.Tokenizer) {
	p.LeadingSpace = t.Whitespace().Text
}

// TakeTrailingSemicolon consumes an optional trailing `;` and the
// whitespace that follows, matching the common `body ;? trivia` shape most
// top-level and member productions share.
func (p *Production) TakeTrailingSemicolon(t *lexer.Tokenizer) {
	if t.Peek(0).Is(";") {
		tok := t.Next()
		p.Semicolon = &tok
	}
	p.TrailingSpace = t.Whitespace().Text
}

// nextTok consumes any pending interstitial whitespace plus the following
// significant token, returning both so a multi-token production body can
// reassemble its exact source text (e.g. the space between "unsigned" and
// "long" in "unsigned long").
func nextTok(t *lexer.Tokenizer) (string, token.Token) {
	ws := t.Whitespace().Text
	return ws, t.Next()
}

// NextToken is nextTok exported for package constructs, which builds its own
// multi-token production bodies (AttributeRest, OperationRest, ConstValue,
// EnumValueList) the same way the productions in this package do.
func NextToken(t *lexer.Tokenizer) (string, token.Token) {
	return nextTok(t)
}

// consumeTail runs SyntaxError and stores the result as this production's
// recovered tail. The error-recovery constructs (SyntaxError,
// ExtendedAttributeUnknown) call Tokenizer.SyntaxError directly instead.
func (p *Production) consumeTail(t *lexer.Tokenizer, terminators []string, consume bool) {
	p.Tail = t.SyntaxError(terminators, consume)
}
