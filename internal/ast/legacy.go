package ast

import (
	"strings"

	"github.com/cwbudde/go-webidl/internal/lexer"
)

// IgnoreInOut absorbs a stray legacy `in` or `out` keyword between
// `optional` and an argument's type (spec.md §4.2, "Legacy-syntax
// eaters"). Reported via DidIgnore.
type IgnoreInOut struct {
	Production
	Text string
}

func (i *IgnoreInOut) String() string { return i.Render(i.Text) }

// PeekIgnoreInOut reports whether a stray `in`/`out` starts here.
func PeekIgnoreInOut(t *lexer.Tokenizer) bool {
	tok := t.Peek(0)
	return tok.Is("in") || tok.Is("out")
}

// NewIgnoreInOut commits an IgnoreInOut, reporting the capture.
func NewIgnoreInOut(t *lexer.Tokenizer) *IgnoreInOut {
	ig := &IgnoreInOut{}
	ig.TakeLeading(t)
	tok := t.Next()
	ig.Text = tok.Text
	t.DidIgnore(tok.Text, tok.Pos)
	return ig
}

// Ignore absorbs the legacy `inherits getter` marker, or a
// `getraises(...)`/`setraises(...)`/`raises(...)` clause (spec.md §4.2).
// Reported via DidIgnore.
type Ignore struct {
	Production
	Text string
}

func (i *Ignore) String() string { return i.Render(i.Text) }

// PeekIgnore reports whether a legacy-ignored clause starts here.
func PeekIgnore(t *lexer.Tokenizer) bool {
	tok := t.Peek(0)
	if tok.Is("inherits") {
		return true
	}
	return tok.Is("getraises") || tok.Is("setraises") || tok.Is("raises")
}

// NewIgnore commits an Ignore.
func NewIgnore(t *lexer.Tokenizer) *Ignore {
	ig := &Ignore{}
	ig.TakeLeading(t)
	var sb strings.Builder
	first := t.Peek(0)
	if first.Is("inherits") {
		sb.WriteString(t.Next().Text)
		ws, getter := nextTok(t) // "getter"
		sb.WriteString(ws + getter.Text)
		ig.Text = sb.String()
		t.DidIgnore(ig.Text, first.Pos)
		return ig
	}
	sb.WriteString(t.Next().Text) // getraises/setraises/raises
	if t.Peek(0).Is("(") {
		ws, open := nextTok(t)
		sb.WriteString(ws + open.Text)
		for !t.Peek(0).Is(")") && t.HasTokens() {
			ws, tok := nextTok(t)
			sb.WriteString(ws + tok.Text)
		}
		ws, closeTok := nextTok(t)
		sb.WriteString(ws + closeTok.Text)
	}
	ig.Text = sb.String()
	t.DidIgnore(ig.Text, first.Pos)
	return ig
}

// Inheritance is `: TypeIdentifier` followed by an optional deprecated
// multi-inheritance tail (spec.md §4.2).
type Inheritance struct {
	Production
	Colon  string
	Name   *TypeIdentifier
	Legacy *IgnoreMultipleInheritance
}

func (inh *Inheritance) String() string {
	body := inh.Colon + inh.Name.String()
	if inh.Legacy != nil {
		body += inh.Legacy.String()
	}
	return inh.Render(body)
}

// PeekInheritance reports whether an Inheritance clause starts here.
func PeekInheritance(t *lexer.Tokenizer) bool {
	return t.Peek(0).Is(":")
}

// NewInheritance commits an Inheritance.
func NewInheritance(t *lexer.Tokenizer) *Inheritance {
	inh := &Inheritance{}
	inh.TakeLeading(t)
	inh.Colon = t.Next().Text
	inh.Name = NewTypeIdentifier(t)
	if PeekIgnoreMultipleInheritance(t) {
		inh.Legacy = NewIgnoreMultipleInheritance(t)
	}
	return inh
}

// IgnoreMultipleInheritance absorbs the deprecated
// `, Identifier (, Identifier)*` tail after an interface's single
// supported supertype (spec.md §4.2). Reported via DidIgnore.
type IgnoreMultipleInheritance struct {
	Production
	Names *Identifiers
}

func (im *IgnoreMultipleInheritance) String() string {
	return im.Render(im.Names.String())
}

// PeekIgnoreMultipleInheritance reports whether a legacy multi-inheritance
// tail starts here.
func PeekIgnoreMultipleInheritance(t *lexer.Tokenizer) bool {
	return t.Peek(0).Is(",")
}

// NewIgnoreMultipleInheritance commits an IgnoreMultipleInheritance.
func NewIgnoreMultipleInheritance(t *lexer.Tokenizer) *IgnoreMultipleInheritance {
	im := &IgnoreMultipleInheritance{}
	im.TakeLeading(t)
	comma := t.Next() // first ","
	im.Names = NewIdentifiers(t)
	// prepend the leading comma into the Identifiers list's own leading
	// space so String() reconstructs the original text exactly.
	im.Names.LeadingSpace = comma.Text + im.Names.LeadingSpace
	t.DidIgnore(im.String(), comma.Pos)
	return im
}
