package ast

import (
	"strings"

	"github.com/cwbudde/go-webidl/internal/lexer"
	"github.com/cwbudde/go-webidl/pkg/token"
)

// TypeKind tags the variant a Type node carries (spec.md §3, "Type
// (variant)"). Go has no duck-typed class hierarchy to lean on the way the
// original does, so markup and query code switches on this instead of a
// type assertion per shape.
type TypeKind int

const (
	KindPrimitive TypeKind = iota
	KindString
	KindBuffer
	KindObject
	KindIdentifier
	KindSequence
	KindFrozenArray
	KindPromise
	KindRecord
	KindUnion
	KindAny
	KindVoid
)

// bufferRelatedTypes mirrors productions.py BUFFER_RELATED_TYPES.
var bufferRelatedTypes = map[string]struct{}{
	"ArrayBuffer": {}, "DataView": {},
	"Int8Array": {}, "Int16Array": {}, "Int32Array": {},
	"Uint8Array": {}, "Uint16Array": {}, "Uint32Array": {},
	"Uint8ClampedArray": {}, "Float32Array": {}, "Float64Array": {},
}

// stringTypes mirrors productions.py STRING_TYPES.
var stringTypes = map[string]struct{}{
	"ByteString": {}, "DOMString": {}, "USVString": {},
}

// objectTypes mirrors productions.py OBJECT_TYPES.
var objectTypes = map[string]struct{}{
	"object": {}, "Error": {},
}

// Type is the unified representation of every NonAnyType/SingleType/
// UnionType shape in spec.md §3/§4.2. A single struct (rather than one Go
// type per Python class) keeps internal/markup's dispatch table small; Kind
// distinguishes the shapes that matter for markup and queries.
type Type struct {
	Production

	Kind TypeKind
	Name string // identifier name, primitive head ("unsigned long long"), or Buffer/String/Object/Promise-less head text

	Parameter *TypeWithExtendedAttributes // element type of sequence<T>/FrozenArray<T>
	Promise   *ReturnType                 // result type of Promise<T>
	KeyType   string                      // record<K, V> key type name (always a StringType per grammar)
	Value     *TypeWithExtendedAttributes // record<K, V> value type

	Members []*Type // UnionType members, in source order

	Nullable    bool
	ArraySuffix bool // legacy `T[]`, spec.md "Open question: union-type any[]"

	body string // verbatim reconstructed significant-token text, for String()
}

func (ty *Type) String() string {
	if ty == nil {
		return ""
	}
	return ty.Render(ty.body)
}

// Body returns the verbatim reconstructed significant-token text (head
// keyword/name plus any nested parameter/member text plus trailing
// nullable/array suffix), with no leading or trailing trivia. Exported for
// internal/markup, which carves a structural Type's body around its nested
// Parameter/Promise/Value/Members text to wrap each one independently.
func (ty *Type) Body() string { return ty.body }

// PeekType reports whether a Type starts at the tokenizer's current
// position: either a parenthesized UnionType or a SingleType.
func PeekType(t *lexer.Tokenizer) bool {
	tok := t.PushPosition()
	ok := tok.Is("(") || PeekSingleType(t)
	return t.PopPosition(ok)
}

// NewType commits a Type, asserting PeekType held.
func NewType(t *lexer.Tokenizer) *Type {
	ty := &Type{}
	ty.TakeLeading(t)
	if t.Peek(0).Is("(") {
		ty.parseUnion(t)
	} else {
		ty.parseSingle(t)
	}
	ty.parseSuffix(t, true)
	return ty
}

// PeekSingleType reports whether a SingleType (any* or NonAnyType) starts
// here.
func PeekSingleType(t *lexer.Tokenizer) bool {
	tok := t.Peek(0)
	if tok.Is("any") {
		return true
	}
	return PeekNonAnyType(t)
}

func (ty *Type) parseSingle(t *lexer.Tokenizer) {
	if t.Peek(0).Is("any") {
		tok := t.Next()
		ty.Kind = KindAny
		ty.body = tok.Text
		// TypeSuffixStartingWithArray: array suffix may appear before a
		// general suffix, but not a bare nullable marker directly after
		// `any` (WebIDL disallows a nullable `any`).
		ty.parseArraySuffixOnly(t)
		return
	}
	ty.parseNonAny(t)
}

// PeekNonAnyType reports whether a NonAnyType starts here (spec.md §4.2).
func PeekNonAnyType(t *lexer.Tokenizer) bool {
	tok := t.Peek(0)
	switch {
	case isPrimitiveStart(tok):
		return true
	case tok.Kind == token.Identifier:
		return true
	case tok.Is("sequence"), tok.Is("FrozenArray"), tok.Is("Promise"), tok.Is("record"):
		return true
	}
	if _, ok := stringTypes[tok.Text]; ok {
		return true
	}
	if _, ok := objectTypes[tok.Text]; ok {
		return true
	}
	if _, ok := bufferRelatedTypes[tok.Text]; ok {
		return true
	}
	return false
}

func isPrimitiveStart(tok token.Token) bool {
	switch tok.Text {
	case "unsigned", "short", "long", "float", "double", "unrestricted", "boolean", "byte", "octet":
		return true
	}
	return false
}

func (ty *Type) parseNonAny(t *lexer.Tokenizer) {
	tok := t.Peek(0)
	switch {
	case isPrimitiveStart(tok):
		ty.parsePrimitive(t)
		return
	case tok.Is("sequence"):
		ty.Kind = KindSequence
		ty.parseParametrized(t, "sequence")
		return
	case tok.Is("FrozenArray"):
		ty.Kind = KindFrozenArray
		ty.parseParametrized(t, "FrozenArray")
		return
	case tok.Is("Promise"):
		ty.Kind = KindPromise
		ty.parsePromise(t)
		return
	case tok.Is("record"):
		ty.Kind = KindRecord
		ty.parseRecord(t)
		return
	}
	if _, ok := stringTypes[tok.Text]; ok {
		ty.Kind = KindString
		tk := t.Next()
		ty.Name = tk.Text
		ty.body = tk.Text
		return
	}
	if _, ok := objectTypes[tok.Text]; ok {
		ty.Kind = KindObject
		tk := t.Next()
		ty.Name = tk.Text
		ty.body = tk.Text
		return
	}
	if _, ok := bufferRelatedTypes[tok.Text]; ok {
		ty.Kind = KindBuffer
		tk := t.Next()
		ty.Name = tk.Text
		ty.body = tk.Text
		return
	}
	// identifier reference
	id := t.Next()
	ty.Kind = KindIdentifier
	ty.Name = id.Name()
	ty.body = id.Text
}

func (ty *Type) parsePrimitive(t *lexer.Tokenizer) {
	ty.Kind = KindPrimitive
	var sb strings.Builder
	tok := t.Next()
	sb.WriteString(tok.Text)
	for tok.Text == "unsigned" || tok.Text == "unrestricted" || tok.Text == "short" || tok.Text == "long" {
		next := t.Peek(0)
		if tok.Text == "unsigned" && (next.Is("short") || next.Is("long")) {
			ws, tk := nextTok(t)
			sb.WriteString(ws + tk.Text)
			tok = tk
			continue
		}
		if tok.Text == "unrestricted" && (next.Is("float") || next.Is("double")) {
			ws, tk := nextTok(t)
			sb.WriteString(ws + tk.Text)
			tok = tk
			continue
		}
		if tok.Text == "long" && next.Is("long") {
			ws, tk := nextTok(t)
			sb.WriteString(ws + tk.Text)
			tok = tk
			continue
		}
		break
	}
	ty.Name = sb.String()
	ty.body = sb.String()
}

func (ty *Type) parseParametrized(t *lexer.Tokenizer, head string) {
	var sb strings.Builder
	sb.WriteString(t.Next().Text) // head keyword
	ws, open := nextTok(t)
	sb.WriteString(ws + open.Text) // "<"
	ty.Parameter = NewTypeWithExtendedAttributes(t)
	sb.WriteString(ty.Parameter.String())
	ws, closeTok := nextTok(t)
	sb.WriteString(ws + closeTok.Text) // ">"
	ty.Name = head
	ty.body = sb.String()
}

func (ty *Type) parsePromise(t *lexer.Tokenizer) {
	var sb strings.Builder
	sb.WriteString(t.Next().Text)
	ws, open := nextTok(t)
	sb.WriteString(ws + open.Text)
	ty.Promise = NewReturnType(t)
	sb.WriteString(ty.Promise.String())
	ws, closeTok := nextTok(t)
	sb.WriteString(ws + closeTok.Text)
	ty.Name = "Promise"
	ty.body = sb.String()
}

func (ty *Type) parseRecord(t *lexer.Tokenizer) {
	var sb strings.Builder
	sb.WriteString(t.Next().Text)
	ws, open := nextTok(t)
	sb.WriteString(ws + open.Text)
	ws, keyTok := nextTok(t)
	sb.WriteString(ws + keyTok.Text)
	ty.KeyType = keyTok.Text
	ws, comma := nextTok(t)
	sb.WriteString(ws + comma.Text)
	ty.Value = NewTypeWithExtendedAttributes(t)
	sb.WriteString(ty.Value.String())
	ws, closeTok := nextTok(t)
	sb.WriteString(ws + closeTok.Text)
	ty.Name = "record"
	ty.body = sb.String()
}

func (ty *Type) parseUnion(t *lexer.Tokenizer) {
	ty.Kind = KindUnion
	var sb strings.Builder
	sb.WriteString(t.Next().Text) // "("
	member := newUnionMemberType(t)
	ty.Members = append(ty.Members, member)
	sb.WriteString(member.String())
	for t.Peek(0).Is("or") {
		ws, orTok := nextTok(t)
		sb.WriteString(ws + orTok.Text)
		member := newUnionMemberType(t)
		ty.Members = append(ty.Members, member)
		sb.WriteString(member.String())
	}
	ws, closeTok := nextTok(t)
	sb.WriteString(ws + closeTok.Text) // ")"
	ty.body = sb.String()
}

// newUnionMemberType parses one member of a UnionType: NonAnyType, a nested
// UnionType with an optional suffix, or `any` followed by the legacy array
// suffix (spec.md §9, "Open question: union-type any[]").
func newUnionMemberType(t *lexer.Tokenizer) *Type {
	member := &Type{}
	member.TakeLeading(t)
	if t.Peek(0).Is("(") {
		member.parseUnion(t)
		member.parseSuffix(t, true)
		return member
	}
	if t.Peek(0).Is("any") {
		tok := t.Next()
		member.Kind = KindAny
		member.body = tok.Text
		member.parseArraySuffixOnly(t)
		return member
	}
	member.parseNonAny(t)
	member.parseSuffix(t, true)
	return member
}

// parseSuffix consumes TypeSuffix: an optional `?` and/or a legacy `[]`,
// in either order, repeatable, per spec.md §4.2. When allowLeadingNullable
// is false, a `?` is accepted only after a legacy `[]` has been consumed.
func (ty *Type) parseSuffix(t *lexer.Tokenizer, allowLeadingNullable bool) {
	for {
		if allowLeadingNullable && !ty.Nullable && t.Peek(0).Is("?") {
			ws, tok := nextTok(t)
			ty.body += ws + tok.Text
			ty.Nullable = true
			continue
		}
		if t.Peek(0).Is("[") && t.Peek(1).Is("]") {
			ws1, open := nextTok(t)
			ws2, closeTok := nextTok(t)
			ty.body += ws1 + open.Text + ws2 + closeTok.Text
			ty.ArraySuffix = true
			allowLeadingNullable = true
			continue
		}
		break
	}
}

// parseArraySuffixOnly implements TypeSuffixStartingWithArray: the legacy
// array suffix must come first (if present at all) for a bare `any`.
func (ty *Type) parseArraySuffixOnly(t *lexer.Tokenizer) {
	if t.Peek(0).Is("[") && t.Peek(1).Is("]") {
		ws1, open := nextTok(t)
		ws2, closeTok := nextTok(t)
		ty.body += ws1 + open.Text + ws2 + closeTok.Text
		ty.ArraySuffix = true
		ty.parseSuffix(t, true)
	}
}

// TypeWithExtendedAttributes wraps an optional `[ ... ]` extended-attribute
// list ahead of a Type (spec.md §4.2). The extended-attribute list itself
// is modeled in package constructs (it is a named Construct variant per
// spec.md §3); this production stores only its raw rendered text to avoid
// an ast<->constructs import cycle, matching the original's looser
// coupling between productions.py and constructs.py at this one seam.
type TypeWithExtendedAttributes struct {
	Production
	ExtendedAttributes string
	Type               *Type
}

func (tw *TypeWithExtendedAttributes) String() string {
	return tw.Render(tw.ExtendedAttributes + tw.Type.String())
}

// PeekTypeWithExtendedAttributes reports whether this production starts
// here.
func PeekTypeWithExtendedAttributes(t *lexer.Tokenizer) bool {
	tok := t.PushPosition()
	ok := tok.Is("[") || PeekType(t)
	return t.PopPosition(ok)
}

// ExtendedAttributeListParser is supplied by package constructs so this
// production can consume a leading `[ ... ]` without importing constructs
// directly.
type ExtendedAttributeListParser func(t *lexer.Tokenizer) (rendered string, ok bool)

// extAttrParser is installed by constructs.init via RegisterExtendedAttributeListParser.
var extAttrParser ExtendedAttributeListParser

// RegisterExtendedAttributeListParser wires package constructs's
// ExtendedAttributeList parser into this package, breaking what would
// otherwise be an import cycle (constructs depends on ast for Type, and
// TypeWithExtendedAttributes needs to parse an ExtendedAttributeList).
func RegisterExtendedAttributeListParser(p ExtendedAttributeListParser) {
	extAttrParser = p
}

// NewTypeWithExtendedAttributes commits a TypeWithExtendedAttributes.
func NewTypeWithExtendedAttributes(t *lexer.Tokenizer) *TypeWithExtendedAttributes {
	tw := &TypeWithExtendedAttributes{}
	tw.TakeLeading(t)
	if t.Peek(0).Is("[") && extAttrParser != nil {
		rendered, ok := extAttrParser(t)
		if ok {
			tw.ExtendedAttributes = rendered
		}
	}
	tw.Type = NewType(t)
	return tw
}

// ReturnType is a Type, or the bare keyword `void`.
type ReturnType struct {
	Production
	Type *Type // nil when Void
	Void bool
}

func (r *ReturnType) String() string {
	if r.Void {
		return r.Render("void")
	}
	return r.Render(r.Type.String())
}

// PeekReturnType reports whether a ReturnType starts here.
func PeekReturnType(t *lexer.Tokenizer) bool {
	return t.Peek(0).Is("void") || PeekType(t)
}

// NewReturnType commits a ReturnType.
func NewReturnType(t *lexer.Tokenizer) *ReturnType {
	r := &ReturnType{}
	r.TakeLeading(t)
	if t.Peek(0).Is("void") {
		t.Next()
		r.Void = true
		return r
	}
	r.Type = NewType(t)
	return r
}
