package markup

import (
	"strings"

	"github.com/cwbudde/go-webidl/internal/constructs"
)

// node is one entry in a Generator's child list: either a leaf (plain
// text, or one of the typed leaf roles) or another Generator acting as a
// structural wrapper (a construct's own subtree, or a "type" hook's
// nested element). Grounded on markup.py's MarkupGenerator/MarkupText
// class hierarchy.
type node interface {
	plainText() string
	markup(marker any) string
}

// leaf is a single run of text, optionally decorated by one of the named
// hooks (name/type-name/keyword/enum-value) before encode is applied.
// A leaf with a nil hook is markup.py's plain MarkupText: encoded, but
// never head/tail-wrapped.
type leaf struct {
	hook      hookProbe
	text      string
	construct constructs.Construct
}

func (l *leaf) plainText() string { return l.text }

func (l *leaf) markup(marker any) string {
	encoded := applyEncode(marker, l.text)
	if l.hook == nil {
		return encoded
	}
	head, tail := l.hook(marker, l.text, l.construct)
	return head + encoded + tail
}

// Generator is the structural node type: markup.py's MarkupGenerator and
// its MarkupType/MarkupPrimitiveType/MarkupBufferType/MarkupStringType/
// MarkupObjectType subclasses collapse into this one type, distinguished
// only by which hook (if any) wraps their children's rendered output.
// A Generator with a nil construct and nil hook is a plain grouping node
// (used internally while building a construct's own subtree before it is
// attached to its parent).
type Generator struct {
	hook      hookProbe
	construct constructs.Construct
	children  []node
}

// NewGenerator returns a root generator for one construct's own markup
// subtree (markup.py's `MarkupGenerator(self)` inside Construct.markup).
// construct may be nil for the parser's own top-level generator, which
// groups every top-level construct without itself decorating anything.
func NewGenerator(construct constructs.Construct) *Generator {
	if construct == nil {
		return &Generator{}
	}
	return &Generator{hook: probeConstruct, construct: construct}
}

func (g *Generator) plainText() string {
	var sb strings.Builder
	for _, c := range g.children {
		sb.WriteString(c.plainText())
	}
	return sb.String()
}

// Text is plainText exported for callers (e.g. a debug dumper) that want
// the unmarked rendering of a subtree.
func (g *Generator) Text() string { return g.plainText() }

func (g *Generator) markup(marker any) string {
	var sb strings.Builder
	for _, c := range g.children {
		sb.WriteString(c.markup(marker))
	}
	body := sb.String()
	if g.hook == nil {
		return body
	}
	head, tail := g.hook(marker, g.plainText(), g.construct)
	return head + body + tail
}

// Markup is the public entry point: apply marker to this subtree and
// return the decorated text (parser.py's `generator.markup(marker)`).
func (g *Generator) Markup(marker any) string { return g.markup(marker) }

// AddGenerator appends a fully-built child subtree, e.g. one member
// construct's generator onto its container's generator (markup.py's
// add_generator).
func (g *Generator) AddGenerator(child *Generator) {
	if child == nil {
		return
	}
	g.children = append(g.children, child)
}

// AddText appends (or extends) a plain, unhooked text run. Consecutive
// AddText calls coalesce into a single leaf, mirroring markup.py's
// add_text special-casing consecutive MarkupText children.
func (g *Generator) AddText(text string) {
	if text == "" {
		return
	}
	if len(g.children) > 0 {
		if last, ok := g.children[len(g.children)-1].(*leaf); ok && last.hook == nil {
			last.text += text
			return
		}
	}
	g.children = append(g.children, &leaf{text: text, construct: g.construct})
}

// AddName appends a declared-name leaf (markup.py's add_name).
func (g *Generator) AddName(name string) {
	if name == "" {
		return
	}
	g.children = append(g.children, &leaf{hook: probeName, text: name, construct: g.construct})
}

// AddTypeName appends a type-position identifier leaf (markup.py's
// add_type_name).
func (g *Generator) AddTypeName(name string) {
	if name == "" {
		return
	}
	g.children = append(g.children, &leaf{hook: probeTypeName, text: name, construct: g.construct})
}

// AddKeyword appends a reserved-word leaf (markup.py's add_keyword):
// reserved for Special tokens (getter/setter/creator/deleter/
// legacycaller) and the symbolic literals true/false/null/Infinity/
// -Infinity/NaN — every other construct-level keyword renders through
// AddText instead, matching productions.py's Symbol._markup dispatch.
func (g *Generator) AddKeyword(keyword string) {
	if keyword == "" {
		return
	}
	g.children = append(g.children, &leaf{hook: probeKeyword, text: keyword, construct: g.construct})
}

// AddEnumValue appends one quoted enum value leaf (markup.py's
// add_enum_value).
func (g *Generator) AddEnumValue(value string) {
	if value == "" {
		return
	}
	g.children = append(g.children, &leaf{hook: probeEnumValue, text: value, construct: g.construct})
}

// typeKindHook picks the sub-hook a Type's own rendered text should be
// wrapped with, mirroring how Type._define_markup (the original's
// per-Type-kind dispatch feeding into MarkupPrimitiveType/
// MarkupBufferType/MarkupStringType/MarkupObjectType/plain MarkupType)
// routes by kind.
type typeKindHook int

const (
	typeKindGeneric typeKindHook = iota
	typeKindPrimitive
	typeKindBuffer
	typeKindString
	typeKindObject
)

// addTypeChild appends text directly into a Generator that is itself
// already wrapped by the "type" hook (AddType below) — used to build the
// nested children of a MarkupType/MarkupPrimitiveType/etc. subtree before
// it is wrapped.
func (g *Generator) addTypeChild(kind typeKindHook, text string) {
	if text == "" {
		return
	}
	var hook hookProbe
	switch kind {
	case typeKindPrimitive:
		hook = probePrimitiveType
	case typeKindBuffer:
		hook = probeBufferType
	case typeKindString:
		hook = probeStringType
	case typeKindObject:
		hook = probeObjectType
	default:
		return
	}
	g.children = append(g.children, &leaf{hook: hook, text: text, construct: g.construct})
}

// newTypeWrapper builds the structural "type" hook wrapper itself
// (markup.py's MarkupType(construct, type), whose _markup probes
// markup_type). The caller populates its children (via AddText/
// addTypeChild/AddTypeName/recursing into a nested type), then attaches
// it with AddGenerator.
func newTypeWrapper(construct constructs.Construct) *Generator {
	return &Generator{hook: probeType, construct: construct}
}

// AddType appends a nested element type wrapped in the "type" hook,
// surrounded by its own leading/trailing whitespace and trailing
// semicolon text (markup.py's add_type: the only one of the five
// add_*_type methods that adds surrounding text — the other four wrap
// their node directly with no leading/trailing of their own). build
// populates the wrapper's own children from the type's structure; a nil
// build means "no type to add" and the call is a no-op, matching
// add_type's own `if type:` guard.
func (g *Generator) AddType(leading, semicolon, trailing string, build func(w *Generator)) {
	if build == nil {
		return
	}
	g.AddText(leading)
	w := newTypeWrapper(g.construct)
	build(w)
	g.AddGenerator(w)
	g.AddText(semicolon)
	g.AddText(trailing)
}

// AddPrimitiveType/AddBufferType/AddStringType/AddObjectType append a
// type-sub-kind leaf directly, with no surrounding leading/trailing text
// of their own (markup.py's add_primitive_type/add_buffer_type/
// add_string_type/add_object_type).
func (g *Generator) AddPrimitiveType(text string) { g.addTypeChild(typeKindPrimitive, text) }
func (g *Generator) AddBufferType(text string)    { g.addTypeChild(typeKindBuffer, text) }
func (g *Generator) AddStringType(text string)    { g.addTypeChild(typeKindString, text) }
func (g *Generator) AddObjectType(text string)    { g.addTypeChild(typeKindObject, text) }
