package markup

import (
	"encoding/json"
	"reflect"

	"github.com/tidwall/gjson"
)

// funcPointer returns fn's entry address, used to compare two hookProbe
// values for identity (Go forbids comparing func values with == directly).
func funcPointer(fn hookProbe) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// debugEntry is one node of a Generator's subtree, flattened into a JSON-
// friendly shape for ad-hoc inspection: a construct's idl_type/name when
// the node is a construct-hooked Generator, the leaf's own role
// ("name"/"type-name"/"keyword"/"enum-value"/"text") otherwise, and its
// unmarked plain text.
type debugEntry struct {
	Role     string       `json:"role"`
	IdlType  string       `json:"idl_type,omitempty"`
	Name     string       `json:"name,omitempty"`
	Text     string       `json:"text,omitempty"`
	Children []debugEntry `json:"children,omitempty"`
}

func describeLeaf(l *leaf) debugEntry {
	role := "text"
	switch {
	case l.hook == nil:
		role = "text"
	case sameHook(l.hook, probeName):
		role = "name"
	case sameHook(l.hook, probeTypeName):
		role = "type-name"
	case sameHook(l.hook, probeKeyword):
		role = "keyword"
	case sameHook(l.hook, probeEnumValue):
		role = "enum-value"
	case sameHook(l.hook, probePrimitiveType):
		role = "primitive-type"
	case sameHook(l.hook, probeBufferType):
		role = "buffer-type"
	case sameHook(l.hook, probeStringType):
		role = "string-type"
	case sameHook(l.hook, probeObjectType):
		role = "object-type"
	}
	return debugEntry{Role: role, Text: l.text}
}

func describeGenerator(g *Generator) debugEntry {
	role := "group"
	switch {
	case sameHook(g.hook, probeConstruct):
		role = "construct"
	case sameHook(g.hook, probeType):
		role = "type"
	}
	e := debugEntry{Role: role, Text: g.plainText()}
	if g.construct != nil {
		e.IdlType = g.construct.IdlType()
		e.Name = g.construct.Name()
	}
	for _, child := range g.children {
		switch c := child.(type) {
		case *leaf:
			e.Children = append(e.Children, describeLeaf(c))
		case *Generator:
			e.Children = append(e.Children, describeGenerator(c))
		}
	}
	return e
}

// sameHook compares two hookProbe values by pointer identity. hookProbe is
// a plain func value, which Go allows comparing against nil but not
// against another func value directly outside of that; reflect.ValueOf(...).Pointer()
// gives the underlying function's entry address, stable for the package-level
// probeXxx functions debug.go discriminates between.
func sameHook(a, b hookProbe) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return funcPointer(a) == funcPointer(b)
}

// DebugJSON renders g's subtree as an indented JSON document describing
// every node's role, owning construct (when any), and plain text —
// intended for a developer inspecting why a marker did or didn't fire on
// a given node, not for machine consumption.
func (g *Generator) DebugJSON() string {
	b, err := json.MarshalIndent(describeGenerator(g), "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

// DebugQuery runs a gjson path expression (e.g. "children.#(role==construct).name")
// against a DebugJSON document and returns the matched value's raw text, ""
// if nothing matches. This is the dumper's read side: DebugJSON builds the
// document, DebugQuery lets a caller (or a REPL-style debug command) drill
// into one field of it without hand-rolling JSON traversal.
func DebugQuery(doc, path string) string {
	result := gjson.Get(doc, path)
	if !result.Exists() {
		return ""
	}
	return result.String()
}

// DebugQueryMany runs path against every element of a JSON array value
// (typically a node's "children") and returns each match's raw text, using
// gjson's multi-path ForEach to avoid re-parsing doc once per child.
func DebugQueryMany(doc, arrayPath, fieldPath string) []string {
	var out []string
	gjson.Get(doc, arrayPath).ForEach(func(_, value gjson.Result) bool {
		out = append(out, value.Get(fieldPath).String())
		return true
	})
	return out
}
