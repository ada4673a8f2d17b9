// Package markup implements the Markup subsystem (spec.md §4.5): a tree
// that mirrors the construct tree, with typed leaves (plain text, name,
// type-name, keyword, enum-value, and the structural "type" wrapper with
// its primitive/string/buffer/object sub-kinds) that a caller-supplied
// marker decorates with a (head, tail) pair per node. Grounded on
// _examples/original_source/widlparser/markup.py and protocols.py.
package markup

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cwbudde/go-webidl/internal/constructs"
)

// ConstructMarker decorates the text produced by one Construct's own
// subtree (markup.py's MarkupGenerator._markup / protocols.Marker.
// markup_construct).
type ConstructMarker interface {
	MarkupConstruct(text string, construct constructs.Construct) (head, tail string)
}

// TypeMarker decorates a nested element type wrapped via the "type" hook:
// a sequence<T>/FrozenArray<T> parameter, or a Const's ConstType
// (protocols.Marker.markup_type).
type TypeMarker interface {
	MarkupType(text string, construct constructs.Construct) (head, tail string)
}

// PrimitiveTypeMarker decorates a primitive type use (protocols.Marker.
// markup_primitive_type).
type PrimitiveTypeMarker interface {
	MarkupPrimitiveType(text string, construct constructs.Construct) (head, tail string)
}

// BufferTypeMarker decorates a buffer-related type use (ArrayBuffer,
// DataView, the typed-array family — protocols.Marker.markup_buffer_type).
type BufferTypeMarker interface {
	MarkupBufferType(text string, construct constructs.Construct) (head, tail string)
}

// StringTypeMarker decorates a string type use (ByteString/DOMString/
// USVString, and a record's key type — protocols.Marker.markup_string_type).
type StringTypeMarker interface {
	MarkupStringType(text string, construct constructs.Construct) (head, tail string)
}

// ObjectTypeMarker decorates an object type use (object/Error —
// protocols.Marker.markup_object_type).
type ObjectTypeMarker interface {
	MarkupObjectType(text string, construct constructs.Construct) (head, tail string)
}

// TypeNameMarker decorates an identifier used in type position: a typedef
// target, inheritance name, or interface-as-type reference (protocols.
// Marker.markup_type_name).
type TypeNameMarker interface {
	MarkupTypeName(text string, construct constructs.Construct) (head, tail string)
}

// NameMarker decorates a plain declared name: a member, argument, enum, or
// container identifier (protocols.Marker.markup_name).
type NameMarker interface {
	MarkupName(text string, construct constructs.Construct) (head, tail string)
}

// KeywordMarker decorates a reserved-word token: a special-operation
// marker (getter/setter/creator/deleter/legacycaller) or a symbolic
// literal (true/false/null/Infinity/-Infinity/NaN) — protocols.Marker.
// markup_keyword.
type KeywordMarker interface {
	MarkupKeyword(text string, construct constructs.Construct) (head, tail string)
}

// EnumValueMarker decorates one quoted enum value (protocols.Marker.
// markup_enum_value).
type EnumValueMarker interface {
	MarkupEnumValue(text string, construct constructs.Construct) (head, tail string)
}

// Encoder transforms plain-text leaves, e.g. for HTML escaping
// (protocols.Marker.encode). A marker without this capability leaves text
// untouched.
type Encoder interface {
	Encode(text string) string
}

// The Legacy*Marker family mirrors the original's deprecated camelCase
// method names (markupConstruct, markupType, ...). Go already exports
// PascalCase method names regardless of style, so "legacy" is expressed
// here as separate, narrower-named interfaces — one per hook, matching
// the granularity of their non-legacy counterparts above — rather than a
// casing difference. A marker satisfying one of these is probed only
// after its non-legacy counterpart misses, and firing it logs a
// one-time-per-hook warnOnce notice instead of silently preferring it.
type LegacyConstructMarker interface {
	MarkupConstructLegacy(text string, construct constructs.Construct) (head, tail string)
}

type LegacyTypeMarker interface {
	MarkupTypeLegacy(text string, construct constructs.Construct) (head, tail string)
}

type LegacyPrimitiveTypeMarker interface {
	MarkupPrimitiveTypeLegacy(text string, construct constructs.Construct) (head, tail string)
}

type LegacyBufferTypeMarker interface {
	MarkupBufferTypeLegacy(text string, construct constructs.Construct) (head, tail string)
}

type LegacyStringTypeMarker interface {
	MarkupStringTypeLegacy(text string, construct constructs.Construct) (head, tail string)
}

type LegacyObjectTypeMarker interface {
	MarkupObjectTypeLegacy(text string, construct constructs.Construct) (head, tail string)
}

type LegacyTypeNameMarker interface {
	MarkupTypeNameLegacy(text string, construct constructs.Construct) (head, tail string)
}

type LegacyNameMarker interface {
	MarkupNameLegacy(text string, construct constructs.Construct) (head, tail string)
}

type LegacyKeywordMarker interface {
	MarkupKeywordLegacy(text string, construct constructs.Construct) (head, tail string)
}

type LegacyEnumValueMarker interface {
	MarkupEnumValueLegacy(text string, construct constructs.Construct) (head, tail string)
}

// warnOnce is a process-wide, hook-name-keyed dedup registry: each
// deprecated hook name is reported at most once per process, correcting
// the original Python warning() helper's unconditional print on every
// call (spec.md §4.5 and §9 both call for "a one-time warning per
// deprecated name").
var (
	warnOnceMu   sync.Mutex
	warnOnceSeen = map[string]bool{}
	warnOnceOut  io.Writer = os.Stderr
)

// SetWarningWriter redirects warnOnce's deprecation notices, defaulting to
// os.Stderr. Intended for tests that need to assert on (or silence) the
// warning stream.
func SetWarningWriter(w io.Writer) {
	warnOnceMu.Lock()
	defer warnOnceMu.Unlock()
	if w == nil {
		w = io.Discard
	}
	warnOnceOut = w
}

// hookProbe is the shape every probeXxx function below has: given a
// marker of unknown concrete type, the plain (pre-marker) text of the
// node being decorated, and the construct it belongs to (nil for
// productions with no owning Construct, e.g. a bare type name), return
// the (head, tail) pair to wrap the node's rendered output in. Absence of
// any matching hook — the common case — yields ("", "").
type hookProbe func(marker any, text string, construct constructs.Construct) (head, tail string)

func probeConstruct(marker any, text string, construct constructs.Construct) (string, string) {
	if m, ok := marker.(ConstructMarker); ok {
		return m.MarkupConstruct(text, construct)
	}
	if m, ok := marker.(LegacyConstructMarker); ok {
		warnOnce("markupConstruct")
		return m.MarkupConstructLegacy(text, construct)
	}
	return "", ""
}

func probeType(marker any, text string, construct constructs.Construct) (string, string) {
	if m, ok := marker.(TypeMarker); ok {
		return m.MarkupType(text, construct)
	}
	if m, ok := marker.(LegacyTypeMarker); ok {
		warnOnce("markupType")
		return m.MarkupTypeLegacy(text, construct)
	}
	return "", ""
}

func probePrimitiveType(marker any, text string, construct constructs.Construct) (string, string) {
	if m, ok := marker.(PrimitiveTypeMarker); ok {
		return m.MarkupPrimitiveType(text, construct)
	}
	if m, ok := marker.(LegacyPrimitiveTypeMarker); ok {
		warnOnce("markupPrimitiveType")
		return m.MarkupPrimitiveTypeLegacy(text, construct)
	}
	return "", ""
}

func probeBufferType(marker any, text string, construct constructs.Construct) (string, string) {
	if m, ok := marker.(BufferTypeMarker); ok {
		return m.MarkupBufferType(text, construct)
	}
	if m, ok := marker.(LegacyBufferTypeMarker); ok {
		warnOnce("markupBufferType")
		return m.MarkupBufferTypeLegacy(text, construct)
	}
	return "", ""
}

func probeStringType(marker any, text string, construct constructs.Construct) (string, string) {
	if m, ok := marker.(StringTypeMarker); ok {
		return m.MarkupStringType(text, construct)
	}
	if m, ok := marker.(LegacyStringTypeMarker); ok {
		warnOnce("markupStringType")
		return m.MarkupStringTypeLegacy(text, construct)
	}
	return "", ""
}

func probeObjectType(marker any, text string, construct constructs.Construct) (string, string) {
	if m, ok := marker.(ObjectTypeMarker); ok {
		return m.MarkupObjectType(text, construct)
	}
	if m, ok := marker.(LegacyObjectTypeMarker); ok {
		warnOnce("markupObjectType")
		return m.MarkupObjectTypeLegacy(text, construct)
	}
	return "", ""
}

func probeTypeName(marker any, text string, construct constructs.Construct) (string, string) {
	if m, ok := marker.(TypeNameMarker); ok {
		return m.MarkupTypeName(text, construct)
	}
	if m, ok := marker.(LegacyTypeNameMarker); ok {
		warnOnce("markupTypeName")
		return m.MarkupTypeNameLegacy(text, construct)
	}
	return "", ""
}

func probeName(marker any, text string, construct constructs.Construct) (string, string) {
	if m, ok := marker.(NameMarker); ok {
		return m.MarkupName(text, construct)
	}
	if m, ok := marker.(LegacyNameMarker); ok {
		warnOnce("markupName")
		return m.MarkupNameLegacy(text, construct)
	}
	return "", ""
}

func probeKeyword(marker any, text string, construct constructs.Construct) (string, string) {
	if m, ok := marker.(KeywordMarker); ok {
		return m.MarkupKeyword(text, construct)
	}
	if m, ok := marker.(LegacyKeywordMarker); ok {
		warnOnce("markupKeyword")
		return m.MarkupKeywordLegacy(text, construct)
	}
	return "", ""
}

func probeEnumValue(marker any, text string, construct constructs.Construct) (string, string) {
	if m, ok := marker.(EnumValueMarker); ok {
		return m.MarkupEnumValue(text, construct)
	}
	if m, ok := marker.(LegacyEnumValueMarker); ok {
		warnOnce("markupEnumValue")
		return m.MarkupEnumValueLegacy(text, construct)
	}
	return "", ""
}

func applyEncode(marker any, text string) string {
	if m, ok := marker.(Encoder); ok {
		return m.Encode(text)
	}
	return text
}

func warnOnce(hookName string) {
	warnOnceMu.Lock()
	defer warnOnceMu.Unlock()
	if warnOnceSeen[hookName] {
		return
	}
	warnOnceSeen[hookName] = true
	fmt.Fprintf(warnOnceOut, "warning: calling deprecated marker method %q\n", hookName)
}
