package lexer

// keywords is the fixed table of WebIDL reserved words that the tokenizer
// recognizes as Symbol tokens rather than plain Identifier tokens, per
// spec.md §4.1. Buffer/string/object type names are included here too,
// since the grammar treats them as keywords wherever they appear as a
// type head.
var keywords = map[string]struct{}{
	"unsigned": {}, "long": {}, "short": {}, "float": {}, "double": {},
	"unrestricted": {}, "boolean": {}, "byte": {}, "octet": {},
	"sequence": {}, "FrozenArray": {}, "Promise": {}, "record": {},
	"object": {}, "Error": {}, "any": {}, "void": {},
	"const": {}, "enum": {}, "typedef": {}, "dictionary": {}, "namespace": {},
	"interface": {}, "mixin": {}, "partial": {}, "callback": {},
	"attribute": {}, "readonly": {}, "inherit": {}, "static": {},
	"stringifier": {}, "getter": {}, "setter": {}, "creator": {},
	"deleter": {}, "legacycaller": {}, "iterable": {}, "legacyiterable": {},
	"maplike": {}, "setlike": {}, "async": {}, "constructor": {},
	"required": {}, "optional": {}, "includes": {}, "implements": {},
	"or": {}, "true": {}, "false": {}, "null": {},
	"in": {}, "out": {}, "inherits": {},
	"getraises": {}, "setraises": {}, "raises": {},

	"ByteString": {}, "DOMString": {}, "USVString": {},
	"ArrayBuffer": {}, "DataView": {},
	"Int8Array": {}, "Int16Array": {}, "Int32Array": {},
	"Uint8Array": {}, "Uint16Array": {}, "Uint32Array": {},
	"Uint8ClampedArray": {}, "Float32Array": {}, "Float64Array": {},

	"Infinity": {}, "NaN": {},
}

// isKeyword reports whether text is a member of the WebIDL keyword table.
func isKeyword(text string) bool {
	_, ok := keywords[text]
	return ok
}

// longPunctuators is checked before single-character punctuation so that
// multi-character operators are matched greedily.
var longPunctuators = []string{"...", "::"}

// argumentNameKeywords may be used as an argument name even though they are
// reserved words elsewhere in the grammar (productions.py ARGUMENT_NAME_KEYWORDS).
var argumentNameKeywords = map[string]struct{}{
	"attribute": {}, "callback": {}, "const": {}, "deleter": {},
	"dictionary": {}, "enum": {}, "getter": {}, "includes": {},
	"inherit": {}, "interface": {}, "iterable": {}, "maplike": {},
	"namespace": {}, "partial": {}, "required": {}, "setlike": {},
	"setter": {}, "static": {}, "stringifier": {}, "typedef": {},
	"unrestricted": {},
}

// IsArgumentNameKeyword reports whether text may stand in for an argument
// name despite being reserved elsewhere.
func IsArgumentNameKeyword(text string) bool {
	_, ok := argumentNameKeywords[text]
	return ok
}

// attributeNameKeywords may be used as an attribute name (productions.py
// ATTRIBUTE_NAME_KEYWORDS).
var attributeNameKeywords = map[string]struct{}{
	"required": {},
}

// IsAttributeNameKeyword reports whether text may stand in for an
// attribute name despite being reserved elsewhere.
func IsAttributeNameKeyword(text string) bool {
	_, ok := attributeNameKeywords[text]
	return ok
}

// operationNameKeywords may be used as an operation name (productions.py
// OPERATION_NAME_KEYWORDS).
var operationNameKeywords = map[string]struct{}{
	"includes": {},
}

// IsOperationNameKeyword reports whether text may stand in for an
// operation name despite being reserved elsewhere.
func IsOperationNameKeyword(text string) bool {
	_, ok := operationNameKeywords[text]
	return ok
}

// specialSymbols enumerates the special-operation markers of spec.md §4.2.
var specialSymbols = []string{"getter", "setter", "creator", "deleter", "legacycaller"}

// IsSpecialSymbol reports whether text is one of the special-operation
// markers (getter/setter/creator/deleter/legacycaller).
func IsSpecialSymbol(text string) bool {
	for _, s := range specialSymbols {
		if s == text {
			return true
		}
	}
	return false
}
