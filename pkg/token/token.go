// Package token defines the lexical tokens produced while scanning WebIDL
// source text.
package token

import "fmt"

// Kind classifies a Token. The tokenizer assigns exactly one Kind to every
// span of input it recognizes; whitespace (including comments) is a Kind of
// its own rather than being discarded, so that source trivia can be
// reattached to the production that follows it.
type Kind int

const (
	// Illegal marks a span the tokenizer could not classify.
	Illegal Kind = iota
	// EOF marks the end of input. A Token of this Kind carries empty Text.
	EOF
	// Whitespace is a run of space/newline characters and/or comments.
	Whitespace
	// Identifier is `[A-Z_a-z][0-9A-Z_a-z]*`, including a leading `_`
	// that is stripped from Name but preserved in Text.
	Identifier
	// Symbol is punctuation (`...`, `::`, single-character punctuators) or
	// a recognized WebIDL keyword (see lexer.keywords).
	Symbol
	// String is a double-quoted string literal.
	String
	// Integer is a decimal, hexadecimal, or octal integer literal.
	Integer
	// Float is a floating point literal, or one of the symbolic float
	// keywords (`Infinity`, `-Infinity`, `NaN`) tokenized as Float for the
	// caller's convenience even though the grammar treats them as symbols.
	Float
)

// String returns a human-readable name for k, used in diagnostics.
func (k Kind) String() string {
	switch k {
	case Illegal:
		return "illegal"
	case EOF:
		return "eof"
	case Whitespace:
		return "whitespace"
	case Identifier:
		return "identifier"
	case Symbol:
		return "symbol"
	case String:
		return "string"
	case Integer:
		return "integer"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// Position locates a Token in the original source text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based rune column on the line
	Offset int // 0-based byte offset from the start of input
}

// String renders p as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit: a Kind tag, the verbatim source text that
// produced it, and the Position of its first rune.
type Token struct {
	Kind Kind
	Text string
	Pos  Position
}

// Name returns the semantic identifier text: Text with a single leading
// underscore stripped, as WebIDL specifies for identifiers that would
// otherwise collide with a keyword. Non-Identifier tokens return Text
// unchanged.
func (t Token) Name() string {
	if t.Kind == Identifier && len(t.Text) > 0 && t.Text[0] == '_' {
		return t.Text[1:]
	}
	return t.Text
}

// Is reports whether t is a Symbol or Identifier whose Text equals s. It is
// the common test used by production `peek` functions to check for a
// specific keyword or punctuator without caring whether the tokenizer
// classified it as Symbol or (for bare words that are not in the keyword
// table) Identifier.
func (t Token) Is(s string) bool {
	return (t.Kind == Symbol || t.Kind == Identifier) && t.Text == s
}

// IsEOF reports whether t marks the end of input.
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}

func (t Token) String() string {
	return t.Text
}
