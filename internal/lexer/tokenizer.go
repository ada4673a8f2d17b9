// Package lexer implements the WebIDL Tokenizer: lexical analysis plus the
// position-checkpoint stack that the Productions network uses for
// unlimited backtracking (spec.md §4.1).
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cwbudde/go-webidl/pkg/token"
	"golang.org/x/text/unicode/norm"
)

// UI is the diagnostic sink a Tokenizer reports to. It is the same
// interface the Parser and Constructs use (spec.md §6, "Diagnostics (UI
// sink)"); a nil UI silently discards all diagnostics.
type UI interface {
	Report(message string, pos token.Position)
}

// Option configures a Tokenizer at construction time, mirroring the
// functional-options idiom the teacher's lexer.Lexer uses for
// WithPreserveComments/WithTracing.
type Option func(*Tokenizer)

// WithUI attaches a diagnostic sink.
func WithUI(ui UI) Option {
	return func(t *Tokenizer) { t.ui = ui }
}

// state is a saved checkpoint of the scanning cursor, used by
// PushPosition/PopPosition. Unlike the teacher's single-slot SaveState, the
// Tokenizer keeps a stack of these so that grammar backtracking (which
// nests arbitrarily: Callback probing Mixin probing extended attributes)
// composes without caller bookkeeping.
type state struct {
	position     int
	readPosition int
	line         int
	column       int
	ch           rune
	peeked       []token.Token
}

// Tokenizer scans WebIDL source text into Tokens on demand.
type Tokenizer struct {
	input        string
	ui           UI
	position     int
	readPosition int
	line         int
	column       int
	ch           rune
	peeked       []token.Token // lookahead buffer, oldest first
	stack        []state       // checkpoint stack for PushPosition/PopPosition
}

// New creates a Tokenizer over input. A UTF-8 BOM at the start of input is
// stripped, matching the teacher's lexer.New behavior for source files
// carrying one.
func New(input string, opts ...Option) *Tokenizer {
	if len(input) >= 3 && input[0] == 0xEF && input[1] == 0xBB && input[2] == 0xBF {
		input = input[3:]
	}
	t := &Tokenizer{input: input, line: 1, column: 0}
	for _, opt := range opts {
		opt(t)
	}
	t.readChar()
	return t
}

func (t *Tokenizer) readChar() {
	if t.readPosition >= len(t.input) {
		t.ch = 0
		t.position = t.readPosition
		t.column++
		return
	}
	r, size := utf8.DecodeRuneInString(t.input[t.readPosition:])
	t.ch = r
	t.position = t.readPosition
	t.readPosition += size
	t.column++
	if r == '\n' {
		t.line++
		t.column = 0
	}
}

func (t *Tokenizer) peekChar() rune {
	if t.readPosition >= len(t.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(t.input[t.readPosition:])
	return r
}

func (t *Tokenizer) currentPos() token.Position {
	return token.Position{Line: t.line, Column: t.column, Offset: t.position}
}

// HasTokens reports whether any non-EOF input remains.
func (t *Tokenizer) HasTokens() bool {
	return t.Peek(0).Kind != token.EOF
}

// rawPeek returns the i-th token in the raw scan buffer (including
// whitespace tokens), scanning more input as needed.
func (t *Tokenizer) rawPeek(i int) token.Token {
	for len(t.peeked) <= i {
		t.peeked = append(t.peeked, t.scan())
	}
	return t.peeked[i]
}

// rawConsume removes and returns the front raw token.
func (t *Tokenizer) rawConsume() token.Token {
	tok := t.rawPeek(0)
	t.peeked = t.peeked[1:]
	return tok
}

// Next consumes and returns the next significant (non-whitespace) token,
// discarding any whitespace run immediately preceding it. Callers that
// need that trivia as leading space should call Whitespace first.
func (t *Tokenizer) Next() token.Token {
	for {
		tok := t.rawPeek(0)
		if tok.Kind == token.Whitespace {
			t.rawConsume()
			continue
		}
		t.rawConsume()
		return tok
	}
}

// Whitespace consumes and returns a whitespace token at the current
// position, or a zero-valued (empty Text) Token if none is present.
func (t *Tokenizer) Whitespace() token.Token {
	if t.rawPeek(0).Kind == token.Whitespace {
		return t.rawConsume()
	}
	return token.Token{Kind: token.Whitespace, Pos: t.currentPos()}
}

// Peek returns the n-th significant (non-whitespace) token ahead without
// consuming anything. Peek(0) is the token Next() would return.
func (t *Tokenizer) Peek(n int) token.Token {
	count := -1
	for i := 0; ; i++ {
		tok := t.rawPeek(i)
		if tok.Kind == token.Whitespace {
			continue
		}
		count++
		if count == n || tok.Kind == token.EOF {
			return tok
		}
	}
}

// SneakPeek is an alias for Peek(0), named to match spec.md §4.1's
// "peek()/sneak_peek()" pairing: sneak_peek never advances, exactly like
// Peek.
func (t *Tokenizer) SneakPeek() token.Token {
	return t.Peek(0)
}

// PushPosition saves the current scanning position and returns the token
// about to be examined, for the caller's convenience in writing
// `if tok := t.PushPosition(); ...`-style speculative code.
func (t *Tokenizer) PushPosition() token.Token {
	peekedCopy := make([]token.Token, len(t.peeked))
	copy(peekedCopy, t.peeked)
	t.stack = append(t.stack, state{
		position:     t.position,
		readPosition: t.readPosition,
		line:         t.line,
		column:       t.column,
		ch:           t.ch,
		peeked:       peekedCopy,
	})
	return t.Peek(0)
}

// PopPosition restores the most recent checkpoint iff outcome is false, and
// always returns outcome. This is the single backtracking primitive every
// production's `peek` function uses: `defer func() { ok = t.PopPosition(ok) }()`
// style, or the direct `return t.PopPosition(matched)` form.
func (t *Tokenizer) PopPosition(outcome bool) bool {
	n := len(t.stack)
	s := t.stack[n-1]
	t.stack = t.stack[:n-1]
	if !outcome {
		t.position = s.position
		t.readPosition = s.readPosition
		t.line = s.line
		t.column = s.column
		t.ch = s.ch
		t.peeked = s.peeked
	}
	return outcome
}

// DiscardPosition drops the most recent checkpoint without restoring it,
// for the (rare) case where a caller has already decided to commit and
// merely wants to balance a PushPosition it issued defensively.
func (t *Tokenizer) DiscardPosition() {
	t.stack = t.stack[:len(t.stack)-1]
}

// SyntaxError collects tokens from the current position through the first
// occurrence of a terminator whose Text is in terminators, reporting the
// capture to the UI sink. If consume is false, the terminator token itself
// is left unconsumed (pushed back onto the lookahead). The terminator
// search does not balance brackets.
func (t *Tokenizer) SyntaxError(terminators []string, consume bool) []token.Token {
	start := t.currentPos()
	var collected []token.Token
	for {
		tok := t.rawPeek(0)
		if tok.Kind == token.EOF {
			break
		}
		isTerminator := tok.Kind != token.Whitespace && containsText(terminators, tok.Text)
		if isTerminator {
			if consume {
				collected = append(collected, tok)
				t.rawConsume()
			}
			break
		}
		collected = append(collected, tok)
		t.rawConsume()
	}
	if t.ui != nil {
		t.ui.Report("syntax error: "+renderTokens(collected), start)
	}
	return collected
}

func containsText(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// PeekSymbol scans forward, without consuming, until sym is seen as the
// Text of a Symbol or Identifier token, or EOF is reached. It reports
// whether sym was found. Bracket nesting is not tracked, matching
// spec.md §4.1.
func (t *Tokenizer) PeekSymbol(sym string) bool {
	for i := 0; ; i++ {
		tok := t.Peek(i)
		if tok.IsEOF() {
			return false
		}
		if tok.Is(sym) {
			return true
		}
	}
}

// DidIgnore reports to the UI sink that x was parsed but ignored, per
// spec.md §4.1 (used for legacy in/out, multi-inheritance tails, and
// trailing enum commas).
func (t *Tokenizer) DidIgnore(x string, pos token.Position) {
	if t.ui != nil {
		t.ui.Report("ignored: "+x, pos)
	}
}

// Error reports a non-fatal diagnostic (e.g. an argument-ordering
// violation) to the UI sink. Arguments are joined with a single space,
// matching the original's plain string-concatenation convention.
func (t *Tokenizer) Error(pos token.Position, args ...string) {
	if t.ui != nil {
		t.ui.Report(strings.Join(args, " "), pos)
	}
}

func renderTokens(toks []token.Token) string {
	var sb strings.Builder
	for _, tok := range toks {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

// scan recognizes exactly one token starting at the current rune, applying
// the ordered rules of spec.md §4.1.
func (t *Tokenizer) scan() token.Token {
	if ws, ok := t.scanWhitespace(); ok {
		return ws
	}
	pos := t.currentPos()
	if t.ch == 0 {
		return token.Token{Kind: token.EOF, Pos: pos}
	}
	if t.ch == '"' {
		return t.scanString(pos)
	}
	if t.ch == '-' && strings.HasPrefix(t.input[t.position:], "-Infinity") {
		start := t.position
		for range "-Infinity" {
			t.readChar()
		}
		return token.Token{Kind: token.Float, Text: t.input[start:t.position], Pos: pos}
	}
	if isDigit(t.ch) || (t.ch == '-' && isDigit(t.peekChar())) {
		return t.scanNumber(pos)
	}
	if isIdentStart(t.ch) {
		return t.scanIdentifierOrSymbol(pos)
	}
	return t.scanPunctuator(pos)
}

func (t *Tokenizer) scanWhitespace() (token.Token, bool) {
	start := t.position
	pos := t.currentPos()
	found := false
	for {
		if unicode.IsSpace(t.ch) {
			found = true
			t.readChar()
			continue
		}
		if t.ch == '/' && t.peekChar() == '/' {
			found = true
			for t.ch != '\n' && t.ch != 0 {
				t.readChar()
			}
			continue
		}
		if t.ch == '/' && t.peekChar() == '*' {
			found = true
			t.readChar()
			t.readChar()
			for !(t.ch == '*' && t.peekChar() == '/') && t.ch != 0 {
				t.readChar()
			}
			if t.ch != 0 {
				t.readChar()
				t.readChar()
			}
			continue
		}
		break
	}
	if !found {
		return token.Token{}, false
	}
	return token.Token{Kind: token.Whitespace, Text: t.input[start:t.position], Pos: pos}, true
}

func (t *Tokenizer) scanString(pos token.Position) token.Token {
	start := t.position
	t.readChar() // opening quote
	for t.ch != '"' && t.ch != 0 {
		t.readChar()
	}
	if t.ch == '"' {
		t.readChar()
	}
	return token.Token{Kind: token.String, Text: t.input[start:t.position], Pos: pos}
}

func (t *Tokenizer) scanNumber(pos token.Position) token.Token {
	start := t.position
	if t.ch == '-' {
		t.readChar()
	}
	if t.ch == '0' && (t.peekChar() == 'x' || t.peekChar() == 'X') {
		t.readChar()
		t.readChar()
		for isHexDigit(t.ch) {
			t.readChar()
		}
		return token.Token{Kind: token.Integer, Text: t.input[start:t.position], Pos: pos}
	}
	isFloat := false
	for isDigit(t.ch) {
		t.readChar()
	}
	if t.ch == '.' && isDigit(t.peekChar()) {
		isFloat = true
		t.readChar()
		for isDigit(t.ch) {
			t.readChar()
		}
	}
	if t.ch == 'e' || t.ch == 'E' {
		save := t.position
		saveCol, saveLine, saveCh, saveRead := t.column, t.line, t.ch, t.readPosition
		t.readChar()
		if t.ch == '+' || t.ch == '-' {
			t.readChar()
		}
		if isDigit(t.ch) {
			isFloat = true
			for isDigit(t.ch) {
				t.readChar()
			}
		} else {
			t.position, t.column, t.line, t.ch, t.readPosition = save, saveCol, saveLine, saveCh, saveRead
		}
	}
	kind := token.Integer
	if isFloat {
		kind = token.Float
	}
	return token.Token{Kind: kind, Text: t.input[start:t.position], Pos: pos}
}

func (t *Tokenizer) scanIdentifierOrSymbol(pos token.Position) token.Token {
	start := t.position
	for isIdentPart(t.ch) {
		t.readChar()
	}
	text := t.input[start:t.position]
	text = norm.NFC.String(text)
	switch text {
	case "true", "false", "null":
		return token.Token{Kind: token.Symbol, Text: text, Pos: pos}
	case "Infinity", "-Infinity", "NaN":
		return token.Token{Kind: token.Float, Text: text, Pos: pos}
	}
	if isKeyword(text) {
		return token.Token{Kind: token.Symbol, Text: text, Pos: pos}
	}
	return token.Token{Kind: token.Identifier, Text: text, Pos: pos}
}

func (t *Tokenizer) scanPunctuator(pos token.Position) token.Token {
	start := t.position
	for _, long := range longPunctuators {
		if strings.HasPrefix(t.input[t.position:], long) {
			for range long {
				t.readChar()
			}
			return token.Token{Kind: token.Symbol, Text: long, Pos: pos}
		}
	}
	r := t.ch
	t.readChar()
	if r == 0 {
		return token.Token{Kind: token.EOF, Pos: pos}
	}
	return token.Token{Kind: token.Symbol, Text: t.input[start:t.position], Pos: pos}
}

func isDigit(r rune) bool      { return r >= '0' && r <= '9' }
func isHexDigit(r rune) bool   { return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') }
func isIdentStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }
func isIdentPart(r rune) bool  { return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) }
