// Package errors formats the non-fatal diagnostics a Parser collects while
// walking WebIDL source: accepted-but-deprecated constructs (did_ignore)
// and malformed constructs recovered via SyntaxError (error), each tagged
// with the source position the lexer.Tokenizer reported it at.
package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/go-webidl/pkg/token"
)

// UI is the diagnostic sink every Tokenizer, Parser, and Construct reports
// to (spec.md §6). It is declared here, not imported from internal/lexer,
// so callers outside this module can implement it without depending on an
// internal package; any lexer.UI value already satisfies this interface
// structurally.
type UI interface {
	Report(message string, pos token.Position)
}

// Kind distinguishes a recoverable parse error from an accepted-deprecated
// construct notice.
type Kind int

const (
	KindError Kind = iota
	KindIgnored
)

func (k Kind) String() string {
	if k == KindIgnored {
		return "ignored"
	}
	return "error"
}

// Diagnostic is a single reported message with source position.
type Diagnostic struct {
	Kind    Kind
	Message string
	Pos     token.Position
}

// Error implements the error interface so a Diagnostic can be returned or
// wrapped like any other Go error.
func (d *Diagnostic) Error() string {
	return d.Format(false)
}

// Format renders the diagnostic with source context when source is
// available, with optional ANSI coloring for terminal output.
func (d *Diagnostic) Format(color bool) string {
	return d.FormatWithSource("", color)
}

// FormatWithSource renders the diagnostic, pointing a caret at d.Pos within
// source when source is non-empty.
func (d *Diagnostic) FormatWithSource(source string, color bool) string {
	return d.formatWithHeader(fmt.Sprintf("%s at line %d:%d", d.Kind, d.Pos.Line, d.Pos.Column), source, color)
}

// formatWithHeader renders the diagnostic body (source excerpt, caret,
// message) under an already-composed header line.
func (d *Diagnostic) formatWithHeader(header, source string, color bool) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")

	if line := sourceLine(source, d.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", d.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+d.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// CollectingUI implements lexer.UI (and satisfies the same Report(message,
// pos) shape constructs.Resolver-adjacent callers expect), accumulating
// every reported message as a Diagnostic instead of printing it. The
// Parser does not attach one on its own; pass it with parser.WithUI to
// collect a parse's diagnostics.
type CollectingUI struct {
	Source      string
	diagnostics []*Diagnostic
}

// Report implements lexer.UI. Messages produced by Tokenizer.DidIgnore are
// prefixed "ignored: "; everything else is a recoverable error.
func (u *CollectingUI) Report(message string, pos token.Position) {
	d := &Diagnostic{Message: message, Pos: pos, Kind: KindError}
	if strings.HasPrefix(message, "ignored: ") {
		d.Kind = KindIgnored
		d.Message = strings.TrimPrefix(message, "ignored: ")
	}
	u.diagnostics = append(u.diagnostics, d)
}

// Diagnostics returns every diagnostic collected so far, in report order.
func (u *CollectingUI) Diagnostics() []*Diagnostic {
	return u.diagnostics
}

// FormatAll renders every collected diagnostic, source context included
// when u.Source is set, separated by a blank line.
func (u *CollectingUI) FormatAll(color bool) string {
	var sb strings.Builder
	for i, d := range u.diagnostics {
		sb.WriteString(d.FormatWithSource(u.Source, color))
		if i < len(u.diagnostics)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// streamingUI formats and writes each diagnostic to w as it is reported,
// rather than collecting it, for callers that just want readable output on
// stderr (spec.md §6's UI sink, a ready-to-use implementation). file is
// purely cosmetic: when non-empty it is folded into the header the way a
// compiler names the file a diagnostic came from.
type streamingUI struct {
	w      io.Writer
	source string
	file   string
}

// NewDiagnosticUI returns a UI that writes each diagnostic to w immediately,
// formatted in errors.Diagnostic.FormatWithSource's style. source may be
// empty, in which case no source excerpt or caret is printed.
func NewDiagnosticUI(w io.Writer, source, file string) UI {
	return &streamingUI{w: w, source: source, file: file}
}

func (u *streamingUI) Report(message string, pos token.Position) {
	d := &Diagnostic{Message: message, Pos: pos, Kind: KindError}
	if strings.HasPrefix(message, "ignored: ") {
		d.Kind = KindIgnored
		d.Message = strings.TrimPrefix(message, "ignored: ")
	}
	header := fmt.Sprintf("%s at line %d:%d", d.Kind, pos.Line, pos.Column)
	if u.file != "" {
		header = fmt.Sprintf("%s in %s:%d:%d", d.Kind, u.file, pos.Line, pos.Column)
	}
	fmt.Fprintln(u.w, d.formatWithHeader(header, u.source, false))
}
