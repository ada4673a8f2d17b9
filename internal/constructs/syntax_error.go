package constructs

import (
	"strings"

	"github.com/cwbudde/go-webidl/internal/lexer"
	"github.com/cwbudde/go-webidl/pkg/token"
)

// SyntaxError is the error-recovery member spec.md §4.2 inserts when a
// container body element matches no recognized member shape: it consumes
// through the next `;`, or up to (but not including) a closing `}`, so the
// member list can continue past the damage.
type SyntaxError struct {
	Base
	Tokens []token.Token
}

func (s *SyntaxError) String() string {
	var sb strings.Builder
	for _, tok := range s.Tokens {
		sb.WriteString(tok.Text)
	}
	return s.Render(sb.String())
}

// NewSyntaxError commits a SyntaxError, consuming through `;` (inclusive)
// or up to `}` (exclusive) — the closing brace is left for the container's
// own end-of-body check.
func NewSyntaxError(t *lexer.Tokenizer) *SyntaxError {
	s := &SyntaxError{}
	s.Kind = "unknown"
	s.TakeLeading(t)
	s.Tokens = t.SyntaxError([]string{";", "}"}, false)
	if t.Peek(0).Is(";") {
		s.Tokens = append(s.Tokens, t.Next())
	}
	return s
}
