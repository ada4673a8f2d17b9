package constructs

import (
	"github.com/cwbudde/go-webidl/internal/ast"
	"github.com/cwbudde/go-webidl/internal/lexer"
	"github.com/cwbudde/go-webidl/pkg/token"
)

// ImplementsStatement is the deprecated `Identifier implements Identifier ;`
// top-level form, semantically equivalent to IncludesStatement (spec.md
// §4.4's accepted deprecated forms).
type ImplementsStatement struct {
	Base
	Left    *ast.Identifier
	Keyword token.Token
	Right   *ast.Identifier
}

func (s *ImplementsStatement) Target() string { return s.Right.Name() }

func (s *ImplementsStatement) String() string {
	body := s.Left.String() + s.Keyword.Text + s.Right.String()
	return s.Render(s.extAttrsPrefix() + body)
}

// PeekImplementsStatement reports whether `Identifier implements` starts here.
func PeekImplementsStatement(t *lexer.Tokenizer) bool {
	t.PushPosition()
	if !ast.PeekIdentifier(t) {
		return t.PopPosition(false)
	}
	ast.NewIdentifier(t)
	ok := t.Peek(0).Is("implements")
	return t.PopPosition(ok)
}

// NewImplementsStatement commits an ImplementsStatement.
func NewImplementsStatement(t *lexer.Tokenizer) *ImplementsStatement {
	s := &ImplementsStatement{}
	s.Kind = "implements"
	s.TakeLeading(t)
	s.Left = ast.NewIdentifier(t)
	s.NameText = s.Left.Name()
	_, kw := ast.NextToken(t)
	s.Keyword = kw
	s.Right = ast.NewIdentifier(t)
	s.TakeTrailingSemicolon(t)
	t.DidIgnore(s.String(), s.Left.Token.Pos)
	return s
}

// IncludesStatement is `Identifier includes Identifier ;` (spec.md §4.2/
// §4.4): Right, a Mixin, is included into Left, an Interface or Namespace.
type IncludesStatement struct {
	Base
	Left    *ast.Identifier
	Keyword token.Token
	Right   *ast.Identifier
}

func (s *IncludesStatement) Target() string { return s.Right.Name() }

func (s *IncludesStatement) String() string {
	body := s.Left.String() + s.Keyword.Text + s.Right.String()
	return s.Render(s.extAttrsPrefix() + body)
}

// PeekIncludesStatement reports whether `Identifier includes` starts here.
func PeekIncludesStatement(t *lexer.Tokenizer) bool {
	t.PushPosition()
	if !ast.PeekIdentifier(t) {
		return t.PopPosition(false)
	}
	ast.NewIdentifier(t)
	ok := t.Peek(0).Is("includes")
	return t.PopPosition(ok)
}

// NewIncludesStatement commits an IncludesStatement.
func NewIncludesStatement(t *lexer.Tokenizer) *IncludesStatement {
	s := &IncludesStatement{}
	s.Kind = "includes"
	s.TakeLeading(t)
	s.Left = ast.NewIdentifier(t)
	s.NameText = s.Left.Name()
	_, kw := ast.NextToken(t)
	s.Keyword = kw
	s.Right = ast.NewIdentifier(t)
	s.TakeTrailingSemicolon(t)
	return s
}
