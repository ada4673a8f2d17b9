package constructs

import (
	"github.com/cwbudde/go-webidl/internal/ast"
	"github.com/cwbudde/go-webidl/internal/lexer"
	"github.com/cwbudde/go-webidl/pkg/token"
)

// Typedef is `typedef TypeWithExtendedAttributes Identifier ;`
// (spec.md §3/§4.2).
type Typedef struct {
	Base
	TypedefKeyword token.Token
	Type           *ast.TypeWithExtendedAttributes
	Ident          *ast.Identifier
}

func (td *Typedef) String() string {
	body := td.TypedefKeyword.Text + td.Type.String() + td.Ident.String()
	return td.Render(td.extAttrsPrefix() + body)
}

// PeekTypedef reports whether a Typedef starts here.
func PeekTypedef(t *lexer.Tokenizer) bool {
	return peekPastExtendedAttributes(t, func(t *lexer.Tokenizer) bool {
		return t.Peek(0).Is("typedef")
	})
}

// NewTypedef commits a Typedef.
func NewTypedef(t *lexer.Tokenizer) *Typedef {
	td := &Typedef{}
	td.Kind = "typedef"
	td.TakeLeading(t)
	td.parseExtendedAttributes(t)
	_, kw := ast.NextToken(t)
	td.TypedefKeyword = kw
	td.Type = ast.NewTypeWithExtendedAttributes(t)
	td.Ident = ast.NewIdentifier(t)
	td.NameText = td.Ident.Name()
	td.TakeTrailingSemicolon(t)
	return td
}
