package constructs

import (
	"strings"

	"github.com/cwbudde/go-webidl/internal/ast"
	"github.com/cwbudde/go-webidl/internal/lexer"
	"github.com/cwbudde/go-webidl/pkg/token"
)

// Enum is `enum Identifier { EnumValueList } ;` (spec.md §3/§4.2).
type Enum struct {
	Base
	EnumKeyword token.Token
	Ident       *ast.Identifier
	Open        token.Token
	Values      []*ast.StringLiteral
	Commas      []token.Token
	Close       token.Token
}

func (e *Enum) String() string {
	var body strings.Builder
	body.WriteString(e.EnumKeyword.Text)
	body.WriteString(e.Ident.String())
	body.WriteString(e.Open.Text)
	for i, v := range e.Values {
		body.WriteString(v.String())
		if i < len(e.Commas) {
			body.WriteString(e.Commas[i].Text)
		}
	}
	body.WriteString(e.Close.Text)
	return e.Render(e.extAttrsPrefix() + body.String())
}

// Strings returns the enum's declared values, quotes stripped.
func (e *Enum) Strings() []string {
	out := make([]string, len(e.Values))
	for i, v := range e.Values {
		out[i] = strings.Trim(v.Value(), `"`)
	}
	return out
}

// PeekEnum reports whether an Enum starts here.
func PeekEnum(t *lexer.Tokenizer) bool {
	return peekPastExtendedAttributes(t, func(t *lexer.Tokenizer) bool {
		return t.Peek(0).Is("enum")
	})
}

// NewEnum commits an Enum. A trailing comma before `}` is accepted and
// reported via did_ignore (spec.md §4.2, "EnumValueList").
func NewEnum(t *lexer.Tokenizer) *Enum {
	e := &Enum{}
	e.Kind = "enum"
	e.TakeLeading(t)
	e.parseExtendedAttributes(t)
	_, kw := ast.NextToken(t)
	e.EnumKeyword = kw
	e.Ident = ast.NewIdentifier(t)
	e.NameText = e.Ident.Name()
	_, open := ast.NextToken(t)
	e.Open = open
	for ast.PeekStringLiteral(t) {
		e.Values = append(e.Values, ast.NewStringLiteral(t))
		if !t.Peek(0).Is(",") {
			break
		}
		comma := t.Next()
		e.Commas = append(e.Commas, comma)
		if t.Peek(0).Is("}") {
			t.DidIgnore(comma.Text, comma.Pos)
			break
		}
	}
	_, closeTok := ast.NextToken(t)
	e.Close = closeTok
	e.TakeTrailingSemicolon(t)
	return e
}
