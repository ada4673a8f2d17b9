package constructs

import (
	"github.com/cwbudde/go-webidl/internal/ast"
	"github.com/cwbudde/go-webidl/internal/lexer"
	"github.com/cwbudde/go-webidl/pkg/token"
)

// Const is `const ConstType Identifier = ConstValue ;` (spec.md §4.2),
// valid as an InterfaceMember, a MixinMember, and (legacy) a top-level
// declaration.
type Const struct {
	Base
	ConstKeyword token.Token
	Type         *ast.Type
	Ident        *ast.Identifier
	Eq           token.Token
	Value        token.Token
}

func (c *Const) String() string {
	body := c.ConstKeyword.Text + c.Type.String() + c.Ident.String() + c.Eq.Text + c.Value.Text
	return c.Render(c.extAttrsPrefix() + body)
}

// PeekConst reports whether a Const starts here.
func PeekConst(t *lexer.Tokenizer) bool {
	return peekPastExtendedAttributes(t, func(t *lexer.Tokenizer) bool {
		return t.Peek(0).Is("const")
	})
}

// constValueLiterals enumerates the allowed bare ConstValue tokens that
// are not themselves an Integer or Float (spec.md §4.2).
var constValueLiterals = map[string]struct{}{
	"true": {}, "false": {}, "null": {},
}

// NewConst commits a Const.
func NewConst(t *lexer.Tokenizer) *Const {
	c := &Const{}
	c.Kind = "const"
	c.TakeLeading(t)
	c.parseExtendedAttributes(t)
	_, kw := ast.NextToken(t)
	c.ConstKeyword = kw
	c.Type = ast.NewType(t)
	c.Ident = ast.NewIdentifier(t)
	_, eq := ast.NextToken(t)
	c.Eq = eq
	_, value := ast.NextToken(t)
	c.Value = value
	c.NameText = c.Ident.Name()
	c.TakeTrailingSemicolon(t)
	return c
}

// IsConstValueToken reports whether tok can serve as a ConstValue: a
// boolean/null keyword, an Integer, or a Float (including the symbolic
// Infinity/-Infinity/NaN, which the Tokenizer already classifies Float).
func IsConstValueToken(tok token.Token) bool {
	if tok.Kind == token.Integer || tok.Kind == token.Float {
		return true
	}
	_, ok := constValueLiterals[tok.Text]
	return ok
}
