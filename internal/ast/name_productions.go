package ast

import (
	"github.com/cwbudde/go-webidl/internal/lexer"
	"github.com/cwbudde/go-webidl/pkg/token"
)

// AttributeName is an Identifier, or one of the ATTRIBUTE_NAME_KEYWORDS
// (productions.py AttributeName).
type AttributeName struct {
	Production
	Token token.Token
}

func (n *AttributeName) Name() string   { return n.Token.Name() }
func (n *AttributeName) String() string { return n.Render(n.Token.Text) }

// PeekAttributeName reports whether an AttributeName starts here.
func PeekAttributeName(t *lexer.Tokenizer) bool {
	tok := t.Peek(0)
	return tok.Kind == token.Identifier || lexer.IsAttributeNameKeyword(tok.Text)
}

// NewAttributeName commits an AttributeName.
func NewAttributeName(t *lexer.Tokenizer) *AttributeName {
	n := &AttributeName{}
	n.TakeLeading(t)
	n.Token = t.Next()
	return n
}

// OperationName is an Identifier, or one of the OPERATION_NAME_KEYWORDS
// (productions.py OperationName).
type OperationName struct {
	Production
	Token token.Token
}

func (n *OperationName) Name() string   { return n.Token.Name() }
func (n *OperationName) String() string { return n.Render(n.Token.Text) }

// PeekOperationName reports whether an OperationName starts here.
func PeekOperationName(t *lexer.Tokenizer) bool {
	tok := t.Peek(0)
	return tok.Kind == token.Identifier || lexer.IsOperationNameKeyword(tok.Text)
}

// NewOperationName commits an OperationName.
func NewOperationName(t *lexer.Tokenizer) *OperationName {
	n := &OperationName{}
	n.TakeLeading(t)
	n.Token = t.Next()
	return n
}
