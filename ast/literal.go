package ast

import (
	"github.com/kestrelscript/esfront/span"
	"github.com/kestrelscript/esfront/token"
)

// StringLiteral is a single String token. Value is the raw token payload,
// surrounding quotes included (§3's Literal production names no unescaping
// operation).
type StringLiteral struct {
	Value string
	Token token.Token
}

func (n *StringLiteral) Span() span.Span { return n.Token.Span }
func (*StringLiteral) node()             {}
func (*StringLiteral) expr()             {}
