package ast

import (
	"github.com/kestrelscript/esfront/span"
	"github.com/kestrelscript/esfront/token"
)

// ExpressionStatement is an Expression followed by an optional `;` (§4.4
// "ExpressionStatement"). Each top-level coroutine invocation of the
// syntactic stage emits exactly one of these.
type ExpressionStatement struct {
	Expression Expression
	Semicolon  *token.Token
}

func (n *ExpressionStatement) Span() span.Span {
	if n.Semicolon != nil {
		return span.Around(n.Expression.Span(), n.Semicolon.Span)
	}
	return n.Expression.Span()
}
func (*ExpressionStatement) node() {}
func (*ExpressionStatement) stmt() {}
