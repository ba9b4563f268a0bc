package ast

import (
	"github.com/kestrelscript/esfront/span"
	"github.com/kestrelscript/esfront/token"
)

// MemberExpression is `object . property` (§4.4 "MemberExpression"). Dot is
// retained for round-tripping; property is fatal once the `.` has matched.
type MemberExpression struct {
	Object   Expression
	Dot      token.Token
	Property *Identifier
}

func (n *MemberExpression) Span() span.Span {
	return span.Around(n.Object.Span(), n.Property.Span())
}
func (*MemberExpression) node() {}
func (*MemberExpression) expr() {}

// CallArgument is one element of a CallExpression's argument list: an
// expression plus its optional trailing comma (§4.4 "Argument").
type CallArgument struct {
	Expression Expression
	Comma      *token.Token
}

func (a *CallArgument) Span() span.Span {
	if a.Comma != nil {
		return span.Around(a.Expression.Span(), a.Comma.Span)
	}
	return a.Expression.Span()
}
func (*CallArgument) node() {}

// CallExpression is `callee ( args,* )` (§4.4 "CallExpression"). Once `(`
// has matched, both the argument list and the closing `)` are fatal.
type CallExpression struct {
	Callee     Expression
	OpenParen  token.Token
	Args       []*CallArgument
	CloseParen token.Token
}

func (n *CallExpression) Span() span.Span {
	return span.Around(n.Callee.Span(), n.CloseParen.Span)
}
func (*CallExpression) node() {}
func (*CallExpression) expr() {}
