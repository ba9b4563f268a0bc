package ast

import (
	"github.com/kestrelscript/esfront/span"
	"github.com/kestrelscript/esfront/token"
)

// Identifier is a single Identifier token, e.g. `console`.
type Identifier struct {
	Name  string
	Token token.Token
}

func (n *Identifier) Span() span.Span { return n.Token.Span }
func (*Identifier) node()             {}
func (*Identifier) expr()             {}
