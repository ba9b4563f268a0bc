// Package ast defines the syntax-tree node set for the grammar subset (§3,
// §4.4): Identifier, StringLiteral, MemberExpression, CallExpression,
// CallArgument, ExpressionStatement. Every node retains the tokens it
// consumed, for round-tripping and diagnostics.
package ast

import "github.com/kestrelscript/esfront/span"

// Node is the sum type every syntax-tree value implements. node() is an
// unexported marker method, sealing the set of implementers to this
// package.
type Node interface {
	Span() span.Span
	node()
}

// Expression is the Node sub-interface for anything that can stand in
// expression position.
type Expression interface {
	Node
	expr()
}

// Statement is the Node sub-interface for top-level productions the
// syntactic stage emits one at a time (§4.4).
type Statement interface {
	Node
	stmt()
}
