// Package generator renders a syntax-tree node back into source text, used
// both for the round-trip property tests (§8.1 "Coverage") and the CLI's
// `--format=source` output.
package generator

import (
	"strings"

	"github.com/kestrelscript/esfront/ast"
)

// Generate renders node as ECMAScript source text.
func Generate(node ast.Node) string {
	s := &state{out: &strings.Builder{}, node: node, parent: &state{}}
	gen(s)
	return s.out.String()
}

func gen(s *state) {
	switch n := s.node.(type) {
	case nil:

	case *ast.Identifier:
		s.out.WriteString(n.Name)

	case *ast.StringLiteral:
		s.out.WriteString(n.Value)

	case *ast.MemberExpression:
		gen(s.wrap(n.Object))
		s.out.WriteString(".")
		gen(s.wrap(n.Property))

	case *ast.CallExpression:
		gen(s.wrap(n.Callee))
		s.out.WriteString("(")
		for i, arg := range n.Args {
			gen(s.wrap(arg))
			if arg.Comma != nil && i < len(n.Args)-1 {
				s.out.WriteString(" ")
			}
		}
		s.out.WriteString(")")

	case *ast.CallArgument:
		gen(s.wrap(n.Expression))
		if n.Comma != nil {
			s.out.WriteString(",")
		}

	case *ast.ExpressionStatement:
		gen(s.wrap(n.Expression))
		if n.Semicolon != nil {
			s.out.WriteString(";")
		}

	default:
		panic("generator: unhandled node type")
	}
}
