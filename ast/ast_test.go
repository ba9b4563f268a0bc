package ast_test

import (
	"testing"

	"github.com/kestrelscript/esfront/ast"
	"github.com/kestrelscript/esfront/span"
	"github.com/kestrelscript/esfront/token"
)

func tok(kind token.Kind, payload string, begin, end int) token.Token {
	return token.Token{
		Kind:    kind,
		Payload: payload,
		Span: span.Span{
			Begin: span.Cursor{Position: begin, Column: begin},
			End:   span.Cursor{Position: end, Column: end},
		},
	}
}

func TestMemberExpressionSpanSpansObjectToProperty(t *testing.T) {
	obj := &ast.Identifier{Name: "console", Token: tok(token.Identifier, "console", 0, 7)}
	dot := tok(token.Punctuator, ".", 7, 8)
	prop := &ast.Identifier{Name: "log", Token: tok(token.Identifier, "log", 8, 11)}

	member := &ast.MemberExpression{Object: obj, Dot: dot, Property: prop}
	got := member.Span()
	if got.Begin.Position != 0 || got.End.Position != 11 {
		t.Fatalf("got span %+v", got)
	}
}

func TestExpressionStatementSpanIncludesSemicolon(t *testing.T) {
	id := &ast.Identifier{Name: "x", Token: tok(token.Identifier, "x", 0, 1)}
	semi := tok(token.Punctuator, ";", 1, 2)

	stmt := &ast.ExpressionStatement{Expression: id, Semicolon: &semi}
	got := stmt.Span()
	if got.End.Position != 2 {
		t.Fatalf("got span %+v", got)
	}

	noSemi := &ast.ExpressionStatement{Expression: id}
	if noSemi.Span().End.Position != 1 {
		t.Fatalf("got span %+v", noSemi.Span())
	}
}
