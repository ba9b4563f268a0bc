package syntax

import (
	"github.com/kestrelscript/esfront/ast"
	"github.com/kestrelscript/esfront/engine"
	"github.com/kestrelscript/esfront/token"
)

func init() {
	registerStatement("ExpressionStatement", parseExpressionStatement)
}

// parseExpressionStatement is ExpressionStatement = Expression, optional
// `;` (§4.4).
func parseExpressionStatement(c *engine.Cursor[token.Token]) (ast.Statement, error) {
	expr, err := parseExpression(c)
	if err != nil {
		return nil, err
	}
	skipTrivia(c)
	semi, ok, err := maybeConsumePunctuator(c, ";")
	if err != nil {
		return nil, err
	}
	stmt := &ast.ExpressionStatement{Expression: expr}
	if ok {
		stmt.Semicolon = &semi
	}
	return stmt, nil
}

// ParseStatement is the top-level dispatch coroutine (§4.4): skip trivia,
// then choose the first registered Statement variant that matches. Each
// invocation emits exactly one statement.
func ParseStatement(c *engine.Cursor[token.Token]) (ast.Statement, error) {
	skipTrivia(c)
	return engine.First(c, statementParsers()...)
}

// New returns an engine coroutine factory over the syntactic stage. Unlike
// the lexer, ParseStatement carries no state of its own between
// invocations, so every call returns the same top-level function.
func New() func() engine.Coroutine[token.Token, ast.Statement] {
	return func() engine.Coroutine[token.Token, ast.Statement] {
		return ParseStatement
	}
}
