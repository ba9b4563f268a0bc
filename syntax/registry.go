// Package syntax implements the syntactic stage (§4.4): a parser coroutine
// over token.Token producing ast.Statement values, one per invocation.
package syntax

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/kestrelscript/esfront/ast"
	"github.com/kestrelscript/esfront/engine"
	"github.com/kestrelscript/esfront/token"
)

// trivia is skipped before every Statement/Expression attempt (§4.4
// "Statement").
const trivia = token.Whitespace | token.Comment | token.LineTerminator

func skipTrivia(c *engine.Cursor[token.Token]) {
	for {
		tok, ok := c.TryPeek()
		if !ok || !tok.Kind.Is(trivia) {
			return
		}
		c.Consume()
	}
}

type statementParser func(c *engine.Cursor[token.Token]) (ast.Statement, error)
type literalParser func(c *engine.Cursor[token.Token]) (ast.Expression, error)
type modifierParser func(c *engine.Cursor[token.Token], left ast.Expression) (ast.Expression, error)

// Each registry is a process-wide, read-only-after-init table from a
// concrete production's name to its parse function (§4.4 "Registration",
// §9 "Class hierarchy with self-registration"). Order matters for dispatch
// (earlier entries are tried first via engine.First); the map exists
// alongside the order slice purely so a production's presence can be
// queried/enumerated by name, e.g. for diagnostics or tests.
var (
	statementOrder    []string
	statementRegistry = map[string]statementParser{}

	literalOrder    []string
	literalRegistry = map[string]literalParser{}

	modifierOrder    []string
	modifierRegistry = map[string]modifierParser{}
)

func registerStatement(name string, p statementParser) {
	statementOrder = append(statementOrder, name)
	statementRegistry[name] = p
}

func registerLiteral(name string, p literalParser) {
	literalOrder = append(literalOrder, name)
	literalRegistry[name] = p
}

func registerExpressionModifier(name string, p modifierParser) {
	modifierOrder = append(modifierOrder, name)
	modifierRegistry[name] = p
}

// RegisteredStatementNames reports every Statement variant's registered
// name, sorted for stable output.
func RegisteredStatementNames() []string {
	names := maps.Keys(statementRegistry)
	sort.Strings(names)
	return names
}

func statementParsers() []engine.Parser[token.Token, ast.Statement] {
	out := make([]engine.Parser[token.Token, ast.Statement], len(statementOrder))
	for i, name := range statementOrder {
		out[i] = engine.Parser[token.Token, ast.Statement](statementRegistry[name])
	}
	return out
}

func literalParsers() []engine.Parser[token.Token, ast.Expression] {
	out := make([]engine.Parser[token.Token, ast.Expression], len(literalOrder))
	for i, name := range literalOrder {
		out[i] = engine.Parser[token.Token, ast.Expression](literalRegistry[name])
	}
	return out
}

func modifierParsers(left ast.Expression) []engine.Parser[token.Token, ast.Expression] {
	out := make([]engine.Parser[token.Token, ast.Expression], len(modifierOrder))
	for i, name := range modifierOrder {
		p := modifierRegistry[name]
		out[i] = func(c *engine.Cursor[token.Token]) (ast.Expression, error) {
			return p(c, left)
		}
	}
	return out
}
