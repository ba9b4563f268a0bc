package syntax

import (
	"github.com/kestrelscript/esfront/ast"
	"github.com/kestrelscript/esfront/engine"
	"github.com/kestrelscript/esfront/token"
)

func init() {
	registerLiteral("StringLiteral", parseStringLiteral)
	registerExpressionModifier("MemberExpression", parseMemberExpressionModifier)
	registerExpressionModifier("CallExpression", parseCallExpressionModifier)
}

func parseIdentifierNode(c *engine.Cursor[token.Token]) (*ast.Identifier, error) {
	skipTrivia(c)
	tok, err := consumeKind(c, token.Identifier, "identifier")
	if err != nil {
		return nil, err
	}
	return &ast.Identifier{Name: tok.Payload, Token: tok}, nil
}

func parseIdentifier(c *engine.Cursor[token.Token]) (ast.Expression, error) {
	return parseIdentifierNode(c)
}

func parseStringLiteral(c *engine.Cursor[token.Token]) (ast.Expression, error) {
	skipTrivia(c)
	tok, err := consumeKind(c, token.String, "string literal")
	if err != nil {
		return nil, err
	}
	return &ast.StringLiteral{Value: tok.Payload, Token: tok}, nil
}

// parseLiteral is Literal = StringLiteral (more to come) — §4.4.
func parseLiteral(c *engine.Cursor[token.Token]) (ast.Expression, error) {
	return engine.First(c, literalParsers()...)
}

// parsePrimaryExpression is PrimaryExpression = Identifier | Literal — §4.4.
func parsePrimaryExpression(c *engine.Cursor[token.Token]) (ast.Expression, error) {
	return engine.First(c, parseIdentifier, parseLiteral)
}

// parseMemberExpressionModifier is `prev . Identifier`: the `.` is
// recoverable, the identifier after it is fatal once `.` has matched
// (§4.4 "MemberExpression").
func parseMemberExpressionModifier(c *engine.Cursor[token.Token], left ast.Expression) (ast.Expression, error) {
	skipTrivia(c)
	dot, err := consumePunctuator(c, ".")
	if err != nil {
		return nil, err
	}
	property, err := engine.Fatal(c, parseIdentifierNode)
	if err != nil {
		return nil, err
	}
	return &ast.MemberExpression{Object: left, Dot: dot, Property: property}, nil
}

// callTail bundles a CallExpression's argument list and closing paren so
// they can be parsed together under a single Fatal (§4.4 "CallExpression":
// "after consuming it, both the argument list and the closing ) are
// fatal").
type callTail struct {
	args       []*ast.CallArgument
	closeParen token.Token
}

func parseArgumentsAndClose(c *engine.Cursor[token.Token]) (callTail, error) {
	var args []*ast.CallArgument
	for {
		skipTrivia(c)
		if closeTok, ok, err := maybeConsumePunctuator(c, ")"); err != nil {
			return callTail{}, err
		} else if ok {
			return callTail{args: args, closeParen: closeTok}, nil
		}

		arg, err := parseArgument(c)
		if err != nil {
			return callTail{}, err
		}
		args = append(args, arg)

		if arg.Comma == nil {
			skipTrivia(c)
			closeTok, err := consumePunctuator(c, ")")
			if err != nil {
				return callTail{}, err
			}
			return callTail{args: args, closeParen: closeTok}, nil
		}
		// comma present: loop back for another argument, or a trailing ).
	}
}

// parseArgument is Argument = Expression + optional `,` — §4.4 "Argument".
func parseArgument(c *engine.Cursor[token.Token]) (*ast.CallArgument, error) {
	expr, err := parseExpression(c)
	if err != nil {
		return nil, err
	}
	skipTrivia(c)
	comma, ok, err := maybeConsumePunctuator(c, ",")
	if err != nil {
		return nil, err
	}
	arg := &ast.CallArgument{Expression: expr}
	if ok {
		arg.Comma = &comma
	}
	return arg, nil
}

func parseCallExpressionModifier(c *engine.Cursor[token.Token], left ast.Expression) (ast.Expression, error) {
	skipTrivia(c)
	open, err := consumePunctuator(c, "(")
	if err != nil {
		return nil, err
	}
	tail, err := engine.Fatal(c, parseArgumentsAndClose)
	if err != nil {
		return nil, err
	}
	return &ast.CallExpression{Callee: left, OpenParen: open, Args: tail.args, CloseParen: tail.closeParen}, nil
}

// parseExpression is PrimaryExpression followed by zero or more modifier
// productions, left-recursion flattened into a loop (§4.4 "Expression").
func parseExpression(c *engine.Cursor[token.Token]) (ast.Expression, error) {
	left, err := parsePrimaryExpression(c)
	if err != nil {
		return nil, err
	}
	for {
		skipTrivia(c)
		next, ok, err := engine.Maybe(c, func(c *engine.Cursor[token.Token]) (ast.Expression, error) {
			return engine.First(c, modifierParsers(left)...)
		})
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}
		left = next
	}
}
