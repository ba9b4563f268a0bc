// Package lexer implements the ECMAScript lexical stage (§4.3): a dispatch
// coroutine over codepoint.CodePoint producing token.Token, driven by the
// same generic engine that drives the syntactic stage.
package lexer

import (
	"strings"

	"github.com/kestrelscript/esfront/codepoint"
	"github.com/kestrelscript/esfront/engine"
	"github.com/kestrelscript/esfront/span"
	"github.com/kestrelscript/esfront/token"
)

// Mode tracks template-literal gap nesting. It is engine-local lexer state,
// not part of the parser-engine contract (§4.3 "Mode transitions").
type Mode int

const (
	ModeDefault Mode = iota
	ModeTemplateGap
)

// State is shared across every coroutine invocation the engine starts for
// one stream: the dispatch function itself is stateless per call, but
// template-gap mode and the RegExp/DivPunctuator context flag both need to
// survive from one emitted token to the next.
type State struct {
	Mode Mode
	// RegexAllowed is the contextual flag for the RegExp/DivPunctuator
	// ambiguity: whether `/` opens a regular expression or reads as
	// division. The lexer itself updates it after each non-trivia token it
	// emits, from the kind of that token (see updateRegexAllowed); the
	// syntactic stage does not touch it.
	RegexAllowed bool
}

// New returns an engine coroutine factory closed over a fresh State, for
// engine.Run(ctx, in, lexer.New()).
func New() func() engine.Coroutine[codepoint.CodePoint, token.Token] {
	st := &State{RegexAllowed: true}
	return func() engine.Coroutine[codepoint.CodePoint, token.Token] {
		return st.next
	}
}

// builder accumulates the code points consumed for one token into its
// payload string and tracks the span they cover.
type builder struct {
	sb    strings.Builder
	begin span.Span
	last  span.Span
}

func start(cp codepoint.CodePoint) *builder {
	b := &builder{begin: cp.Span, last: cp.Span}
	b.sb.WriteRune(cp.Value)
	return b
}

func (b *builder) append(cp codepoint.CodePoint) {
	b.sb.WriteRune(cp.Value)
	b.last = cp.Span
}

func (b *builder) token(kind token.Kind) token.Token {
	return token.Token{Kind: kind, Payload: b.sb.String(), Span: span.Around(b.begin, b.last)}
}

// next is the dispatch coroutine body (§4.3): given the first code point it
// selects the matching rule, in the priority order the rules are listed,
// and drives it to completion.
func (st *State) next(c *engine.Cursor[codepoint.CodePoint]) (token.Token, error) {
	first, err := c.Consume()
	if err != nil {
		return token.Token{}, err
	}
	b := start(first)

	var tok token.Token
	switch {
	case st.Mode == ModeTemplateGap && first.Value == '}':
		tok, err = st.templateContinuation(c, b)
	case first.Value == '"' || first.Value == '\'':
		tok, err = st.stringLiteral(c, b, first.Value)
	case first.Value == '`':
		tok, err = st.templateHead(c, b)
	case first.Value != '/' && isPunctuatorStart(first.Value):
		tok, err = st.punctuator(c, b, first.Value)
	case isWhitespace(first.Value):
		tok, err = st.whitespace(c, b)
	case first.Value >= '0' && first.Value <= '9':
		for {
			cp, ok := c.TryPeek()
			if !ok || cp.Value < '0' || cp.Value > '9' {
				break
			}
			c.Consume()
			b.append(cp)
		}
		tok = b.token(token.Integer)
	case isIdentifierStart(first.Value):
		tok, err = st.identifier(c, b)
	case isLineTerminator(first.Value):
		tok, err = st.lineTerminator(c, b)
	case first.Value == '/':
		tok, err = st.slash(c, b)
	default:
		tok, err = b.token(token.Unknown), nil
	}
	if err != nil {
		return tok, err
	}
	st.updateRegexAllowed(tok)
	return tok, nil
}

// updateRegexAllowed applies the standard lexer heuristic for the
// RegExp/DivPunctuator ambiguity described in State.RegexAllowed: a `/`
// reads as division only once the preceding significant token could itself
// have ended an expression (an identifier, a literal, a closing `)`/`]`, or
// a RegExp/template-tail). Trivia tokens (whitespace, line terminators,
// comments) leave the flag untouched, since they carry no grammatical
// information.
func (st *State) updateRegexAllowed(tok token.Token) {
	if tok.Kind.Is(token.Whitespace | token.LineTerminator | token.Comment) {
		return
	}
	switch tok.Kind {
	case token.Identifier, token.Integer, token.Float, token.String,
		token.Template, token.TemplateTail, token.RegExp:
		st.RegexAllowed = false
	case token.Punctuator:
		st.RegexAllowed = tok.Payload != ")" && tok.Payload != "]"
	default:
		st.RegexAllowed = true
	}
}
