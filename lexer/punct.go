package lexer

import (
	"github.com/kestrelscript/esfront/codepoint"
	"github.com/kestrelscript/esfront/engine"
	"github.com/kestrelscript/esfront/token"
)

func isPunctuatorStart(r rune) bool {
	switch r {
	case '{', '}', '(', ')', '[', ']', '.', ';', ',', '~', '?', ':',
		'<', '>', '=', '!', '+', '-', '*', '%', '&', '|', '^':
		return true
	}
	return false
}

// advanceIf consumes and appends the next code point to b iff it equals r,
// reporting whether it did.
func advanceIf(c *engine.Cursor[codepoint.CodePoint], b *builder, r rune) bool {
	cp, ok := c.TryPeek()
	if !ok || cp.Value != r {
		return false
	}
	c.Consume()
	b.append(cp)
	return true
}

// punctuator is the maximal-munch decision tree over the alphabet in §3
// rule 2 (`/` is excluded — see slash in comment.go): longer operators are always
// tried before their prefixes, so e.g. `>>>=` beats `>>>` beats `>>` beats
// `>`.
func (st *State) punctuator(c *engine.Cursor[codepoint.CodePoint], b *builder, first rune) (token.Token, error) {
	switch first {
	case '{', '}', '(', ')', '[', ']', ';', ',', '~', '?', ':':
		// single-character, no continuation possible.

	case '.':
		// integer-only numeric grammar (§9): no `...` or decimal-after-dot.

	case '<':
		advanceIf(c, b, '<')
		advanceIf(c, b, '=')

	case '>':
		if advanceIf(c, b, '>') {
			if advanceIf(c, b, '>') {
				advanceIf(c, b, '=')
			} else {
				advanceIf(c, b, '=')
			}
		} else {
			advanceIf(c, b, '=')
		}

	case '=':
		if advanceIf(c, b, '=') {
			advanceIf(c, b, '=')
		}

	case '!':
		if advanceIf(c, b, '=') {
			advanceIf(c, b, '=')
		}

	case '+':
		if !advanceIf(c, b, '+') {
			advanceIf(c, b, '=')
		}

	case '-':
		if !advanceIf(c, b, '-') {
			advanceIf(c, b, '=')
		}

	case '*':
		advanceIf(c, b, '=')

	case '%':
		advanceIf(c, b, '=')

	case '&':
		if !advanceIf(c, b, '&') {
			advanceIf(c, b, '=')
		}

	case '|':
		if !advanceIf(c, b, '|') {
			advanceIf(c, b, '=')
		}

	case '^':
		advanceIf(c, b, '=')
	}

	return b.token(token.Punctuator), nil
}
