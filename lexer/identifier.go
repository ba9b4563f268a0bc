package lexer

import (
	"unicode/utf8"

	"github.com/nukilabs/unicodeid"

	"github.com/kestrelscript/esfront/codepoint"
	"github.com/kestrelscript/esfront/engine"
	"github.com/kestrelscript/esfront/token"
)

// ASCII fast path mirrors the teacher's lookup-table approach; non-ASCII
// falls through to unicodeid's Unicode-property tables (§3 rule 4).
var asciiStart, asciiContinue [128]bool

func init() {
	for i := 0; i < 128; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

func isIdentifierStart(r rune) bool {
	if r < utf8.RuneSelf {
		return asciiStart[r]
	}
	return unicodeid.IsIDStartUnicode(r)
}

func isIdentifierPart(r rune) bool {
	if r < utf8.RuneSelf {
		return asciiContinue[r]
	}
	return unicodeid.IsIDContinueUnicode(r)
}

// identifier scans `[$_ L][$_ L Mn Mc Nd Pc ZWNJ ZWJ]*` (§3 rule 4). Unicode
// escape sequences (`\uXXXX`) are explicitly out of scope (§9 "Open
// questions").
func (st *State) identifier(c *engine.Cursor[codepoint.CodePoint], b *builder) (token.Token, error) {
	for {
		cp, ok := c.TryPeek()
		if !ok || !isIdentifierPart(cp.Value) {
			break
		}
		c.Consume()
		b.append(cp)
	}
	return b.token(token.Identifier), nil
}
