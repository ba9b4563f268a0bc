package lexer

import (
	"github.com/kestrelscript/esfront/codepoint"
	"github.com/kestrelscript/esfront/engine"
	"github.com/kestrelscript/esfront/token"
)

// isWhitespace matches the whitespace alphabet of §3. It is tested before
// isLineTerminator in the dispatch priority order, so a token that starts
// with U+2028/U+2029 (which appear in both sets per the distilled grammar)
// is classified as Whitespace. Inside a run started by another line
// terminator (e.g. U+2028 right after U+000A) they extend that
// LineTerminator token.
func isWhitespace(r rune) bool {
	switch r {
	case 0x0009, 0x000B, 0x000C, 0x0020, 0x00A0, 0xFEFF, 0x205F, 0x3000, 0x2028, 0x2029:
		return true
	}
	return r >= 0x2000 && r <= 0x200F
}

// isLineTerminator matches the line-terminator alphabet of §3 rule 5. CRLF
// is two consecutive terminators whose contiguous run the caller merges
// into a single token.
func isLineTerminator(r rune) bool {
	switch r {
	case 0x000A, 0x000D, 0x2028, 0x2029:
		return true
	}
	return false
}

func (st *State) whitespace(c *engine.Cursor[codepoint.CodePoint], b *builder) (token.Token, error) {
	for {
		cp, ok := c.TryPeek()
		if !ok || !isWhitespace(cp.Value) {
			break
		}
		c.Consume()
		b.append(cp)
	}
	return b.token(token.Whitespace), nil
}

func (st *State) lineTerminator(c *engine.Cursor[codepoint.CodePoint], b *builder) (token.Token, error) {
	for {
		cp, ok := c.TryPeek()
		if !ok || !isLineTerminator(cp.Value) {
			break
		}
		c.Consume()
		b.append(cp)
	}
	return b.token(token.LineTerminator), nil
}
