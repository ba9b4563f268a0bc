package lexer

import (
	"github.com/kestrelscript/esfront/codepoint"
	"github.com/kestrelscript/esfront/engine"
	"github.com/kestrelscript/esfront/token"
)

// stringLiteral scans up to the matching delim, treating backslash as
// escaping whatever code point follows it verbatim (§3 rule 1). A line
// terminator or end of input before the closing delimiter is a fatal lexical
// error (§7 "Fatal lexical").
func (st *State) stringLiteral(c *engine.Cursor[codepoint.CodePoint], b *builder, delim rune) (token.Token, error) {
	for {
		cp, err := c.Consume()
		if err != nil {
			return token.Token{}, engine.Fatalf("unclosed string literal")
		}
		b.append(cp)

		switch {
		case cp.Value == delim:
			return b.token(token.String), nil
		case isLineTerminator(cp.Value):
			return token.Token{}, engine.Fatalf("unclosed string literal")
		case cp.Value == '\\':
			escaped, err := c.Consume()
			if err != nil {
				return token.Token{}, engine.Fatalf("unclosed string literal")
			}
			b.append(escaped)
		}
	}
}
