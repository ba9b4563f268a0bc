package lexer

import (
	"github.com/kestrelscript/esfront/codepoint"
	"github.com/kestrelscript/esfront/engine"
	"github.com/kestrelscript/esfront/token"
)

// slash implements §3 rule 6: on `/`, look one code point ahead to choose
// between a line comment, a block comment, `/=`, a RegExp literal (when the
// preceding grammatical context allows one), or plain division.
func (st *State) slash(c *engine.Cursor[codepoint.CodePoint], b *builder) (token.Token, error) {
	next, ok := c.TryPeek()
	if ok {
		switch next.Value {
		case '/':
			c.Consume()
			b.append(next)
			return st.lineComment(c, b)
		case '*':
			c.Consume()
			b.append(next)
			return st.blockComment(c, b)
		case '=':
			c.Consume()
			b.append(next)
			return b.token(token.Punctuator), nil
		}
	}
	if st.RegexAllowed {
		return st.regexLiteral(c, b)
	}
	return b.token(token.Punctuator), nil
}

func (st *State) lineComment(c *engine.Cursor[codepoint.CodePoint], b *builder) (token.Token, error) {
	for {
		cp, ok := c.TryPeek()
		if !ok || isLineTerminator(cp.Value) {
			break
		}
		c.Consume()
		b.append(cp)
	}
	return b.token(token.LineComment), nil
}

// blockComment scans to the matching `*/`; running off the end of input is
// a fatal lexical error (§7 "Fatal lexical").
func (st *State) blockComment(c *engine.Cursor[codepoint.CodePoint], b *builder) (token.Token, error) {
	for {
		cp, err := c.Consume()
		if err != nil {
			return token.Token{}, engine.Fatalf("unclosed block comment")
		}
		b.append(cp)
		if cp.Value != '*' {
			continue
		}
		star, ok := c.TryPeek()
		if ok && star.Value == '/' {
			c.Consume()
			b.append(star)
			return b.token(token.BlockComment), nil
		}
	}
}

// regexLiteral scans a minimal RegExp literal: body up to an unescaped,
// unbracketed `/`, then trailing identifier-part flag characters. Character
// classes (`[...]`) suspend the closing-slash check, since `/` inside one is
// not the terminator.
func (st *State) regexLiteral(c *engine.Cursor[codepoint.CodePoint], b *builder) (token.Token, error) {
	inClass := false
	for {
		cp, err := c.Consume()
		if err != nil {
			return token.Token{}, engine.Fatalf("unclosed regular expression literal")
		}
		b.append(cp)

		switch {
		case isLineTerminator(cp.Value):
			return token.Token{}, engine.Fatalf("unclosed regular expression literal")
		case cp.Value == '\\':
			escaped, err := c.Consume()
			if err != nil {
				return token.Token{}, engine.Fatalf("unclosed regular expression literal")
			}
			b.append(escaped)
		case cp.Value == '[':
			inClass = true
		case cp.Value == ']':
			inClass = false
		case cp.Value == '/' && !inClass:
			for {
				flag, ok := c.TryPeek()
				if !ok || !isIdentifierPart(flag.Value) {
					break
				}
				c.Consume()
				b.append(flag)
			}
			return b.token(token.RegExp), nil
		}
	}
}
