package lexer

import (
	"github.com/kestrelscript/esfront/codepoint"
	"github.com/kestrelscript/esfront/engine"
	"github.com/kestrelscript/esfront/token"
)

// templateHead scans from the opening backtick. It produces Template if the
// literal closes without a substitution, or TemplateHead and enters
// ModeTemplateGap if it hits `${` (§4.3 "Mode transitions"). This
// implementation assumes substitutions do not themselves contain `{`/`}`
// pairs to balance, a simplification the grammar subset's lack of any
// substitution-expression grammar makes moot in practice.
func (st *State) templateHead(c *engine.Cursor[codepoint.CodePoint], b *builder) (token.Token, error) {
	return st.templateSpan(c, b, token.Template, token.TemplateHead)
}

// templateContinuation scans from a `}` encountered in ModeTemplateGap,
// producing TemplateTail (and reverting to ModeDefault) or TemplateMiddle
// (staying in the gap).
func (st *State) templateContinuation(c *engine.Cursor[codepoint.CodePoint], b *builder) (token.Token, error) {
	return st.templateSpan(c, b, token.TemplateTail, token.TemplateMiddle)
}

func (st *State) templateSpan(c *engine.Cursor[codepoint.CodePoint], b *builder, closeKind, substitutionKind token.Kind) (token.Token, error) {
	for {
		cp, err := c.Consume()
		if err != nil {
			return token.Token{}, engine.Fatalf("unterminated template literal")
		}
		b.append(cp)

		switch cp.Value {
		case '\\':
			escaped, err := c.Consume()
			if err != nil {
				return token.Token{}, engine.Fatalf("unterminated template literal")
			}
			b.append(escaped)

		case '`':
			st.Mode = ModeDefault
			return b.token(closeKind), nil

		case '$':
			brace, ok := c.TryPeek()
			if ok && brace.Value == '{' {
				c.Consume()
				b.append(brace)
				st.Mode = ModeTemplateGap
				return b.token(substitutionKind), nil
			}
		}
	}
}
