package syntax

import (
	"fmt"

	"github.com/kestrelscript/esfront/engine"
	"github.com/kestrelscript/esfront/token"
)

func consumeKind(c *engine.Cursor[token.Token], kind token.Kind, name string) (token.Token, error) {
	return engine.ConsumeIf(c, func(t token.Token) bool { return t.Kind.Is(kind) }, name)
}

func consumePunctuator(c *engine.Cursor[token.Token], payload string) (token.Token, error) {
	return engine.ConsumeIf(c, func(t token.Token) bool {
		return t.Kind == token.Punctuator && t.Payload == payload
	}, fmt.Sprintf("%q", payload))
}

func maybeConsumePunctuator(c *engine.Cursor[token.Token], payload string) (token.Token, bool, error) {
	return engine.Maybe(c, func(c *engine.Cursor[token.Token]) (token.Token, error) {
		return consumePunctuator(c, payload)
	})
}
