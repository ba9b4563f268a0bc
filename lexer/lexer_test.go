package lexer_test

import (
	"context"
	"testing"

	"github.com/kestrelscript/esfront/codepoint"
	"github.com/kestrelscript/esfront/engine"
	"github.com/kestrelscript/esfront/lexer"
	"github.com/kestrelscript/esfront/token"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	in := make(chan []rune, 1)
	in <- []rune(src)
	close(in)

	cps := codepoint.Stream(context.Background(), "t.js", in)
	out, errs := engine.Run(context.Background(), cps, lexer.New())

	var got []token.Token
	for batch := range out {
		got = append(got, batch...)
	}
	select {
	case err := <-errs:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	default:
	}
	return got
}

func tokenizeErr(t *testing.T, src string) error {
	t.Helper()
	in := make(chan []rune, 1)
	in <- []rune(src)
	close(in)

	cps := codepoint.Stream(context.Background(), "t.js", in)
	out, errs := engine.Run(context.Background(), cps, lexer.New())
	for range out {
	}
	return <-errs
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}
	return ks
}

func TestStringLiteralWithEscapedQuote(t *testing.T) {
	toks := tokenize(t, `"a\"b"`)
	if len(toks) != 1 || toks[0].Kind != token.String {
		t.Fatalf("got %v", toks)
	}
	if toks[0].Payload != `"a\"b"` {
		t.Fatalf("got payload %q", toks[0].Payload)
	}
}

func TestMaximalMunchPunctuator(t *testing.T) {
	toks := tokenize(t, ">>>=")
	if len(toks) != 1 || toks[0].Kind != token.Punctuator || toks[0].Payload != ">>>=" {
		t.Fatalf("got %v", toks)
	}
}

func TestBlockCommentThenIdentifier(t *testing.T) {
	toks := tokenize(t, "/* c */x")
	want := []token.Kind{token.BlockComment, token.Identifier}
	got := kinds(toks)
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v", got)
	}
}

func TestUnterminatedStringIsFatal(t *testing.T) {
	err := tokenizeErr(t, "'\nEOF'")
	if err == nil || !engine.IsFatal(err) {
		t.Fatalf("expected fatal error, got %v", err)
	}
}

func TestCoverageInvariant(t *testing.T) {
	src := "console.log(\"hi\") // trailing\n"
	toks := tokenize(t, src)
	var rebuilt string
	for _, tok := range toks {
		rebuilt += tok.Payload
	}
	if rebuilt != src {
		t.Fatalf("coverage violated: got %q want %q", rebuilt, src)
	}
}

func TestSpanContiguity(t *testing.T) {
	toks := tokenize(t, "a.b.c")
	for i := 1; i < len(toks); i++ {
		if toks[i-1].Span.End != toks[i].Span.Begin {
			t.Fatalf("span gap between token %d and %d", i-1, i)
		}
	}
}

func TestRegexLiteralWhenContextAllows(t *testing.T) {
	// New()'s initial state leaves RegexAllowed true, so a leading `/` at
	// the start of a stream lexes as RegExp.
	toks := tokenize(t, "/x/g")
	if len(toks) != 1 || toks[0].Kind != token.RegExp {
		t.Fatalf("got %v", toks)
	}
}

func TestDivisionAfterIdentifierWhenRegexDisallowed(t *testing.T) {
	toks := tokenize(t, "a/b/g")
	want := []token.Kind{token.Identifier, token.Punctuator, token.Identifier, token.Punctuator, token.Identifier}
	if len(toks) != len(want) {
		t.Fatalf("got %v", toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d: got %v want %v", i, toks[i].Kind, k)
		}
	}
}
