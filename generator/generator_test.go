package generator_test

import (
	"context"
	"testing"

	"github.com/kestrelscript/esfront/codepoint"
	"github.com/kestrelscript/esfront/engine"
	"github.com/kestrelscript/esfront/generator"
	"github.com/kestrelscript/esfront/lexer"
	"github.com/kestrelscript/esfront/syntax"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	runes := make(chan []rune, 1)
	runes <- []rune(src)
	close(runes)

	cps := codepoint.Stream(context.Background(), "t.js", runes)
	toks, _ := engine.Run(context.Background(), cps, lexer.New())
	nodes, errs := engine.Run(context.Background(), toks, syntax.New())

	var out string
	for batch := range nodes {
		for _, n := range batch {
			out += generator.Generate(n)
		}
	}
	select {
	case err := <-errs:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	default:
	}
	return out
}

func TestRoundTripsCallExpression(t *testing.T) {
	src := `console.log("hi")`
	if got := generate(t, src); got != src {
		t.Fatalf("got %q want %q", got, src)
	}
}

func TestRoundTripsTrailingComma(t *testing.T) {
	src := "f(a, b,)"
	if got := generate(t, src); got != src {
		t.Fatalf("got %q want %q", got, src)
	}
}
