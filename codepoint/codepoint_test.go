package codepoint_test

import (
	"context"
	"testing"

	"github.com/kestrelscript/esfront/codepoint"
)

func collect(ctx context.Context, t *testing.T, in chan []rune) []codepoint.CodePoint {
	t.Helper()
	out := codepoint.Stream(ctx, "test.js", in)
	var got []codepoint.CodePoint
	for batch := range out {
		got = append(got, batch...)
	}
	return got
}

func TestStreamOneChunk(t *testing.T) {
	ctx := context.Background()
	in := make(chan []rune, 1)
	in <- []rune("ab\nc")
	close(in)

	got := collect(ctx, t, in)
	if len(got) != 4 {
		t.Fatalf("got %d code points, want 4", len(got))
	}
	if got[0].Value != 'a' || got[0].Span.Begin.Position != 0 || got[0].Span.End.Position != 1 {
		t.Fatalf("unexpected first code point: %+v", got[0])
	}
	if got[2].Value != '\n' {
		t.Fatalf("expected newline at index 2, got %+v", got[2])
	}
	if got[3].Span.Begin.Line != 1 || got[3].Span.Begin.Column != 0 {
		t.Fatalf("expected line/col reset after newline, got %+v", got[3].Span.Begin)
	}
}

func TestStreamMultiChunkMatchesSingleChunk(t *testing.T) {
	ctx := context.Background()

	one := make(chan []rune, 1)
	one <- []rune("abc")
	close(one)
	singleChunk := collect(ctx, t, one)

	multi := make(chan []rune, 3)
	multi <- []rune("a")
	multi <- []rune("b")
	multi <- []rune("c")
	close(multi)
	multiChunk := collect(ctx, t, multi)

	if len(singleChunk) != len(multiChunk) {
		t.Fatalf("length mismatch: %d vs %d", len(singleChunk), len(multiChunk))
	}
	for i := range singleChunk {
		if singleChunk[i] != multiChunk[i] {
			t.Fatalf("code point %d differs: %+v vs %+v", i, singleChunk[i], multiChunk[i])
		}
	}
}

func TestStreamCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan []rune)
	out := codepoint.Stream(ctx, "test.js", in)
	cancel()
	if _, ok := <-out; ok {
		t.Fatalf("expected channel to close without emitting after cancellation")
	}
}
