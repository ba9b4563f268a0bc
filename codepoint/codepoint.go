// Package codepoint turns a lazy stream of decoded text-chunk batches into a
// lazy stream of CodePoint batches, each code point annotated with its Span.
// It is the leaf of the pipeline (§4.1): everything above it — the lexer and
// syntax engines — consumes CodePoint/Token/Node batches the same way.
package codepoint

import (
	"context"

	"github.com/kestrelscript/esfront/span"
)

// CodePoint is a single Unicode scalar value plus the one-code-point Span it
// occupies in the source.
type CodePoint struct {
	Value rune
	Span  span.Span
}

// Stream reads batches of runes (already-decoded text fragments; fragment
// boundaries never fall inside a code point) from in and writes batches of
// CodePoint to the returned channel, advancing a running Cursor as it goes.
// One output batch is emitted per input batch (§4.1 "Backpressure"):
// buffering is left entirely to the channels themselves, so a slow
// downstream consumer throttles production for free.
//
// sourceURL is stamped onto every emitted Span for diagnostics. Stream
// closes its output channel when in is closed or ctx is done.
func Stream(ctx context.Context, sourceURL string, in <-chan []rune) <-chan []CodePoint {
	out := make(chan []CodePoint)
	go func() {
		defer close(out)
		cur := span.Cursor{}
		for {
			select {
			case <-ctx.Done():
				return
			case chunk, ok := <-in:
				if !ok {
					return
				}
				if len(chunk) == 0 {
					continue
				}
				batch := make([]CodePoint, 0, len(chunk))
				for _, r := range chunk {
					begin := cur
					cur = cur.Advance(r)
					batch = append(batch, CodePoint{
						Value: r,
						Span:  span.Span{Begin: begin, End: cur, Source: sourceURL},
					})
				}
				select {
				case out <- batch:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
