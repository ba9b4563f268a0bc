// Package pipeline wires the five independent stages — source, text
// decoding, code points, lexing, parsing — into the single entry point the
// CLI (and any other embedder) drives end to end.
package pipeline

import (
	"context"

	"github.com/kestrelscript/esfront/ast"
	"github.com/kestrelscript/esfront/codepoint"
	"github.com/kestrelscript/esfront/diag"
	"github.com/kestrelscript/esfront/engine"
	"github.com/kestrelscript/esfront/lexer"
	"github.com/kestrelscript/esfront/source"
	"github.com/kestrelscript/esfront/span"
	"github.com/kestrelscript/esfront/syntax"
	"github.com/kestrelscript/esfront/textdecode"
)

// Run fetches the bytes of an already-resolved url, decodes, lexes and
// parses them, and streams the resulting statement batches. Run returns
// immediately; the statement channel closes once parsing completes, the
// input is exhausted, or ctx is cancelled. The error channel is never
// closed, and at most one error is ever sent on it. Lexer and syntax errors
// are rendered through diag so they carry the standard
// "{source-url}:{line}:{column}: {message}" shape; source errors are sent
// as they are.
func Run(ctx context.Context, url source.URL) (<-chan []ast.Statement, <-chan error) {
	bytes, sourceErrs := source.Open(ctx, url)
	runes := textdecode.Decode(bytes)

	runeBatches := make(chan []rune)
	go func() {
		defer close(runeBatches)
		for r := range runes {
			select {
			case runeBatches <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	cps := codepoint.Stream(ctx, url.String(), runeBatches)
	toks, lexErrs := engine.Run(ctx, cps, lexer.New())
	stmts, synErrs := engine.Run(ctx, toks, syntax.New())

	out := make(chan []ast.Statement)
	errs := make(chan error, 1)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return

			case err, ok := <-sourceErrs:
				if ok && err != nil {
					errs <- err
					return
				}
				sourceErrs = nil

			case err, ok := <-lexErrs:
				if ok && err != nil {
					errs <- diag.FromEngineError(err, url.String(), span.Cursor{})
					return
				}
				lexErrs = nil

			case err, ok := <-synErrs:
				if ok && err != nil {
					errs <- diag.FromEngineError(err, url.String(), span.Cursor{})
					return
				}
				synErrs = nil

			case batch, ok := <-stmts:
				if !ok {
					// stmts only closes after engine.Run has already sent any
					// terminal error on its error channel, so drain both
					// non-blockingly before reporting a clean finish.
					select {
					case err := <-lexErrs:
						if err != nil {
							errs <- diag.FromEngineError(err, url.String(), span.Cursor{})
						}
					default:
					}
					select {
					case err := <-synErrs:
						if err != nil {
							errs <- diag.FromEngineError(err, url.String(), span.Cursor{})
						}
					default:
					}
					return
				}
				select {
				case out <- batch:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, errs
}
