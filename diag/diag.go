// Package diag formats the single user-visible diagnostic string the
// pipeline produces per §6/§7: one fatal error terminates a stream, and it
// is rendered as "{source-url}:{line+1}:{column+1}: {message}".
package diag

import (
	"errors"
	"fmt"

	"github.com/kestrelscript/esfront/engine"
	"github.com/kestrelscript/esfront/span"
)

// Diagnostic is the structured form of a terminal pipeline error.
type Diagnostic struct {
	SourceURL string
	At        span.Cursor
	Message   string
	Fatal     bool
}

// Error renders the diagnostic in the §6 format, 1-based line/column for
// display while internal cursors stay 0-based.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.SourceURL, d.At.Line+1, d.At.Column+1, d.Message)
}

// At builds a diagnostic anchored at a span's beginning cursor — the
// offending token's start, or (for EOF-style errors) wherever the caller's
// cursor had reached.
func At(s span.Span, message string) Diagnostic {
	return Diagnostic{SourceURL: s.Source, At: s.Begin, Message: message, Fatal: true}
}

// FromEngineError adapts a terminal error surfaced by engine.Run into a
// Diagnostic anchored at cur, special-casing end-of-stream so it reads as
// an EOF diagnostic rather than a raw sentinel error (§7 "End-of-input
// inside a fatal region").
func FromEngineError(err error, sourceURL string, cur span.Cursor) Diagnostic {
	message := err.Error()
	if errors.Is(err, engine.ErrEndOfStream) {
		message = "unexpected end of input"
	} else if errors.Is(err, engine.ErrUnparsedRemainder) {
		message = engine.ErrUnparsedRemainder.Error()
	}
	return Diagnostic{SourceURL: sourceURL, At: cur, Message: message, Fatal: true}
}
