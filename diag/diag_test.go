package diag_test

import (
	"testing"

	"github.com/kestrelscript/esfront/diag"
	"github.com/kestrelscript/esfront/engine"
	"github.com/kestrelscript/esfront/span"
)

func TestErrorFormat(t *testing.T) {
	d := diag.Diagnostic{SourceURL: "file:///x.js", At: span.Cursor{Line: 2, Column: 4}, Message: "boom"}
	want := "file:///x.js:3:5: boom"
	if got := d.Error(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFromEngineErrorEOF(t *testing.T) {
	d := diag.FromEngineError(engine.ErrEndOfStream, "x.js", span.Cursor{})
	if d.Message != "unexpected end of input" {
		t.Fatalf("got %q", d.Message)
	}
}
