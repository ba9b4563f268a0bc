package span_test

import (
	"testing"

	"github.com/kestrelscript/esfront/span"
)

func TestCursorAdvance(t *testing.T) {
	c := span.Cursor{}
	c = c.Advance('a')
	if c != (span.Cursor{Position: 1, Column: 1, Line: 0}) {
		t.Fatalf("got %+v", c)
	}
	c = c.Advance('\n')
	if c != (span.Cursor{Position: 2, Column: 0, Line: 1}) {
		t.Fatalf("got %+v", c)
	}
	c = c.Advance('\r')
	if c != (span.Cursor{Position: 3, Column: 1, Line: 1}) {
		t.Fatalf("CR should not be a line break at the cursor layer, got %+v", c)
	}
}

func TestAround(t *testing.T) {
	a := span.Span{Begin: span.Cursor{Position: 0}, End: span.Cursor{Position: 3}, Source: "x.js"}
	b := span.Span{Begin: span.Cursor{Position: 5}, End: span.Cursor{Position: 9}}
	got := span.Around(a, b)
	want := span.Span{Begin: span.Cursor{Position: 0}, End: span.Cursor{Position: 9}, Source: "x.js"}
	if !got.Equal(want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestEqualIgnoresSource(t *testing.T) {
	a := span.Span{Begin: span.Cursor{Position: 0}, End: span.Cursor{Position: 1}, Source: "a.js"}
	b := span.Span{Begin: span.Cursor{Position: 0}, End: span.Cursor{Position: 1}, Source: "b.js"}
	if !a.Equal(b) {
		t.Fatalf("expected spans to be equal regardless of source")
	}
}
