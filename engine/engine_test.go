package engine_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kestrelscript/esfront/engine"
)

// word reads runes up to (and consuming) the next space or end of stream,
// returning everything read before the space.
func word(c *engine.Cursor[rune]) (string, error) {
	var sb strings.Builder
	for {
		r, err := c.Consume()
		if err != nil {
			if errors.Is(err, engine.ErrEndOfStream) && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
		if r == ' ' {
			return sb.String(), nil
		}
		sb.WriteRune(r)
	}
}

func feed(ch chan []rune, s string) {
	ch <- []rune(s)
	close(ch)
}

func TestEngineSplitsWords(t *testing.T) {
	in := make(chan []rune, 1)
	feed(in, "the quick fox")

	out, errs := engine.Run(context.Background(), in, func() engine.Coroutine[rune, string] {
		return word
	})

	var got []string
	for batch := range out {
		got = append(got, batch...)
	}
	select {
	case err := <-errs:
		t.Fatalf("unexpected error: %v", err)
	default:
	}

	want := []string{"the", "quick", "fox"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestEngineMultiChunkMatchesSingleChunk(t *testing.T) {
	run := func(chunks ...string) []string {
		in := make(chan []rune, len(chunks))
		for _, c := range chunks {
			in <- []rune(c)
		}
		close(in)
		out, _ := engine.Run(context.Background(), in, func() engine.Coroutine[rune, string] {
			return word
		})
		var got []string
		for batch := range out {
			got = append(got, batch...)
		}
		return got
	}

	single := run("ab cd ef")
	multi := run("ab c", "d e", "f")

	if len(single) != len(multi) {
		t.Fatalf("length mismatch: %v vs %v", single, multi)
	}
	for i := range single {
		if single[i] != multi[i] {
			t.Fatalf("mismatch at %d: %v vs %v", i, single, multi)
		}
	}
}

// noProgress violates the engine invariant by returning without consuming.
func noProgress(c *engine.Cursor[rune]) (string, error) {
	return "", nil
}

func TestEngineNoProgressIsFatal(t *testing.T) {
	in := make(chan []rune, 1)
	feed(in, "x")

	_, errs := engine.Run(context.Background(), in, func() engine.Coroutine[rune, string] {
		return noProgress
	})

	err := <-errs
	if !errors.Is(err, engine.ErrNoProgress) {
		t.Fatalf("expected ErrNoProgress, got %v", err)
	}
}

func TestMaybeRestoresPosition(t *testing.T) {
	in := make(chan []rune, 1)
	feed(in, "ab")

	coroutine := func(c *engine.Cursor[rune]) (string, error) {
		before := c.Position()
		_, ok, err := engine.Maybe(c, func(c *engine.Cursor[rune]) (rune, error) {
			r, err := c.Consume()
			if err != nil {
				return 0, err
			}
			if r != 'z' {
				return 0, errors.New("expected z")
			}
			return r, nil
		})
		if err != nil {
			return "", err
		}
		if ok {
			t.Fatalf("expected maybe to fail")
		}
		after := c.Position()
		if before != after {
			t.Fatalf("position not restored: before=%d after=%d", before, after)
		}
		// Consume the rest so the coroutine makes progress.
		r1, _ := c.Consume()
		r2, _ := c.Consume()
		return string([]rune{r1, r2}), nil
	}

	out, errs := engine.Run(context.Background(), in, func() engine.Coroutine[rune, string] {
		return coroutine
	})
	var got []string
	for batch := range out {
		got = append(got, batch...)
	}
	select {
	case err := <-errs:
		t.Fatalf("unexpected error: %v", err)
	default:
	}
	if len(got) != 1 || got[0] != "ab" {
		t.Fatalf("got %v", got)
	}
}

func TestFirstReportsFurthestFailure(t *testing.T) {
	in := make(chan []rune, 1)
	feed(in, "abx")

	// Branch A matches "ab" then fails on the third char; branch B fails
	// immediately. First should report branch A's failure (it went further).
	branchA := func(c *engine.Cursor[rune]) (string, error) {
		for _, want := range []rune{'a', 'b', 'c'} {
			r, err := c.Consume()
			if err != nil {
				return "", err
			}
			if r != want {
				return "", errors.New("branch A: unexpected " + string(r))
			}
		}
		return "A", nil
	}
	branchB := func(c *engine.Cursor[rune]) (string, error) {
		r, err := c.Consume()
		if err != nil {
			return "", err
		}
		if r != 'z' {
			return "", errors.New("branch B: unexpected " + string(r))
		}
		return "B", nil
	}

	coroutine := func(c *engine.Cursor[rune]) (string, error) {
		v, err := engine.First(c, branchA, branchB)
		if err != nil {
			return "", err
		}
		return v, nil
	}

	_, errs := engine.Run(context.Background(), in, func() engine.Coroutine[rune, string] {
		return coroutine
	})
	err := <-errs
	if err == nil || !strings.Contains(err.Error(), "branch A") {
		t.Fatalf("expected furthest failure from branch A, got %v", err)
	}
}

func TestFatalBypassesMaybe(t *testing.T) {
	in := make(chan []rune, 1)
	feed(in, "a")

	coroutine := func(c *engine.Cursor[rune]) (string, error) {
		_, _, err := engine.Maybe(c, func(c *engine.Cursor[rune]) (string, error) {
			_, err := c.Consume()
			if err != nil {
				return "", err
			}
			return "", engine.Fatalf("committed failure")
		})
		return "", err
	}

	_, errs := engine.Run(context.Background(), in, func() engine.Coroutine[rune, string] {
		return coroutine
	})
	err := <-errs
	if err == nil || !engine.IsFatal(err) {
		t.Fatalf("expected fatal error to bypass Maybe, got %v", err)
	}
}

func TestEngineCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan []rune)

	out, _ := engine.Run(ctx, in, func() engine.Coroutine[rune, string] {
		return word
	})
	cancel()

	select {
	case _, ok := <-out:
		if ok {
			t.Fatalf("expected no output after cancellation")
		}
	case <-time.After(time.Second):
		t.Fatalf("engine did not shut down after cancellation")
	}
}
