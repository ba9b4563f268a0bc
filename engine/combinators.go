package engine

import "fmt"

// Parser is a function written against a Cursor — the shape every
// combinator in this file and every lexer/syntax production is built from
// (§4.2 "Combinators").
type Parser[Input, T any] func(c *Cursor[Input]) (T, error)

// Maybe runs p; on a non-fatal failure it restores the cursor to where it
// was before p ran and returns the zero value with a nil error swallowed
// into ok=false. A fatal failure is not caught and propagates as-is.
func Maybe[Input, T any](c *Cursor[Input], p Parser[Input, T]) (T, bool, error) {
	start := c.Position()
	v, err := p(c)
	if err == nil {
		return v, true, nil
	}
	if IsFatal(err) {
		var zero T
		return zero, false, err
	}
	c.Position(start)
	var zero T
	return zero, false, nil
}

// Fatal runs p and converts any failure it returns into a fatal one, so
// that an enclosing Maybe/First/Furthest does not backtrack past it — used
// once a production has committed to a syntactic shape (§4.2, §7).
func Fatal[Input, T any](c *Cursor[Input], p Parser[Input, T]) (T, error) {
	v, err := p(c)
	if err != nil {
		return v, MarkFatal(err)
	}
	return v, nil
}

// LookAhead runs p and returns its value together with the position it
// reached, without committing the cursor: the cursor is restored to its
// entry position regardless of whether p succeeded.
func LookAhead[Input, T any](c *Cursor[Input], p Parser[Input, T]) (value T, posAfter int, err error) {
	start := c.Position()
	value, err = p(c)
	posAfter = c.Position()
	c.Position(start)
	return value, posAfter, err
}

// Many repeatedly invokes factory() under Maybe and collects the results,
// stopping at the first failure. A non-fatal failure is swallowed, not
// reported; a fatal failure is returned together with the results
// collected so far.
func Many[Input, T any](c *Cursor[Input], factory func() Parser[Input, T]) ([]T, error) {
	var out []T
	for {
		v, ok, err := Maybe(c, factory())
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

// Null succeeds immediately without consuming any input.
func Null[Input, T any](c *Cursor[Input]) (T, error) {
	var zero T
	return zero, nil
}

// ConsumeIf peeks the current item; if pred matches, consumes and returns
// it, else raises a recoverable "expected name" error. This generalizes
// §4.2's consumeInstanceOf/consumeKind over any Input tag the caller
// chooses to test with pred.
func ConsumeIf[Input any](c *Cursor[Input], pred func(Input) bool, name string) (Input, error) {
	item, err := c.Peek()
	if err != nil {
		var zero Input
		return zero, err
	}
	if !pred(item) {
		var zero Input
		return zero, fmt.Errorf("expected %s", name)
	}
	return c.Consume()
}

// branchFailure records how far a failed branch of First/Furthest advanced
// before it failed, so the furthest-failure diagnostic rule (§4.2, §8.7)
// can pick the most informative one.
type branchFailure struct {
	index    int
	reached  int
	err      error
}

// First tries p1..pn in order against the same starting position. On the
// first success it commits the cursor at that branch's end position and
// returns. If every branch fails, it reports the failure of whichever
// branch advanced the cursor the furthest before failing (§4.2 "first").
func First[Input, T any](c *Cursor[Input], parsers ...Parser[Input, T]) (T, error) {
	start := c.Position()
	var worst *branchFailure
	for i, p := range parsers {
		c.Position(start)
		v, err := p(c)
		if err == nil {
			return v, nil
		}
		if IsFatal(err) {
			var zero T
			return zero, err
		}
		reached := c.Position()
		if worst == nil || reached > worst.reached {
			worst = &branchFailure{index: i, reached: reached, err: err}
		}
		c.Position(start)
	}
	var zero T
	if worst == nil {
		return zero, fmt.Errorf("no alternatives given")
	}
	return zero, worst.err
}

// Furthest tries every branch from the same starting position (unlike
// First, it does not stop at the first success) and returns the successful
// branch that advanced the cursor furthest, breaking ties by lowest index.
// If every branch fails, it reports the furthest failure, same tie-break.
func Furthest[Input, T any](c *Cursor[Input], parsers ...Parser[Input, T]) (T, error) {
	start := c.Position()

	type attempt struct {
		value   T
		ok      bool
		reached int
		err     error
	}
	attempts := make([]attempt, len(parsers))

	for i, p := range parsers {
		c.Position(start)
		v, err := p(c)
		reached := c.Position()
		if err != nil && IsFatal(err) {
			c.Position(start)
			var zero T
			return zero, err
		}
		attempts[i] = attempt{value: v, ok: err == nil, reached: reached, err: err}
	}

	bestOK := -1
	for i, a := range attempts {
		if a.ok && (bestOK == -1 || a.reached > attempts[bestOK].reached) {
			bestOK = i
		}
	}
	if bestOK != -1 {
		c.Position(attempts[bestOK].reached)
		return attempts[bestOK].value, nil
	}

	worst := 0
	for i, a := range attempts {
		if a.reached > attempts[worst].reached {
			worst = i
		}
	}
	c.Position(start)
	var zero T
	return zero, attempts[worst].err
}
