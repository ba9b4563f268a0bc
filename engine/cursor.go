package engine

import "context"

type cmdKind int

const (
	cmdPeek cmdKind = iota
	cmdConsume
	cmdPosition
)

type command struct {
	kind   cmdKind
	setPos bool
	newPos int
}

type suspension[Input any] struct {
	cmd  command
	resp chan result[Input]
}

type result[Input any] struct {
	item Input
	eof  bool
	pos  int
}

// Cursor is the only surface area a parser coroutine sees: Peek, Consume and
// Position, exactly the three commands of §4.2. A coroutine is ordinary,
// blocking Go code written against this facade — all suspension/resumption
// happens inside these three methods, over an unbuffered channel back to
// the driver loop of the Run call that started it, which is the Go-idiomatic rendering of
// the "explicit command loop" re-architecture note in §9.
type Cursor[Input any] struct {
	ctx     context.Context
	suspend chan suspension[Input]
}

// ErrCancelled is returned from a Cursor method when the engine's context
// was cancelled while the coroutine was suspended (§5 "Cancellation").
var ErrCancelled = context.Canceled

func (c *Cursor[Input]) do(cmd command) (result[Input], error) {
	resp := make(chan result[Input], 1)
	select {
	case c.suspend <- suspension[Input]{cmd: cmd, resp: resp}:
	case <-c.ctx.Done():
		var zero result[Input]
		return zero, c.ctx.Err()
	}
	select {
	case r := <-resp:
		return r, nil
	case <-c.ctx.Done():
		var zero result[Input]
		return zero, c.ctx.Err()
	}
}

// Peek returns the current input item without advancing the cursor.
func (c *Cursor[Input]) Peek() (Input, error) {
	r, err := c.do(command{kind: cmdPeek})
	return itemOrErr(r, err)
}

// Consume returns the current input item and advances the cursor by one.
func (c *Cursor[Input]) Consume() (Input, error) {
	r, err := c.do(command{kind: cmdConsume})
	return itemOrErr(r, err)
}

func itemOrErr[Input any](r result[Input], err error) (Input, error) {
	if err != nil {
		var zero Input
		return zero, err
	}
	if r.eof {
		var zero Input
		return zero, ErrEndOfStream
	}
	return r.item, nil
}

// TryPeek returns (item, true) normally, or (zero, false) at end of stream
// instead of raising an error — for lexer/syntax rules that treat EOF as
// just another thing to dispatch on.
func (c *Cursor[Input]) TryPeek() (Input, bool) {
	item, err := c.Peek()
	return item, err == nil
}

// TryConsume is TryPeek's Consume counterpart.
func (c *Cursor[Input]) TryConsume() (Input, bool) {
	item, err := c.Consume()
	return item, err == nil
}

// Position returns the current cursor. If newPos is given, the cursor is
// set to newPos first and the *previous* value is returned — this is the
// opaque integer a coroutine saves and later feeds back to Position to
// rewind (§4.2 "Rewind semantics").
func (c *Cursor[Input]) Position(newPos ...int) int {
	cmd := command{kind: cmdPosition}
	if len(newPos) > 0 {
		cmd.setPos = true
		cmd.newPos = newPos[0]
	}
	r, err := c.do(cmd)
	if err != nil {
		// Context cancelled: there is no sensible cursor to report, and the
		// coroutine is about to unwind anyway since every subsequent
		// Peek/Consume will also fail with the same cancellation error.
		return 0
	}
	return r.pos
}
