// Package engine is the stage-agnostic parser engine (§4.2): a generic
// driver that runs a parser coroutine over a buffered, batched input
// sequence, handling peek/consume/position commands, rewind, and stream
// termination. The lexical stage (§4.3) and the syntactic stage (§4.4) are
// both just Coroutine values run through the same Engine — only Input and
// Output differ.
package engine

import (
	"context"

	"golang.org/x/exp/slices"
)

// Coroutine is a restartable computation that consumes input through c and
// either returns an Output value or an error (§4.2 "A coroutine returns an
// Output value when done, or raises an error").
type Coroutine[Input, Output any] func(c *Cursor[Input]) (Output, error)

// Run drives newCoroutine to completion repeatedly over in, emitting the
// output of every successfully committed coroutine invocation; outputs
// committed while the consumer has not yet accepted the previous batch are
// collected into the same batch. It
// implements the full operating cycle of §4.2: buffering input until a
// coroutine can make progress, answering Peek/Consume/Position commands
// from the buffer (or from end-of-stream once in is closed), and
// committing (discarding the consumed prefix, resetting the cursor to 0)
// once a coroutine returns.
//
// Run returns immediately; the output channel is closed when the engine
// stops, whether cleanly (input exhausted) or due to a fatal error. The
// error channel is never closed: a fatal error is sent on it at most once,
// before the output channel closes.
func Run[Input, Output any](ctx context.Context, in <-chan []Input, newCoroutine func() Coroutine[Input, Output]) (<-chan []Output, <-chan error) {
	outCh := make(chan []Output)
	errCh := make(chan error, 1)

	go func() {
		defer close(outCh)

		var buffer []Input
		cursor := 0
		closed := false
		running := false

		var suspendCh chan suspension[Input]
		var doneCh chan coroResult[Output]
		var pending *suspension[Input]
		var pendingOut []Output

		fail := func(err error) {
			select {
			case errCh <- err:
			default:
			}
		}

		resolvePending := func() {
			if pending == nil {
				return
			}
			switch pending.cmd.kind {
			case cmdPeek, cmdConsume:
				if cursor < len(buffer) {
					item := buffer[cursor]
					if pending.cmd.kind == cmdConsume {
						cursor++
					}
					pending.resp <- result[Input]{item: item}
					pending = nil
				} else if closed {
					pending.resp <- result[Input]{eof: true}
					pending = nil
				}
				// else: still nothing buffered and stream is open; keep waiting.
			default:
				// Position commands never block; see the suspendCh case below.
				pending = nil
			}
		}

		startCoroutine := func(co Coroutine[Input, Output]) {
			suspendCh = make(chan suspension[Input])
			doneCh = make(chan coroResult[Output], 1)
			running = true
			cur := &Cursor[Input]{ctx: ctx, suspend: suspendCh}
			go func() {
				v, err := co(cur)
				doneCh <- coroResult[Output]{value: v, err: err}
			}()
		}

		for {
			if !running && cursor < len(buffer) {
				startCoroutine(newCoroutine())
			}
			if !running && closed && len(buffer) == 0 && len(pendingOut) == 0 {
				return
			}

			var sendCh chan []Output
			if len(pendingOut) > 0 {
				sendCh = outCh
			}

			var activeSuspend chan suspension[Input]
			if running && pending == nil {
				activeSuspend = suspendCh
			}

			var inCh <-chan []Input
			if !closed {
				inCh = in
			}

			select {
			case <-ctx.Done():
				return

			case sendCh <- pendingOut:
				pendingOut = nil

			case batch, ok := <-inCh:
				if !ok {
					closed = true
					resolvePending()
					continue
				}
				buffer = append(buffer, batch...)
				resolvePending()

			case susp := <-activeSuspend:
				if susp.cmd.kind == cmdPosition {
					prev := cursor
					if susp.cmd.setPos {
						cursor = susp.cmd.newPos
					}
					susp.resp <- result[Input]{pos: prev}
					continue
				}
				pending = &susp
				resolvePending()

			case dr := <-doneChOrNil(doneCh, running):
				running = false
				if dr.err != nil {
					fail(dr.err)
					return
				}
				if cursor == 0 {
					fail(ErrNoProgress)
					return
				}
				buffer = slices.Delete(buffer, 0, cursor)
				cursor = 0
				pendingOut = append(pendingOut, dr.value)
			}
		}
	}()

	return outCh, errCh
}

type coroResult[Output any] struct {
	value Output
	err   error
}

// doneChOrNil avoids selecting on a nil-valued typed channel variable by
// routing through an explicit nil when no coroutine is running, so the
// select in Run never wakes up on a stale doneCh from a previous
// invocation.
func doneChOrNil[Output any](ch chan coroResult[Output], running bool) chan coroResult[Output] {
	if !running {
		return nil
	}
	return ch
}
