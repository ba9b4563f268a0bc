package engine

import (
	"errors"
	"fmt"
)

// ErrEndOfStream is injected into a coroutine's Peek/Consume suspension
// point once the engine knows no more input will ever arrive (§4.2 "End-of-
// stream signalling"). A coroutine may recover from it (inside Maybe/First/
// Furthest) or let it propagate, in which case the engine reports it as an
// unexpected end-of-input diagnostic.
var ErrEndOfStream = errors.New("end of stream")

// ErrNoProgress is the engine-invariant failure (§4.2 "Operating cycle",
// step 2): a coroutine completed without consuming a single input item.
// This can only be caused by a bug in a parser coroutine, never by the
// input, so it always aborts the pipeline.
var ErrNoProgress = errors.New("parser coroutine completed without consuming any input")

// ErrUnparsedRemainder names the failure of input remaining buffered that no
// coroutine could turn into output (§4.2 step 3). Run itself never sends
// it: whenever input remains after a commit, Run starts a fresh coroutine,
// so leftover input surfaces as that coroutine's own error.
var ErrUnparsedRemainder = errors.New("input remainder could not be parsed")

// fatalError marks a recoverable-looking error as fatal (§4.2 "Failure
// model"): Maybe, First and Furthest must not catch it and instead
// propagate it immediately, bypassing any enclosing backtracking.
type fatalError struct {
	err error
}

func (f *fatalError) Error() string { return f.err.Error() }
func (f *fatalError) Unwrap() error { return f.err }

// MarkFatal wraps err so that IsFatal(err) reports true and Maybe/First/
// Furthest re-raise it instead of backtracking past it. Wrapping a nil
// error returns nil.
func MarkFatal(err error) error {
	if err == nil {
		return nil
	}
	var fe *fatalError
	if errors.As(err, &fe) {
		return err
	}
	return &fatalError{err: err}
}

// Fatalf is a convenience constructor for a fatal error message.
func Fatalf(format string, args ...any) error {
	return MarkFatal(fmt.Errorf(format, args...))
}

// IsFatal reports whether err (or anything it wraps) was marked fatal.
func IsFatal(err error) bool {
	var fe *fatalError
	return errors.As(err, &fe)
}
