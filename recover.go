package monix

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// errFromPanic turns a recovered panic value into an error fit for OnError.
func errFromPanic(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return errors.Newf("stream panic: %v", r)
}

// guardStream is deferred around calls into user code. While
// *streamError is true a recovered panic belongs to the stream: it is
// routed to out as OnError and the in-flight ack becomes Stop. Once the
// flag has been cleared the panic belongs to the downstream and is
// rethrown, the producer owns those.
func guardStream[T any](streamError *bool, ack *Ack, out Observer[T]) {
	r := recover()
	if r == nil {
		return
	}
	if !*streamError {
		panic(r)
	}
	out.OnError(errFromPanic(r))
	*ack = Stop
}

// pullIterator obtains a pull iterator for seq, trapping a panic raised
// while setting the sequence up.
func pullIterator[T any](seq iter.Seq[T]) (next func() (T, bool), stop func(), err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errFromPanic(r)
		}
	}()
	next, stop = iter.Pull(seq)
	return
}

// protectedNext pulls one element under the stream error guard.
func protectedNext[T any](next func() (T, bool)) (elem T, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errFromPanic(r)
		}
	}()
	elem, ok = next()
	return
}
