package monix

import (
	"iter"
	"slices"
)

// Empty completes immediately.
func Empty[T any]() Observable[T] {
	return FuncObservable[T](func(out Observer[T]) Cancelable {
		out.OnCompleted()
		return AlreadyCanceled()
	})
}

// Unit emits a single element and completes.
func Unit[T any](elem T) Observable[T] {
	return FuncObservable[T](func(out Observer[T]) Cancelable {
		if out.OnNext(elem) == Continue {
			out.OnCompleted()
		}
		return AlreadyCanceled()
	})
}

// Error terminates immediately with err.
func Error[T any](err error) Observable[T] {
	return FuncObservable[T](func(out Observer[T]) Cancelable {
		out.OnError(err)
		return AlreadyCanceled()
	})
}

// Never emits nothing and never terminates.
func Never[T any]() Observable[T] {
	return FuncObservable[T](func(out Observer[T]) Cancelable {
		return NewCancelable(nil)
	})
}

// FromSeq iterates seq synchronously on the subscribing goroutine.
// Setting up the iterator and pulling each element run under the stream
// error guard, so a panicking sequence produces a single OnError and
// nothing after it. A Stop from downstream ends the iteration without a
// terminal event; a natural end completes the stream.
func FromSeq[T any](seq iter.Seq[T]) Observable[T] {
	return FuncObservable[T](func(out Observer[T]) Cancelable {
		next, stop, err := pullIterator(seq)
		if err != nil {
			out.OnError(err)
			return AlreadyCanceled()
		}
		for {
			elem, ok, err := protectedNext(next)
			if err != nil {
				// the iterator is dead after a panic; stop would
				// just panic again
				out.OnError(err)
				return AlreadyCanceled()
			}
			if !ok {
				out.OnCompleted()
				return AlreadyCanceled()
			}
			if out.OnNext(elem) == Stop {
				stop()
				return AlreadyCanceled()
			}
		}
	})
}

// FromSlice emits the elements of xs in order.
func FromSlice[T any](xs []T) Observable[T] {
	return FromSeq(slices.Values(xs))
}

// FromChan drains ch synchronously, one element per receive, and
// completes when the channel closes. A Stop from downstream ends the
// loop without a terminal event. Producers wanting asynchronous
// delivery push into the channel from their own goroutine before
// subscribing.
func FromChan[T any](ch <-chan T) Observable[T] {
	return FuncObservable[T](func(out Observer[T]) Cancelable {
		for elem := range ch {
			if out.OnNext(elem) == Stop {
				return AlreadyCanceled()
			}
		}
		out.OnCompleted()
		return AlreadyCanceled()
	})
}
