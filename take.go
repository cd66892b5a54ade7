package monix

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/atomic"
)

// Take forwards the first n elements, completes right after the nth and
// drops everything past it. The counter is CAS maintained, so a
// producer racing against itself still gets at most n elements through
// and exactly one completion. n must be positive.
func Take[T any](source Observable[T], n int) Observable[T] {
	if n <= 0 {
		panic(errors.Newf("monix: Take requires a positive count, got %d", n))
	}
	return FuncObservable[T](func(out Observer[T]) Cancelable {
		return source.Subscribe(&takeObserver[T]{out: out, n: int64(n)})
	})
}

type takeObserver[T any] struct {
	out   Observer[T]
	n     int64
	count atomic.Int64
}

func (t *takeObserver[T]) OnNext(elem T) Ack {
	for {
		cur := t.count.Load()
		if cur >= t.n {
			return Stop
		}
		if !t.count.CompareAndSwap(cur, cur+1) {
			continue
		}
		t.out.OnNext(elem)
		if cur+1 == t.n {
			t.out.OnCompleted()
			return Stop
		}
		return Continue
	}
}

func (t *takeObserver[T]) OnError(err error) {
	t.out.OnError(err)
}

func (t *takeObserver[T]) OnCompleted() {
	// only forward if we have not completed on our own already
	if t.count.Load() < t.n {
		t.out.OnCompleted()
	}
}

// Drop discards the first n elements and forwards the rest untouched.
// n must be positive.
func Drop[T any](source Observable[T], n int) Observable[T] {
	if n <= 0 {
		panic(errors.Newf("monix: Drop requires a positive count, got %d", n))
	}
	return FuncObservable[T](func(out Observer[T]) Cancelable {
		return source.Subscribe(&dropObserver[T]{out: out, n: int64(n)})
	})
}

type dropObserver[T any] struct {
	out   Observer[T]
	n     int64
	count atomic.Int64
}

func (d *dropObserver[T]) OnNext(elem T) Ack {
	for {
		cur := d.count.Load()
		if cur >= d.n {
			return d.out.OnNext(elem)
		}
		if d.count.CompareAndSwap(cur, cur+1) {
			return Continue
		}
	}
}

func (d *dropObserver[T]) OnError(err error) {
	d.out.OnError(err)
}

func (d *dropObserver[T]) OnCompleted() {
	d.out.OnCompleted()
}

// TakeWhile forwards elements as long as the predicate holds and
// completes on the first element where it does not.
func TakeWhile[T any](source Observable[T], predicate func(T) bool) Observable[T] {
	return FuncObservable[T](func(out Observer[T]) Cancelable {
		return source.Subscribe(&takeWhileObserver[T]{
			out:            out,
			predicate:      predicate,
			shouldContinue: atomic.NewBool(true),
		})
	})
}

type takeWhileObserver[T any] struct {
	out            Observer[T]
	predicate      func(T) bool
	shouldContinue *atomic.Bool
}

func (t *takeWhileObserver[T]) OnNext(elem T) (ack Ack) {
	if !t.shouldContinue.Load() {
		return Stop
	}
	streamError := true
	defer guardStream(&streamError, &ack, t.out)
	keep := t.predicate(elem)
	streamError = false
	swapped := t.shouldContinue.CompareAndSwap(true, keep)
	if !keep {
		t.out.OnCompleted()
		return Stop
	}
	if !swapped {
		return Stop
	}
	t.out.OnNext(elem)
	return Continue
}

func (t *takeWhileObserver[T]) OnError(err error) {
	if t.shouldContinue.Load() {
		t.out.OnError(err)
	}
}

func (t *takeWhileObserver[T]) OnCompleted() {
	if t.shouldContinue.Load() {
		t.out.OnCompleted()
	}
}

// DropWhile discards elements while the predicate holds; the first
// element that fails it, and everything after, is forwarded. The gate
// is CAS flipped, so exactly one element is admitted as the first
// non-matching one even under concurrent delivery.
func DropWhile[T any](source Observable[T], predicate func(T) bool) Observable[T] {
	return FuncObservable[T](func(out Observer[T]) Cancelable {
		return source.Subscribe(&dropWhileObserver[T]{
			out:        out,
			predicate:  predicate,
			shouldDrop: atomic.NewBool(true),
		})
	})
}

type dropWhileObserver[T any] struct {
	out        Observer[T]
	predicate  func(T) bool
	shouldDrop *atomic.Bool
}

func (d *dropWhileObserver[T]) OnNext(elem T) (ack Ack) {
	streamError := false
	defer guardStream(&streamError, &ack, d.out)
	for {
		if !d.shouldDrop.Load() {
			return d.out.OnNext(elem)
		}
		streamError = true
		drop := d.predicate(elem)
		streamError = false
		if d.shouldDrop.CompareAndSwap(true, drop) && drop {
			return Continue
		}
		// the gate was flipped, by us or by a racer; this element
		// goes through on the next spin
	}
}

func (d *dropWhileObserver[T]) OnError(err error) {
	d.out.OnError(err)
}

func (d *dropWhileObserver[T]) OnCompleted() {
	d.out.OnCompleted()
}
