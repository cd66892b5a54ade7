package monix

import "sync/atomic"

// Map transforms each element with f before forwarding it. A panic from
// f is a stream error: the downstream sees OnError and the producer is
// answered Stop.
func Map[T, U any](source Observable[T], f func(T) U) Observable[U] {
	return FuncObservable[U](func(out Observer[U]) Cancelable {
		return source.Subscribe(&mapObserver[T, U]{out: out, f: f})
	})
}

type mapObserver[T, U any] struct {
	out Observer[U]
	f   func(T) U
}

func (m *mapObserver[T, U]) OnNext(elem T) (ack Ack) {
	streamError := true
	defer guardStream(&streamError, &ack, m.out)
	mapped := m.f(elem)
	streamError = false
	return m.out.OnNext(mapped)
}

func (m *mapObserver[T, U]) OnError(err error) {
	m.out.OnError(err)
}

func (m *mapObserver[T, U]) OnCompleted() {
	m.out.OnCompleted()
}

// Filter forwards only the elements satisfying the predicate.
func Filter[T any](source Observable[T], predicate func(T) bool) Observable[T] {
	return FuncObservable[T](func(out Observer[T]) Cancelable {
		return source.Subscribe(&filterObserver[T]{out: out, predicate: predicate})
	})
}

type filterObserver[T any] struct {
	out       Observer[T]
	predicate func(T) bool
}

func (f *filterObserver[T]) OnNext(elem T) (ack Ack) {
	streamError := true
	defer guardStream(&streamError, &ack, f.out)
	keep := f.predicate(elem)
	streamError = false
	if !keep {
		return Continue
	}
	return f.out.OnNext(elem)
}

func (f *filterObserver[T]) OnError(err error) {
	f.out.OnError(err)
}

func (f *filterObserver[T]) OnCompleted() {
	f.out.OnCompleted()
}

// DoWork runs a side effect for each element before forwarding it.
func DoWork[T any](source Observable[T], cb func(T)) Observable[T] {
	return FuncObservable[T](func(out Observer[T]) Cancelable {
		return source.Subscribe(&doWorkObserver[T]{out: out, cb: cb})
	})
}

type doWorkObserver[T any] struct {
	out Observer[T]
	cb  func(T)
}

func (d *doWorkObserver[T]) OnNext(elem T) (ack Ack) {
	streamError := true
	defer guardStream(&streamError, &ack, d.out)
	d.cb(elem)
	streamError = false
	return d.out.OnNext(elem)
}

func (d *doWorkObserver[T]) OnError(err error) {
	d.out.OnError(err)
}

func (d *doWorkObserver[T]) OnCompleted() {
	d.out.OnCompleted()
}

// DoOnCompleted runs cb after the completion event has been forwarded.
// cb is not protected; if it panics the panic escapes to the producer
// and no further observer methods are called.
func DoOnCompleted[T any](source Observable[T], cb func()) Observable[T] {
	return FuncObservable[T](func(out Observer[T]) Cancelable {
		return source.Subscribe(&doOnCompletedObserver[T]{out: out, cb: cb})
	})
}

type doOnCompletedObserver[T any] struct {
	out Observer[T]
	cb  func()
}

func (d *doOnCompletedObserver[T]) OnNext(elem T) Ack {
	return d.out.OnNext(elem)
}

func (d *doOnCompletedObserver[T]) OnError(err error) {
	d.out.OnError(err)
}

func (d *doOnCompletedObserver[T]) OnCompleted() {
	d.out.OnCompleted()
	d.cb()
}

// FoldLeft folds the whole stream into one value that is emitted on
// completion. The accumulator lives behind an atomic pointer, so
// concurrent producers fold through a CAS loop instead of a lock; the
// fold function may run more than once per element under contention and
// should be pure.
func FoldLeft[T, R any](source Observable[T], seed R, f func(R, T) R) Observable[R] {
	return FuncObservable[R](func(out Observer[R]) Cancelable {
		folder := &foldLeftObserver[T, R]{out: out, f: f}
		folder.state.Store(&seed)
		return source.Subscribe(folder)
	})
}

type foldLeftObserver[T, R any] struct {
	out   Observer[R]
	f     func(R, T) R
	state atomic.Pointer[R]
}

func (o *foldLeftObserver[T, R]) OnNext(elem T) (ack Ack) {
	streamError := true
	defer guardStream(&streamError, &ack, o.out)
	for {
		cur := o.state.Load()
		next := o.f(*cur, elem)
		if o.state.CompareAndSwap(cur, &next) {
			break
		}
	}
	streamError = false
	return Continue
}

func (o *foldLeftObserver[T, R]) OnError(err error) {
	o.out.OnError(err)
}

func (o *foldLeftObserver[T, R]) OnCompleted() {
	if o.out.OnNext(*o.state.Load()) == Continue {
		o.out.OnCompleted()
	}
}
