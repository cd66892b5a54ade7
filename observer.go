package monix

import "sync"

// An Observer consumes the elements of an observable. The protocol is
// OnNext* followed by at most one terminal event, and after OnNext has
// answered Stop, or after any terminal, no further calls are made. The
// grammar is upheld by producers and operators, not by the type.
type Observer[T any] interface {
	// OnNext hands the observer one element and synchronously answers
	// whether the producer should keep going.
	OnNext(elem T) Ack
	OnError(err error)
	OnCompleted()
}

// anonymousObserver adapts plain closures to the observer contract.
type anonymousObserver[T any] struct {
	scheduler Scheduler
	next      func(T)
	err       func(error)
	completed func()
}

// NewObserver builds an observer from up to three closures. onError and
// onCompleted may be nil: errors then go to the scheduler's failure
// reporter and completion is ignored. OnNext always answers Continue.
func NewObserver[T any](s Scheduler, next func(T), onError func(error), onCompleted func()) Observer[T] {
	if s == nil {
		s = DefaultScheduler()
	}
	return &anonymousObserver[T]{scheduler: s, next: next, err: onError, completed: onCompleted}
}

func (o *anonymousObserver[T]) OnNext(elem T) Ack {
	o.next(elem)
	return Continue
}

func (o *anonymousObserver[T]) OnError(err error) {
	if o.err != nil {
		o.err(err)
		return
	}
	o.scheduler.ReportFailure(err)
}

func (o *anonymousObserver[T]) OnCompleted() {
	if o.completed != nil {
		o.completed()
	}
}

// Synchronize serializes every call to out behind one mutex, for sinks
// pushed to by more than one producer. Wrapping an already synchronized
// observer returns it unchanged.
func Synchronize[T any](out Observer[T]) Observer[T] {
	if _, ok := out.(*synchronizedObserver[T]); ok {
		return out
	}
	return &synchronizedObserver[T]{out: out}
}

type synchronizedObserver[T any] struct {
	mu  sync.Mutex
	out Observer[T]
}

func (s *synchronizedObserver[T]) OnNext(elem T) Ack {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.OnNext(elem)
}

func (s *synchronizedObserver[T]) OnError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out.OnError(err)
}

func (s *synchronizedObserver[T]) OnCompleted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out.OnCompleted()
}
