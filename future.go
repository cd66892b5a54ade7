package monix

import "go.uber.org/atomic"

// A Future is a single shot promise holding the head of a stream. It
// resolves exactly once: with (value, true, nil) on the first element,
// (zero, false, nil) when the stream completes empty, or
// (zero, false, err) when the stream fails first.
type Future[T any] struct {
	resolved *atomic.Bool
	done     chan struct{}
	value    T
	ok       bool
	err      error
	cancel   *SingleAssignmentCancelable
}

// Done is closed once the future has resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until resolution.
func (f *Future[T]) Await() (T, bool, error) {
	<-f.done
	return f.value, f.ok, f.err
}

// Cancel tears down the underlying subscription.
func (f *Future[T]) Cancel() {
	f.cancel.Cancel()
}

func (f *Future[T]) resolve(value T, ok bool, err error) bool {
	if !f.resolved.CompareAndSwap(false, true) {
		return false
	}
	f.value, f.ok, f.err = value, ok, err
	close(f.done)
	return true
}

// AsFuture subscribes an observer that resolves the returned future
// with the stream's first element and answers Stop. Errors that show up
// after resolution are reported to the scheduler.
func AsFuture[T any](source Observable[T], s Scheduler) *Future[T] {
	if s == nil {
		s = DefaultScheduler()
	}
	f := &Future[T]{
		resolved: atomic.NewBool(false),
		done:     make(chan struct{}),
		cancel:   NewSingleAssignmentCancelable(),
	}
	f.cancel.Set(source.Subscribe(&futureObserver[T]{future: f, scheduler: s}))
	return f
}

type futureObserver[T any] struct {
	future    *Future[T]
	scheduler Scheduler
}

func (o *futureObserver[T]) OnNext(elem T) Ack {
	o.future.resolve(elem, true, nil)
	return Stop
}

func (o *futureObserver[T]) OnError(err error) {
	var zero T
	if !o.future.resolve(zero, false, err) {
		o.scheduler.ReportFailure(err)
	}
}

func (o *futureObserver[T]) OnCompleted() {
	var zero T
	o.future.resolve(zero, false, nil)
}
