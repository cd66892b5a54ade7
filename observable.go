package monix

// An Observable is a passive description of a stream. Subscribing
// activates it: the producer starts pushing elements at the observer
// and the returned cancelable tears the subscription down. Observables
// are cold, each subscription runs the producer independently.
type Observable[T any] interface {
	Subscribe(out Observer[T]) Cancelable
}

// FuncObservable adapts a subscribe function to the Observable
// interface. Operators are built on it directly rather than on Create,
// because a panic out of a downstream callback must reach the producer
// untouched instead of being trapped.
type FuncObservable[T any] func(out Observer[T]) Cancelable

func (f FuncObservable[T]) Subscribe(out Observer[T]) Cancelable {
	return f(out)
}

// Create builds an observable from a subscription function. A panic
// raised by the function itself is trapped: the observer sees OnError
// and the subscriber gets the already canceled sentinel.
func Create[T any](onSubscribe func(out Observer[T]) Cancelable) Observable[T] {
	return FuncObservable[T](func(out Observer[T]) (c Cancelable) {
		defer func() {
			if r := recover(); r != nil {
				out.OnError(errFromPanic(r))
				c = AlreadyCanceled()
			}
		}()
		return onSubscribe(out)
	})
}

// SubscribeWith subscribes closures instead of a full observer; the nil
// handler defaults are those of NewObserver.
func SubscribeWith[T any](source Observable[T], s Scheduler, next func(T), onError func(error), onCompleted func()) Cancelable {
	return source.Subscribe(NewObserver(s, next, onError, onCompleted))
}
