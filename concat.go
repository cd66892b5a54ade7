package monix

// Concat emits every element of first, then every element of second.
// The downstream is synchronized so the handoff at the boundary is safe
// even if the two sources deliver from different goroutines.
func Concat[T any](first, second Observable[T]) Observable[T] {
	return FuncObservable[T](func(out Observer[T]) Cancelable {
		sink := Synchronize(out)
		composite := NewCompositeCancelable()
		composite.Add(first.Subscribe(&concatObserver[T]{
			sink:      sink,
			second:    second,
			composite: composite,
		}))
		return composite
	})
}

type concatObserver[T any] struct {
	sink      Observer[T]
	second    Observable[T]
	composite *CompositeCancelable
}

func (c *concatObserver[T]) OnNext(elem T) Ack {
	return c.sink.OnNext(elem)
}

func (c *concatObserver[T]) OnError(err error) {
	c.sink.OnError(err)
}

func (c *concatObserver[T]) OnCompleted() {
	c.composite.Add(c.second.Subscribe(&forwardObserver[T]{out: c.sink}))
}

// forwardObserver passes everything through untouched.
type forwardObserver[T any] struct {
	out Observer[T]
}

func (f *forwardObserver[T]) OnNext(elem T) Ack {
	return f.out.OnNext(elem)
}

func (f *forwardObserver[T]) OnError(err error) {
	f.out.OnError(err)
}

func (f *forwardObserver[T]) OnCompleted() {
	f.out.OnCompleted()
}
