package monix

// FlatMap subscribes to the inner observable built for every upstream
// element and merges all inner elements into the downstream. Completion
// is deferred until the outer stream and every inner stream have
// completed, tracked by a ref counted cancelable whose terminal action
// is the downstream completion. Inner streams are not serialized
// against each other; wrap the downstream with Safe when inners deliver
// concurrently.
func FlatMap[T, U any](source Observable[T], f func(T) Observable[U]) Observable[U] {
	return FuncObservable[U](func(out Observer[U]) Cancelable {
		composite := NewCompositeCancelable()
		refCount := NewRefCountCancelable(out.OnCompleted)
		composite.Add(source.Subscribe(&flatMapOuter[T, U]{
			out:       out,
			f:         f,
			composite: composite,
			refCount:  refCount,
		}))
		return composite
	})
}

type flatMapOuter[T, U any] struct {
	out       Observer[U]
	f         func(T) Observable[U]
	composite *CompositeCancelable
	refCount  *RefCountCancelable
}

func (o *flatMapOuter[T, U]) OnNext(elem T) (ack Ack) {
	streamError := true
	defer guardStream(&streamError, &ack, o.out)
	inner := o.f(elem)
	streamError = false

	// the ref is taken before the inner subscription so the refcount
	// cannot hit zero while the inner is still being set up
	ref := o.refCount.Acquire()
	upstream := NewSingleAssignmentCancelable()
	o.composite.Add(upstream)
	upstream.Set(inner.Subscribe(&flatMapInner[U]{
		out:       o.out,
		composite: o.composite,
		upstream:  upstream,
		ref:       ref,
	}))
	return Continue
}

func (o *flatMapOuter[T, U]) OnError(err error) {
	o.out.OnError(err)
	o.composite.Cancel()
}

func (o *flatMapOuter[T, U]) OnCompleted() {
	o.refCount.Cancel()
}

type flatMapInner[U any] struct {
	out       Observer[U]
	composite *CompositeCancelable
	upstream  *SingleAssignmentCancelable
	ref       Cancelable
}

func (i *flatMapInner[U]) OnNext(elem U) Ack {
	return i.out.OnNext(elem)
}

func (i *flatMapInner[U]) OnError(err error) {
	i.out.OnError(err)
	i.composite.Cancel()
}

func (i *flatMapInner[U]) OnCompleted() {
	i.composite.Remove(i.upstream)
	i.upstream.Cancel()
	i.ref.Cancel()
}

// Flatten merges a stream of streams.
func Flatten[T any](source Observable[Observable[T]]) Observable[T] {
	return FlatMap(source, func(inner Observable[T]) Observable[T] {
		return inner
	})
}

// Merge interleaves any number of sources into one stream. The
// downstream is not serialized; use Safe when the sources deliver from
// different goroutines.
func Merge[T any](sources ...Observable[T]) Observable[T] {
	return Flatten(FromSlice(sources))
}
