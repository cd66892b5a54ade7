package monix

// Head emits only the first element.
func Head[T any](source Observable[T]) Observable[T] {
	return Take(source, 1)
}

// Tail skips the first element.
func Tail[T any](source Observable[T]) Observable[T] {
	return Drop(source, 1)
}

// Find emits the first element satisfying the predicate, if any.
func Find[T any](source Observable[T], predicate func(T) bool) Observable[T] {
	return Head(Filter(source, predicate))
}

// Exists emits whether any element satisfies the predicate.
func Exists[T any](source Observable[T], predicate func(T) bool) Observable[bool] {
	return FoldLeft(Find(source, predicate), false, func(bool, T) bool {
		return true
	})
}

// ForAll emits whether every element satisfies the predicate.
func ForAll[T any](source Observable[T], predicate func(T) bool) Observable[bool] {
	counterexample := Exists(source, func(elem T) bool {
		return !predicate(elem)
	})
	return Map(counterexample, func(found bool) bool {
		return !found
	})
}

// HeadOrElse emits the first element, or fallback when the stream is
// empty.
func HeadOrElse[T any](source Observable[T], fallback T) Observable[T] {
	first := FoldLeft(Head(source), (*T)(nil), func(_ *T, elem T) *T {
		return &elem
	})
	return Map(first, func(head *T) T {
		if head == nil {
			return fallback
		}
		return *head
	})
}

// Safe routes the subscription through a synchronized observer so
// concurrent producers, flat mapped inners for instance, can share the
// downstream.
func Safe[T any](source Observable[T]) Observable[T] {
	return FuncObservable[T](func(out Observer[T]) Cancelable {
		return source.Subscribe(Synchronize(out))
	})
}
