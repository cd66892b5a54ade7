package monix

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestZipPairsPositionally(t *testing.T) {
	rec := newRecorder[Pair[int, string]]()
	Zip(FromSlice([]int{1, 2, 3, 4, 5}), FromSlice([]string{"a", "b", "c"})).Subscribe(rec)

	require.Equal(t, []Pair[int, string]{
		{First: 1, Second: "a"},
		{First: 2, Second: "b"},
		{First: 3, Second: "c"},
	}, rec.values())
	require.Equal(t, 1, rec.completions())
	requireClean(t, rec)
}

func TestZipShorterLeftSide(t *testing.T) {
	rec := newRecorder[Pair[int, int]]()
	Zip(FromSlice([]int{1}), FromSlice([]int{10, 20, 30})).Subscribe(rec)

	require.Equal(t, []Pair[int, int]{{First: 1, Second: 10}}, rec.values())
	require.Equal(t, 1, rec.completions())
	requireClean(t, rec)
}

func TestZipEqualLengths(t *testing.T) {
	rec := newRecorder[Pair[int, int]]()
	Zip(FromSlice([]int{1, 2}), FromSlice([]int{3, 4})).Subscribe(rec)

	require.Equal(t, []Pair[int, int]{
		{First: 1, Second: 3},
		{First: 2, Second: 4},
	}, rec.values())
	require.Equal(t, 1, rec.completions())
}

func TestZipEmptySideCompletesEmpty(t *testing.T) {
	rec := newRecorder[Pair[int, int]]()
	Zip(Empty[int](), FromSlice([]int{1, 2})).Subscribe(rec)

	require.Empty(t, rec.values())
	require.Equal(t, 1, rec.completions())
	requireClean(t, rec)
}

func TestZipErrorWins(t *testing.T) {
	boom := errors.New("boom")
	rec := newRecorder[Pair[int, int]]()
	Zip(Error[int](boom), FromSlice([]int{1, 2})).Subscribe(rec)

	require.Empty(t, rec.values())
	require.Equal(t, []error{boom}, rec.errors())
	require.Zero(t, rec.completions())
	requireClean(t, rec)
}

func TestZipInterleavedDelivery(t *testing.T) {
	var left, right Observer[int]
	lhs := FuncObservable[int](func(out Observer[int]) Cancelable {
		left = out
		return NewCancelable(nil)
	})
	rhs := FuncObservable[int](func(out Observer[int]) Cancelable {
		right = out
		return NewCancelable(nil)
	})

	rec := newRecorder[Pair[int, int]]()
	Zip(Observable[int](lhs), Observable[int](rhs)).Subscribe(rec)

	require.Equal(t, Continue, left.OnNext(1))
	require.Equal(t, Continue, left.OnNext(2))
	require.Equal(t, Continue, right.OnNext(10))
	require.Equal(t, Continue, right.OnNext(20))
	require.Equal(t, []Pair[int, int]{
		{First: 1, Second: 10},
		{First: 2, Second: 20},
	}, rec.values())

	// left is done with an element still buffered on the right? no:
	// queues are drained, so completion is immediate
	left.OnCompleted()
	require.Equal(t, 1, rec.completions())

	// the other side observing done-ness is answered Stop
	require.Equal(t, Stop, right.OnNext(30))
	requireClean(t, rec)
}

func TestZipWaitsForBufferedPartners(t *testing.T) {
	var left, right Observer[int]
	lhs := FuncObservable[int](func(out Observer[int]) Cancelable {
		left = out
		return NewCancelable(nil)
	})
	rhs := FuncObservable[int](func(out Observer[int]) Cancelable {
		right = out
		return NewCancelable(nil)
	})

	rec := newRecorder[Pair[int, int]]()
	Zip(Observable[int](lhs), Observable[int](rhs)).Subscribe(rec)

	left.OnNext(1)
	left.OnNext(2)
	left.OnCompleted()
	// left is done but items are buffered; zip must wait for right
	require.Zero(t, rec.completions())

	right.OnNext(10)
	require.Equal(t, []Pair[int, int]{{First: 1, Second: 10}}, rec.values())

	right.OnCompleted()
	require.Equal(t, 1, rec.completions())
	requireClean(t, rec)
}
