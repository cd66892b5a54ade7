package monix

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestCancelableRunsTeardownOnce(t *testing.T) {
	runs := atomic.NewInt64(0)
	c := NewCancelable(func() { runs.Inc() })
	require.False(t, c.IsCanceled())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Cancel()
		}()
	}
	wg.Wait()

	require.True(t, c.IsCanceled())
	require.Equal(t, int64(1), runs.Load())
}

func TestCancelableNilTeardown(t *testing.T) {
	c := NewCancelable(nil)
	c.Cancel()
	require.True(t, c.IsCanceled())
}

func TestAlreadyCanceledSentinel(t *testing.T) {
	c := AlreadyCanceled()
	require.True(t, c.IsCanceled())
	c.Cancel()
	require.True(t, c.IsCanceled())
	require.Same(t, AlreadyCanceled(), c)
}

func TestSingleAssignmentSetThenCancel(t *testing.T) {
	runs := 0
	s := NewSingleAssignmentCancelable()
	s.Set(NewCancelable(func() { runs++ }))
	require.False(t, s.IsCanceled())

	s.Cancel()
	s.Cancel()
	require.True(t, s.IsCanceled())
	require.Equal(t, 1, runs)
}

func TestSingleAssignmentCancelBeforeSet(t *testing.T) {
	s := NewSingleAssignmentCancelable()
	s.Cancel()
	require.True(t, s.IsCanceled())

	child := NewCancelable(nil)
	s.Set(child)
	require.True(t, child.IsCanceled())
}

func TestSingleAssignmentSetTwicePanics(t *testing.T) {
	s := NewSingleAssignmentCancelable()
	s.Set(NewCancelable(nil))
	require.Panics(t, func() {
		s.Set(NewCancelable(nil))
	})
}

func TestCompositeCancelsChildrenOnce(t *testing.T) {
	runs := atomic.NewInt64(0)
	c := NewCompositeCancelable(
		NewCancelable(func() { runs.Inc() }),
		NewCancelable(func() { runs.Inc() }),
	)

	c.Cancel()
	c.Cancel()
	require.True(t, c.IsCanceled())
	require.Equal(t, int64(2), runs.Load())
}

func TestCompositeAddAfterCancel(t *testing.T) {
	c := NewCompositeCancelable()
	c.Cancel()

	late := NewCancelable(nil)
	c.Add(late)
	require.True(t, late.IsCanceled())
}

func TestCompositeRemoveDoesNotCancel(t *testing.T) {
	kept := NewCancelable(nil)
	removed := NewCancelable(nil)
	c := NewCompositeCancelable(kept, removed)

	c.Remove(removed)
	c.Cancel()

	require.True(t, kept.IsCanceled())
	require.False(t, removed.IsCanceled())
}

func TestRefCountFiresImmediatelyWithoutAcquisitions(t *testing.T) {
	fired := 0
	rc := NewRefCountCancelable(func() { fired++ })
	require.False(t, rc.IsCanceled())

	rc.Cancel()
	rc.Cancel()
	require.True(t, rc.IsCanceled())
	require.Equal(t, 1, fired)
}

func TestRefCountWaitsForAcquiredHandles(t *testing.T) {
	fired := 0
	rc := NewRefCountCancelable(func() { fired++ })

	ref := rc.Acquire()
	rc.Cancel()
	require.Zero(t, fired)

	ref.Cancel()
	require.Equal(t, 1, fired)

	// releasing an already released handle changes nothing
	ref.Cancel()
	require.Equal(t, 1, fired)
}

func TestRefCountReleaseBeforeCancel(t *testing.T) {
	fired := 0
	rc := NewRefCountCancelable(func() { fired++ })

	ref := rc.Acquire()
	ref.Cancel()
	require.Zero(t, fired)

	rc.Cancel()
	require.Equal(t, 1, fired)
}

func TestRefCountAcquireAfterCancel(t *testing.T) {
	rc := NewRefCountCancelable(func() {})
	rc.Cancel()
	require.Same(t, AlreadyCanceled(), rc.Acquire())
}

func TestRefCountConcurrentInterleavings(t *testing.T) {
	const handles = 64
	fired := atomic.NewInt64(0)
	rc := NewRefCountCancelable(func() { fired.Inc() })

	refs := make([]Cancelable, handles)
	for i := range refs {
		refs[i] = rc.Acquire()
	}

	var wg sync.WaitGroup
	for _, ref := range refs {
		wg.Add(1)
		go func(ref Cancelable) {
			defer wg.Done()
			ref.Cancel()
		}(ref)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		rc.Cancel()
	}()
	wg.Wait()

	require.Equal(t, int64(1), fired.Load())
}
