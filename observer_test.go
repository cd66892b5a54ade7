package monix

import (
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// captureScheduler records reported failures for assertions.
type captureScheduler struct {
	mu   sync.Mutex
	errs []error
}

func (s *captureScheduler) ReportFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = append(s.errs, err)
}

func (s *captureScheduler) failures() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]error(nil), s.errs...)
}

func TestNewObserverNextOnly(t *testing.T) {
	sched := new(captureScheduler)
	var got []int
	obs := NewObserver(sched, func(elem int) { got = append(got, elem) }, nil, nil)

	require.Equal(t, Continue, obs.OnNext(1))
	require.Equal(t, Continue, obs.OnNext(2))
	obs.OnCompleted()

	require.Equal(t, []int{1, 2}, got)
	require.Empty(t, sched.failures())
}

func TestNewObserverReportsUnhandledErrors(t *testing.T) {
	sched := new(captureScheduler)
	obs := NewObserver(sched, func(int) {}, nil, nil)

	boom := errors.New("boom")
	obs.OnError(boom)

	require.Equal(t, []error{boom}, sched.failures())
}

func TestNewObserverErrorHandlerWins(t *testing.T) {
	sched := new(captureScheduler)
	var handled []error
	obs := NewObserver(sched, func(int) {}, func(err error) { handled = append(handled, err) }, nil)

	boom := errors.New("boom")
	obs.OnError(boom)

	require.Equal(t, []error{boom}, handled)
	require.Empty(t, sched.failures())
}

func TestSynchronizeSerializesProducers(t *testing.T) {
	rec := newRecorder[int]()
	sink := Synchronize[int](rec)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				sink.OnNext(j)
			}
		}()
	}
	wg.Wait()
	sink.OnCompleted()

	require.Len(t, rec.values(), 800)
	require.Equal(t, 1, rec.completions())
}

func TestSynchronizeIsIdempotent(t *testing.T) {
	sink := Synchronize[int](newRecorder[int]())
	require.Same(t, sink, Synchronize(sink))
}
