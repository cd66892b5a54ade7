package monix

import "sync"

// Pair is the positional combination Zip emits.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs the two sources positionally; the stream is as long as the
// shorter side. One mutex guards the two queues and done flags so the
// enqueue-or-emit decision is atomic, including the call into the
// downstream.
func Zip[A, B any](lhs Observable[A], rhs Observable[B]) Observable[Pair[A, B]] {
	return FuncObservable[Pair[A, B]](func(out Observer[Pair[A, B]]) Cancelable {
		state := &zipState[A, B]{out: out}
		composite := NewCompositeCancelable()
		composite.Add(lhs.Subscribe(zipLeft[A, B]{state}))
		composite.Add(rhs.Subscribe(zipRight[A, B]{state}))
		return composite
	})
}

type zipState[A, B any] struct {
	mu         sync.Mutex
	out        Observer[Pair[A, B]]
	queueA     []A
	queueB     []B
	doneA      bool
	doneB      bool
	terminated bool
}

func (s *zipState[A, B]) nextLeft(elem A) Ack {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doneA {
		return Stop
	}
	if len(s.queueB) > 0 {
		partner := s.queueB[0]
		s.queueB = s.queueB[1:]
		return s.out.OnNext(Pair[A, B]{First: elem, Second: partner})
	}
	if s.doneB {
		// no partner will ever come
		s.completeLeftLocked()
		return Stop
	}
	s.queueA = append(s.queueA, elem)
	return Continue
}

func (s *zipState[A, B]) nextRight(elem B) Ack {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doneB {
		return Stop
	}
	if len(s.queueA) > 0 {
		partner := s.queueA[0]
		s.queueA = s.queueA[1:]
		return s.out.OnNext(Pair[A, B]{First: partner, Second: elem})
	}
	if s.doneA {
		s.completeRightLocked()
		return Stop
	}
	s.queueB = append(s.queueB, elem)
	return Continue
}

func (s *zipState[A, B]) completeLeftLocked() {
	s.doneA = true
	if len(s.queueA) == 0 || s.doneB {
		s.terminateLocked(nil)
	}
}

func (s *zipState[A, B]) completeRightLocked() {
	s.doneB = true
	if len(s.queueB) == 0 || s.doneA {
		s.terminateLocked(nil)
	}
}

// terminateLocked clears the buffers and delivers the single terminal
// event, guarding against the two sides racing their terminals.
func (s *zipState[A, B]) terminateLocked(err error) {
	s.queueA, s.queueB = nil, nil
	if s.terminated {
		return
	}
	s.terminated = true
	if err != nil {
		s.out.OnError(err)
	} else {
		s.out.OnCompleted()
	}
}

func (s *zipState[A, B]) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doneA, s.doneB = true, true
	s.terminateLocked(err)
}

type zipLeft[A, B any] struct {
	state *zipState[A, B]
}

func (z zipLeft[A, B]) OnNext(elem A) Ack {
	return z.state.nextLeft(elem)
}

func (z zipLeft[A, B]) OnError(err error) {
	z.state.fail(err)
}

func (z zipLeft[A, B]) OnCompleted() {
	z.state.mu.Lock()
	defer z.state.mu.Unlock()
	z.state.completeLeftLocked()
}

type zipRight[A, B any] struct {
	state *zipState[A, B]
}

func (z zipRight[A, B]) OnNext(elem B) Ack {
	return z.state.nextRight(elem)
}

func (z zipRight[A, B]) OnError(err error) {
	z.state.fail(err)
}

func (z zipRight[A, B]) OnCompleted() {
	z.state.mu.Lock()
	defer z.state.mu.Unlock()
	z.state.completeRightLocked()
}
