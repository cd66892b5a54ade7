package monix

import "go.uber.org/atomic"

// RefCountCancelable tracks a dynamic family of acquired handles plus a
// main handle. The terminal action runs exactly once, when the main
// handle has been canceled and every acquired handle has been released,
// on whichever goroutine made the final transition.
//
// The whole state fits one word: bit zero records the main cancel, the
// remaining bits count live acquisitions.
type RefCountCancelable struct {
	state  atomic.Int64
	onDone func()
}

const refCanceledBit = 1

func NewRefCountCancelable(onDone func()) *RefCountCancelable {
	return &RefCountCancelable{onDone: onDone}
}

// Acquire registers a new member of the family and returns the handle
// that releases it. Once the main handle has been canceled, Acquire
// returns the already canceled sentinel.
func (rc *RefCountCancelable) Acquire() Cancelable {
	for {
		state := rc.state.Load()
		if state&refCanceledBit != 0 {
			return AlreadyCanceled()
		}
		if rc.state.CompareAndSwap(state, state+2) {
			return NewCancelable(rc.release)
		}
	}
}

func (rc *RefCountCancelable) release() {
	if rc.state.Sub(2) == refCanceledBit {
		rc.onDone()
	}
}

// Cancel marks the main handle done. The terminal action fires now if
// no acquired handles remain, or later when the last one is released.
func (rc *RefCountCancelable) Cancel() {
	for {
		state := rc.state.Load()
		if state&refCanceledBit != 0 {
			return
		}
		if rc.state.CompareAndSwap(state, state|refCanceledBit) {
			if state == 0 {
				rc.onDone()
			}
			return
		}
	}
}

func (rc *RefCountCancelable) IsCanceled() bool {
	return rc.state.Load()&refCanceledBit != 0
}
