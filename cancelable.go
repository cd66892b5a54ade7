package monix

import "go.uber.org/atomic"

// A Cancelable releases the resources held by a subscription. Cancel is
// idempotent: the underlying teardown runs at most once no matter how
// many callers race on it.
type Cancelable interface {
	Cancel()
	IsCanceled() bool
}

// booleanCancelable holds a user supplied teardown action.
type booleanCancelable struct {
	canceled atomic.Bool
	onCancel func()
}

// NewCancelable wraps a teardown action in a cancelable. A nil action
// yields a cancelable that only tracks its flag.
func NewCancelable(onCancel func()) Cancelable {
	return &booleanCancelable{onCancel: onCancel}
}

func (b *booleanCancelable) Cancel() {
	if b.canceled.CompareAndSwap(false, true) && b.onCancel != nil {
		b.onCancel()
	}
}

func (b *booleanCancelable) IsCanceled() bool {
	return b.canceled.Load()
}

type alreadyCanceled struct{}

func (*alreadyCanceled) Cancel()          {}
func (*alreadyCanceled) IsCanceled() bool { return true }

var alreadyCanceledSentinel Cancelable = &alreadyCanceled{}

// AlreadyCanceled returns the shared sentinel handed out whenever
// subscription work has already concluded synchronously.
func AlreadyCanceled() Cancelable {
	return alreadyCanceledSentinel
}
