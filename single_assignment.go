package monix

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// SingleAssignmentCancelable starts out empty and is assigned its child
// exactly once. Canceling before the assignment cancels the child the
// moment it arrives. Assigning twice is a programming error and panics.
type SingleAssignmentCancelable struct {
	mu       sync.Mutex
	canceled bool
	assigned bool
	child    Cancelable
}

func NewSingleAssignmentCancelable() *SingleAssignmentCancelable {
	return new(SingleAssignmentCancelable)
}

// Set assigns the child cancelable.
func (s *SingleAssignmentCancelable) Set(child Cancelable) {
	s.mu.Lock()
	if s.assigned {
		s.mu.Unlock()
		panic(errors.AssertionFailedf("single assignment cancelable assigned twice"))
	}
	s.assigned = true
	if s.canceled {
		s.mu.Unlock()
		child.Cancel()
		return
	}
	s.child = child
	s.mu.Unlock()
}

func (s *SingleAssignmentCancelable) Cancel() {
	s.mu.Lock()
	if s.canceled {
		s.mu.Unlock()
		return
	}
	s.canceled = true
	child := s.child
	s.child = nil
	s.mu.Unlock()
	if child != nil {
		child.Cancel()
	}
}

func (s *SingleAssignmentCancelable) IsCanceled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canceled
}
