package monix

import "sync"

// CompositeCancelable groups child cancelables so a whole subscription
// tree can be torn down with one call. Children are keyed by identity,
// so removing and re-adding the same child behaves predictably.
type CompositeCancelable struct {
	mu       sync.Mutex
	canceled bool
	children map[Cancelable]struct{}
}

func NewCompositeCancelable(children ...Cancelable) *CompositeCancelable {
	c := &CompositeCancelable{children: make(map[Cancelable]struct{})}
	for _, child := range children {
		c.Add(child)
	}
	return c
}

// Add inserts a child. If the composite is already canceled the child
// is canceled immediately instead of being retained.
func (c *CompositeCancelable) Add(child Cancelable) {
	c.mu.Lock()
	if c.canceled {
		c.mu.Unlock()
		child.Cancel()
		return
	}
	c.children[child] = struct{}{}
	c.mu.Unlock()
}

// Remove drops a child without canceling it. Completed children are
// removed this way so long lived subscriptions do not accumulate them.
func (c *CompositeCancelable) Remove(child Cancelable) {
	c.mu.Lock()
	delete(c.children, child)
	c.mu.Unlock()
}

func (c *CompositeCancelable) Cancel() {
	c.mu.Lock()
	if c.canceled {
		c.mu.Unlock()
		return
	}
	c.canceled = true
	children := c.children
	c.children = nil
	c.mu.Unlock()
	// children run outside the lock so a teardown that re-enters the
	// composite cannot deadlock
	for child := range children {
		child.Cancel()
	}
}

func (c *CompositeCancelable) IsCanceled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canceled
}
