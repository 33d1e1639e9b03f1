package observable

import (
	"sync"

	"github.com/google/uuid"
)

// Computed is a derived observable value. It recomputes eagerly and
// synchronously whenever any of its dependencies changes, caches the result,
// and notifies its own subscribers. A Computed is itself an Observable, so
// derivations can be chained.
type Computed[T any] struct {
	mu       sync.RWMutex
	compute  func() T
	current  T
	watchers map[uuid.UUID]func(T)
	detach   []func()
}

// NewComputed creates a Computed that evaluates compute immediately and
// re-evaluates it on every change of any dependency. Call Close when the
// value is no longer needed to detach it from its dependencies.
func NewComputed[T any](compute func() T, deps ...Observable) *Computed[T] {
	c := &Computed[T]{
		compute:  compute,
		current:  compute(),
		watchers: make(map[uuid.UUID]func(T)),
	}

	c.detach = make([]func(), 0, len(deps))
	for _, dep := range deps {
		c.detach = append(c.detach, dep.Watch(c.recompute))
	}

	return c
}

// Get returns the most recently computed value.
func (c *Computed[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Subscribe registers a callback invoked with the freshly computed value
// after every recomputation. The returned function removes the subscription.
func (c *Computed[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	id := uuid.New()

	c.mu.Lock()
	c.watchers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.watchers, id)
		c.mu.Unlock()
	}
}

// Watch implements Observable.
func (c *Computed[T]) Watch(fn func()) (stop func()) {
	return c.Subscribe(func(T) { fn() })
}

// Close detaches the Computed from its dependencies. The cached value remains
// readable but no longer updates.
func (c *Computed[T]) Close() {
	for _, stop := range c.detach {
		stop()
	}
	c.detach = nil
}

func (c *Computed[T]) recompute() {
	next := c.compute()

	c.mu.Lock()
	c.current = next
	watchers := make([]func(T), 0, len(c.watchers))
	for _, fn := range c.watchers {
		watchers = append(watchers, fn)
	}
	c.mu.Unlock()

	for _, fn := range watchers {
		fn(next)
	}
}
