package observable

import (
	"sync"

	"github.com/google/uuid"
)

// Observable is implemented by values that can notify watchers when they change.
// Watchers are invoked synchronously, after the new state is visible to readers.
type Observable interface {
	// Watch registers a change callback and returns a function that removes it.
	Watch(fn func()) (stop func())
}

// Value is a mutable observable container. Reads and writes are guarded by a
// mutex; subscriber notification happens synchronously after the write, once
// the new value is readable. Within a single goroutine a subscriber therefore
// never observes a stale value.
type Value[T any] struct {
	mu       sync.RWMutex
	current  T
	watchers map[uuid.UUID]func(T)
}

// NewValue creates a Value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		current:  initial,
		watchers: make(map[uuid.UUID]func(T)),
	}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Set replaces the current value unconditionally and notifies subscribers.
func (v *Value[T]) Set(next T) {
	v.mu.Lock()
	v.current = next
	watchers := v.snapshotWatchers()
	v.mu.Unlock()

	for _, fn := range watchers {
		fn(next)
	}
}

// Update applies fn to the current value under the write lock and stores the
// result, then notifies subscribers. Use it for read-modify-write mutations
// that must not interleave with concurrent writers.
func (v *Value[T]) Update(fn func(T) T) {
	v.mu.Lock()
	v.current = fn(v.current)
	next := v.current
	watchers := v.snapshotWatchers()
	v.mu.Unlock()

	for _, w := range watchers {
		w(next)
	}
}

// Subscribe registers a callback invoked with the new value after every
// change. The returned function removes the subscription; calling it more
// than once is harmless.
func (v *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	id := uuid.New()

	v.mu.Lock()
	v.watchers[id] = fn
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		delete(v.watchers, id)
		v.mu.Unlock()
	}
}

// Watch implements Observable.
func (v *Value[T]) Watch(fn func()) (stop func()) {
	return v.Subscribe(func(T) { fn() })
}

// snapshotWatchers copies the watcher list so callbacks run outside the lock.
// Callers must hold v.mu.
func (v *Value[T]) snapshotWatchers() []func(T) {
	out := make([]func(T), 0, len(v.watchers))
	for _, fn := range v.watchers {
		out = append(out, fn)
	}
	return out
}
