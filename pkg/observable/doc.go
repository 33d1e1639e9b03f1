// Package observable provides a minimal observable-value primitive: mutable
// containers (Value) and derived values (Computed) that notify subscribers
// synchronously on change.
//
// The package implements the "observable value + subscribe/unsubscribe"
// contract expected by reactive consumers. A Computed recomputes eagerly
// whenever any of its declared dependencies changes, so readers always see a
// value consistent with the latest state of every dependency.
//
// # Basic Usage
//
//	count := observable.NewValue(0)
//	doubled := observable.NewComputed(func() int {
//		return count.Get() * 2
//	}, count)
//
//	unsubscribe := doubled.Subscribe(func(v int) {
//		fmt.Println("doubled is now", v)
//	})
//	defer unsubscribe()
//
//	count.Set(21) // prints "doubled is now 42"
//
// # Concurrency
//
// Reads and writes are mutex-guarded, so Value and Computed are safe for
// concurrent use. Notification is synchronous: Set does not return until all
// subscribers have run. Subscribers must not mutate the value they observe
// from within the callback.
package observable
