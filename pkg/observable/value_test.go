package observable_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devzarghami/translate/pkg/observable"
)

func TestValue(t *testing.T) {
	t.Parallel()

	t.Run("holds initial value", func(t *testing.T) {
		t.Parallel()
		v := observable.NewValue("hello")
		require.Equal(t, "hello", v.Get())
	})

	t.Run("set replaces value", func(t *testing.T) {
		t.Parallel()
		v := observable.NewValue(1)
		v.Set(2)
		require.Equal(t, 2, v.Get())
	})

	t.Run("subscribers receive new value synchronously", func(t *testing.T) {
		t.Parallel()
		v := observable.NewValue("a")

		var got []string
		unsubscribe := v.Subscribe(func(s string) {
			got = append(got, s)
		})
		defer unsubscribe()

		v.Set("b")
		v.Set("c")
		require.Equal(t, []string{"b", "c"}, got)
	})

	t.Run("unsubscribe stops notifications", func(t *testing.T) {
		t.Parallel()
		v := observable.NewValue(0)

		calls := 0
		unsubscribe := v.Subscribe(func(int) { calls++ })

		v.Set(1)
		unsubscribe()
		v.Set(2)
		require.Equal(t, 1, calls)
	})

	t.Run("unsubscribe is idempotent", func(t *testing.T) {
		t.Parallel()
		v := observable.NewValue(0)
		unsubscribe := v.Subscribe(func(int) {})
		unsubscribe()
		require.NotPanics(t, unsubscribe)
	})

	t.Run("update applies mutation atomically", func(t *testing.T) {
		t.Parallel()
		v := observable.NewValue(map[string]int{"a": 1})

		v.Update(func(m map[string]int) map[string]int {
			next := make(map[string]int, len(m)+1)
			for k, val := range m {
				next[k] = val
			}
			next["b"] = 2
			return next
		})

		require.Equal(t, map[string]int{"a": 1, "b": 2}, v.Get())
	})

	t.Run("concurrent updates are not lost", func(t *testing.T) {
		t.Parallel()
		v := observable.NewValue(0)

		var wg sync.WaitGroup
		for range 100 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v.Update(func(n int) int { return n + 1 })
			}()
		}
		wg.Wait()

		require.Equal(t, 100, v.Get())
	})

	t.Run("subscriber can read value during notification", func(t *testing.T) {
		t.Parallel()
		v := observable.NewValue(0)

		var seen int
		unsubscribe := v.Subscribe(func(int) {
			seen = v.Get()
		})
		defer unsubscribe()

		v.Set(7)
		require.Equal(t, 7, seen)
	})
}
