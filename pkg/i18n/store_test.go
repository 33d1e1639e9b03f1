package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devzarghami/translate/pkg/i18n"
)

func TestStoreDefaults(t *testing.T) {
	t.Parallel()

	store := i18n.New()
	require.Equal(t, i18n.Default, store.Language())
	require.Empty(t, store.Global())
	require.Empty(t, store.Page())
}

func TestStoreSetLanguage(t *testing.T) {
	t.Parallel()

	t.Run("replaces active language", func(t *testing.T) {
		t.Parallel()
		store := i18n.New()
		store.SetLanguage(i18n.Persian)
		require.Equal(t, i18n.Persian, store.Language())
	})

	t.Run("accepts unregistered values without validation", func(t *testing.T) {
		t.Parallel()
		store := i18n.New()
		store.SetLanguage(i18n.Language("xx"))
		require.Equal(t, i18n.Language("xx"), store.Language())
	})

	t.Run("notifies observers", func(t *testing.T) {
		t.Parallel()
		store := i18n.New()

		var got []i18n.Language
		unsubscribe := store.OnLanguageChange(func(l i18n.Language) { got = append(got, l) })
		defer unsubscribe()

		store.SetLanguage(i18n.Spanish)
		require.Equal(t, []i18n.Language{i18n.Spanish}, got)
	})
}

func TestStoreMergeGlobal(t *testing.T) {
	t.Parallel()

	t.Run("merging one language preserves others", func(t *testing.T) {
		t.Parallel()
		store := i18n.New()

		store.MergeGlobal(i18n.English, i18n.Tree{"hello": "Hello"})
		store.MergeGlobal(i18n.Persian, i18n.Tree{"hello": "سلام"})

		store.SetLanguage(i18n.English)
		require.Equal(t, "Hello", store.T("hello"))
		store.SetLanguage(i18n.Persian)
		require.Equal(t, "سلام", store.T("hello"))
	})

	t.Run("remerging a language replaces its entry", func(t *testing.T) {
		t.Parallel()
		store := i18n.New()

		store.MergeGlobal(i18n.English, i18n.Tree{"a": "one", "b": "two"})
		store.MergeGlobal(i18n.English, i18n.Tree{"a": "uno"})

		require.Equal(t, "uno", store.T("a"))
		// The old entry for the language is gone wholesale.
		require.Equal(t, "b", store.T("b"))
	})
}

func TestStoreReplacePage(t *testing.T) {
	t.Parallel()

	t.Run("replacement is destructive", func(t *testing.T) {
		t.Parallel()
		store := i18n.New()

		store.ReplacePage(i18n.Catalog{i18n.English: {"a": "first"}})
		store.ReplacePage(i18n.Catalog{i18n.English: {"b": "second"}})

		require.Equal(t, "second", store.T("b"))
		require.Equal(t, "a", store.T("a")) // key echo: previous page tree discarded
	})

	t.Run("page entries shadow global entries", func(t *testing.T) {
		t.Parallel()
		store := i18n.New()

		store.MergeGlobal(i18n.English, i18n.Tree{"a": "G"})
		store.ReplacePage(i18n.Catalog{i18n.English: {"a": "P"}})

		require.Equal(t, "P", store.T("a"))
	})

	t.Run("nil catalog clears the page tree", func(t *testing.T) {
		t.Parallel()
		store := i18n.New()

		store.MergeGlobal(i18n.English, i18n.Tree{"a": "G"})
		store.ReplacePage(i18n.Catalog{i18n.English: {"a": "P"}})
		store.ReplacePage(nil)

		require.Equal(t, "G", store.T("a"))
	})
}

func TestStoreWatch(t *testing.T) {
	t.Parallel()

	store := i18n.New()

	changes := 0
	stop := store.Watch(func() { changes++ })
	defer stop()

	store.SetLanguage(i18n.German)
	store.MergeGlobal(i18n.German, i18n.Tree{"a": "A"})
	store.ReplacePage(i18n.Catalog{i18n.German: {"b": "B"}})
	require.Equal(t, 3, changes)

	stop()
	store.SetLanguage(i18n.English)
	require.Equal(t, 3, changes)
}

func TestStoreMissingKeyHandler(t *testing.T) {
	t.Parallel()

	var missed []string
	store := i18n.New(
		i18n.WithMissingKeyHandler(func(lang i18n.Language, key string) {
			missed = append(missed, string(lang)+":"+key)
		}),
	)

	require.Equal(t, "nope", store.T("nope"))
	require.Equal(t, []string{"en:nope"}, missed)
}
