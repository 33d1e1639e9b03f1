package source_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/devzarghami/translate/pkg/i18n"
	"github.com/devzarghami/translate/pkg/source"
)

func TestFile(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/en.json": {Data: []byte(`{"navbar":{"title":"Welcome"}}`)},
		"locales/fa.yaml": {Data: []byte("navbar:\n  title: \"خوش آمدید\"\n")},
		"locales/en.txt":  {Data: []byte("not a translation document")},
	}

	t.Run("reads JSON files", func(t *testing.T) {
		t.Parallel()

		tree, err := source.File(fsys, "locales/en.json").Fetch(t.Context())
		require.NoError(t, err)

		value, ok := tree.Lookup("navbar.title")
		require.True(t, ok)
		require.Equal(t, "Welcome", value)
	})

	t.Run("reads YAML files", func(t *testing.T) {
		t.Parallel()

		tree, err := source.File(fsys, "locales/fa.yaml").Fetch(t.Context())
		require.NoError(t, err)

		value, ok := tree.Lookup("navbar.title")
		require.True(t, ok)
		require.Equal(t, "خوش آمدید", value)
	})

	t.Run("fails on unsupported extensions", func(t *testing.T) {
		t.Parallel()

		_, err := source.File(fsys, "locales/en.txt").Fetch(t.Context())
		require.ErrorIs(t, err, source.ErrUnsupportedFormat)
	})

	t.Run("fails on missing files", func(t *testing.T) {
		t.Parallel()

		_, err := source.File(fsys, "locales/de.json").Fetch(t.Context())
		require.Error(t, err)
	})
}

func TestDir(t *testing.T) {
	t.Parallel()

	t.Run("builds one source per language file", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"locales/en.json":      {Data: []byte(`{"greeting":"Hello"}`)},
			"locales/fa.yaml":      {Data: []byte("greeting: سلام\n")},
			"locales/klingon.json": {Data: []byte(`{"greeting":"nuqneH"}`)},
			"locales/README.md":    {Data: []byte("docs")},
		}

		sources, err := source.Dir(fsys, "locales")
		require.NoError(t, err)
		require.Len(t, sources, 2)
		require.Contains(t, sources, i18n.English)
		require.Contains(t, sources, i18n.Persian)

		tree, err := sources[i18n.Persian].Fetch(t.Context())
		require.NoError(t, err)

		value, ok := tree.Lookup("greeting")
		require.True(t, ok)
		require.Equal(t, "سلام", value)
	})

	t.Run("fails on missing directories", func(t *testing.T) {
		t.Parallel()

		_, err := source.Dir(fstest.MapFS{}, "locales")
		require.Error(t, err)
	})
}

func TestPathResolver(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/pages/home.en.json": {Data: []byte(`{"hero":{"headline":"Build faster"}}`)},
	}

	resolve := source.PathResolver(fsys)

	tree, err := resolve(t.Context(), "locales/pages/home.en.json")
	require.NoError(t, err)

	value, ok := tree.Lookup("hero.headline")
	require.True(t, ok)
	require.Equal(t, "Build faster", value)

	_, err = resolve(t.Context(), "locales/pages/missing.en.json")
	require.Error(t, err)
}
