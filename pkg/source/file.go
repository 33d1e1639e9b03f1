package source

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/devzarghami/translate/pkg/i18n"
)

// File reads one translation document from an fs.FS. The format is derived
// from the file extension (.json, .yaml, .yml). Works with embed.FS, os.DirFS,
// and fstest.MapFS alike:
//
//	//go:embed locales
//	var localesFS embed.FS
//
//	store.Load(ctx, i18n.Persian, source.File(localesFS, "locales/fa.json"))
func File(fsys fs.FS, filePath string) i18n.Source {
	return i18n.SourceFunc(func(context.Context) (i18n.Tree, error) {
		format, err := formatForPath(filePath)
		if err != nil {
			return nil, err
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return nil, fmt.Errorf("source: reading %q: %w", filePath, err)
		}

		return Decode(data, format)
	})
}

// Dir builds one File source per language from a directory whose entries are
// named by language code: en.json, fa.yaml, de.yml. Files with unsupported
// extensions or unregistered language codes are skipped. The result plugs
// straight into Store.LoadAll.
func Dir(fsys fs.FS, dir string) (map[i18n.Language]i18n.Source, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("source: reading directory %q: %w", dir, err)
	}

	sources := make(map[i18n.Language]i18n.Source)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if _, err := formatForPath(name); err != nil {
			continue
		}

		code := strings.TrimSuffix(name, path.Ext(name))
		if !i18n.Valid(code) {
			continue
		}

		sources[i18n.Language(code)] = File(fsys, path.Join(dir, name))
	}

	return sources, nil
}

// PathResolver adapts an fs.FS to the store's injected path-resolution
// mechanism, so LoadPath("locales/fa.json") reads from fsys:
//
//	store := i18n.New(i18n.WithPathResolver(source.PathResolver(localesFS)))
func PathResolver(fsys fs.FS) i18n.PathResolver {
	return func(_ context.Context, p string) (i18n.Tree, error) {
		format, err := formatForPath(p)
		if err != nil {
			return nil, err
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("source: reading %q: %w", p, err)
		}

		return Decode(data, format)
	}
}
