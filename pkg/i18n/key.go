package i18n

import (
	"slices"
)

// Key identifies a translation. It is a closed union of two variants:
//
//   - Path: a dot-delimited key resolved against the page and global trees.
//   - Localized: an inline per-language literal that bypasses the trees.
type Key interface {
	translationKey()
}

// Path is a dot-delimited hierarchical translation key, e.g. "navbar.title".
type Path string

func (Path) translationKey() {}

// Localized maps language codes directly to translation strings. It can be
// used in place of a Path to inline a translation, and as an interpolation
// variable value that resolves per language.
type Localized map[Language]string

func (Localized) translationKey() {}

// For picks the value for lang, falling back to def, then to the first
// non-empty value in registry order, then to any remaining entry in sorted
// key order, and finally to the empty string. Empty-string entries are
// treated as absent throughout.
func (l Localized) For(lang, def Language) string {
	if s := l[lang]; s != "" {
		return s
	}
	if s := l[def]; s != "" {
		return s
	}
	for _, known := range supported {
		if s := l[known]; s != "" {
			return s
		}
	}

	// Entries under codes outside the registry: sorted for determinism.
	rest := make([]Language, 0, len(l))
	for code := range l {
		rest = append(rest, code)
	}
	slices.Sort(rest)
	for _, code := range rest {
		if s := l[code]; s != "" {
			return s
		}
	}
	return ""
}
