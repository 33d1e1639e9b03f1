package i18n

import (
	"log/slog"
)

// Resolver resolves translation keys against a page and a global catalog.
// The zero value is usable: it falls back to the package Default language and
// stays silent about missing keys.
//
// Resolve is deterministic, total, and never panics; it always returns a
// string.
type Resolver struct {
	// Logger receives a warning for every key that resolves in neither tree.
	Logger *slog.Logger

	// Missing, when set, is called with the language and key of every failed
	// path lookup. Useful for detecting untranslated keys during development.
	Missing func(lang Language, key string)

	// Default overrides the package-level Default fallback language.
	Default Language
}

// Resolve turns key into a localized string.
//
// A Localized key selects its value through the language fallback chain and
// is then interpolated. A Path key is traversed first against the page tree
// for lang, then the global tree; the first non-empty string leaf wins. When
// neither tree holds the key, a warning is emitted and the key itself is
// returned verbatim, with no interpolation applied.
func (r Resolver) Resolve(key Key, vars Vars, lang Language, global, page Catalog) string {
	def := r.Default
	if def == "" {
		def = Default
	}

	switch k := key.(type) {
	case Localized:
		return ReplacePlaceholders(k.For(lang, def), vars, lang, def)

	case Path:
		if s, ok := page.Lookup(lang, string(k)); ok {
			return ReplacePlaceholders(s, vars, lang, def)
		}
		if s, ok := global.Lookup(lang, string(k)); ok {
			return ReplacePlaceholders(s, vars, lang, def)
		}

		if r.Logger != nil {
			r.Logger.Warn("translation not found",
				slog.String("key", string(k)),
				slog.String("lang", string(lang)),
			)
		}
		if r.Missing != nil {
			r.Missing(lang, string(k))
		}
		return string(k)
	}

	// Key is a closed union; a nil key resolves to the empty string.
	return ""
}
