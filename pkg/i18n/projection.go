package i18n

import (
	"github.com/devzarghami/translate/pkg/observable"
)

// TranslateFunc resolves a translation key with optional interpolation
// variables. Each TranslateFunc is bound to one snapshot of {active
// language, global catalog, page catalog}; repeated calls within that
// snapshot see a consistent stationary view of the state.
type TranslateFunc func(key Key, vars ...Vars) string

// T resolves a dot-delimited path key.
func (f TranslateFunc) T(key string, vars ...Vars) string {
	return f(Path(key), vars...)
}

// Markdown resolves a path key and renders the result as sanitized HTML.
func (f TranslateFunc) Markdown(key string, vars ...Vars) string {
	return RenderMarkdown(f(Path(key), vars...))
}

// Translator returns an observable translation function, recomputed
// synchronously whenever the active language, the global catalog, or the
// page catalog changes. No per-key results are cached across recomputations:
// each recomputation produces a fresh closure over the current snapshot of
// the three dependencies.
//
// Close the returned value when it is no longer observed.
func (s *Store) Translator() *observable.Computed[TranslateFunc] {
	return observable.NewComputed(s.snapshot, s.lang, s.global, s.page)
}

// T resolves a path key against the store's current state.
func (s *Store) T(key string, vars ...Vars) string {
	return s.snapshot()(Path(key), vars...)
}

// Resolve resolves any key variant against the store's current state.
func (s *Store) Resolve(key Key, vars ...Vars) string {
	return s.snapshot()(key, vars...)
}

// For returns a TranslateFunc pinned to lang instead of the active language,
// bound to the current catalogs. Useful for request-scoped translation where
// every request carries its own language.
func (s *Store) For(lang Language) TranslateFunc {
	resolver := s.resolver()
	global := s.global.Get()
	page := s.page.Get()

	return func(key Key, vars ...Vars) string {
		return resolver.Resolve(key, mergeVars(vars), lang, global, page)
	}
}

// Project derives an observable array from the store's translation state.
// The builder is re-invoked with a fresh TranslateFunc exactly once per
// change to the active language, the global catalog, or the page catalog,
// never once per item. Typical use is rebuilding localized menus or option
// lists:
//
//	items := i18n.Project(store, func(t i18n.TranslateFunc) []MenuItem {
//		return []MenuItem{
//			{Href: "/", Label: t.T("navbar.home")},
//			{Href: "/about", Label: t.T("navbar.about")},
//		}
//	})
//
// Close the returned value when it is no longer observed.
func Project[T any](s *Store, build func(TranslateFunc) []T) *observable.Computed[[]T] {
	return observable.NewComputed(func() []T {
		return build(s.snapshot())
	}, s.lang, s.global, s.page)
}

// snapshot captures the current state of the three dependencies and returns
// a TranslateFunc closed over it.
func (s *Store) snapshot() TranslateFunc {
	resolver := s.resolver()
	lang := s.lang.Get()
	global := s.global.Get()
	page := s.page.Get()

	return func(key Key, vars ...Vars) string {
		return resolver.Resolve(key, mergeVars(vars), lang, global, page)
	}
}
