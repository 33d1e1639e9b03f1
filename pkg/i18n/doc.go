// Package i18n provides reactive internationalization state: a mutable
// translation store observed through recomputed translation functions, with
// page-over-global key resolution and {{name}} variable interpolation.
//
// The package is built around three pieces of observable state (the active
// language, an application-wide global catalog, and a page-scoped catalog)
// and a pure Resolver that turns a key into a localized string against a
// snapshot of that state.
//
// # Basic Usage
//
// Create a store, load translations, and resolve keys:
//
//	store := i18n.New(
//		i18n.WithDefaultLanguage(i18n.English),
//	)
//
//	store.Load(ctx, i18n.English, i18n.TreeSource{
//		"navbar": i18n.Tree{"title": "Welcome"},
//		"greeting": "Hi {{name}}",
//	})
//
//	store.T("navbar.title")                          // "Welcome"
//	store.T("greeting", i18n.Vars{"name": "Sam"})    // "Hi Sam"
//
// # Resolution Order
//
// A dot-delimited key is traversed first against the page catalog for the
// active language, then against the global catalog. The first non-empty
// string leaf wins. Within one tree, nested traversal is tried before a
// flat entry stored under the literal dotted key, so documents may mix both
// shapes; the nested interpretation wins when both exist. A key found in
// neither catalog resolves to itself and emits a warning diagnostic;
// callers that must distinguish real content from the key-echo fallback
// should compare the result to the key.
//
// An empty translation string is treated as missing and falls through to
// the next catalog.
//
// # Inline Translations
//
// A Localized literal bypasses the catalogs entirely:
//
//	store.Resolve(i18n.Localized{
//		i18n.English: "Hello",
//		i18n.Persian: "سلام",
//	})
//
// Selection falls back from the active language to the default language and
// then to the first non-empty entry.
//
// # Reactivity
//
// Translator returns an observable translation function that is recomputed
// whenever the language or either catalog changes:
//
//	tr := store.Translator()
//	defer tr.Close()
//
//	unsubscribe := tr.Subscribe(func(t i18n.TranslateFunc) {
//		render(t.T("navbar.title"))
//	})
//	defer unsubscribe()
//
//	store.SetLanguage(i18n.Persian) // subscriber re-renders
//
// Project derives observable arrays the same way, re-invoking its builder
// exactly once per state change.
//
// # Loading
//
// Loading is best-effort by design: a failed fetch is logged and swallowed,
// the store keeps its previous state, and lookups degrade to the key-echo
// fallback. Sources for files, HTTP, S3, Postgres, and Redis live in
// pkg/source; LoadAll preloads several languages concurrently and Refresher
// re-fetches sources on a cron schedule.
package i18n
