// Package translate provides reactive internationalization for Go web
// applications: a current-language selector, a global translation catalog,
// a page-scoped catalog that shadows it, and translation functions that
// recompute automatically when any of the three changes.
//
// # Quick Start
//
// Load translations into the package-level store and translate:
//
//	//go:embed locales
//	var localesFS embed.FS
//
//	sources, _ := source.Dir(localesFS, "locales")
//	translate.LoadAll(ctx, sources)
//
//	translate.T("navbar.title")                          // "Welcome"
//	translate.T("greeting", translate.Vars{"name": "Dana"}) // "Hi Dana"
//
// Switching the language re-resolves everything derived from the store:
//
//	translate.SetLanguage(translate.Persian)
//
// # Keys
//
// Keys are dot-delimited paths into the translation tree, or per-language
// literals carried at the call site:
//
//	translate.T("navbar.menu.settings")
//	translate.Resolve(translate.Localized{
//		translate.English: "Save",
//		translate.Persian: "ذخیره",
//	})
//
// Missing keys resolve to the key itself, with a warning through the
// configured logger, so broken translations stay visible instead of
// rendering blank.
//
// # Page translations
//
// Pages carry their own catalogs which shadow the global one while active.
// Replace them on route transitions:
//
//	translate.SetPageTranslations(translate.Catalog{
//		translate.English: {"hero": map[string]any{"headline": "Build faster"}},
//	})
//
// # Reactivity
//
// Translator returns an observable translation function. Subscribers are
// notified synchronously after every language or catalog change, always
// seeing one consistent snapshot of all three:
//
//	tr := translate.Translator()
//	defer tr.Close()
//	tr.Subscribe(func(t translate.TranslateFunc) {
//		render(t.T("navbar.title"))
//	})
//
// # Isolated stores
//
// The package-level API wraps one process-wide store. Applications that
// need isolation, per-tenant state, or custom options construct their own:
//
//	store := translate.New(
//		translate.WithDefaultLanguage(translate.German),
//		translate.WithLogger(logger.New()),
//	)
package translate
