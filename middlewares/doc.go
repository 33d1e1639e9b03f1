// Package middlewares provides net/http middleware for the translation
// stack.
//
// The I18n middleware negotiates the request language from the URL, query
// string, cookie, or Accept-Language header and binds a request-scoped
// translation function into the context:
//
//	store := i18n.New()
//	r := chi.NewRouter()
//	r.Use(middlewares.I18n(store, middlewares.WithI18nURLParam("lang")))
//	r.Get("/{lang}/dashboard", func(w http.ResponseWriter, r *http.Request) {
//		t := middlewares.Translator(r)
//		fmt.Fprint(w, t.T("dashboard.title"))
//	})
package middlewares
