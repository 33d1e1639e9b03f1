package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devzarghami/translate/pkg/i18n"
)

type languageCtxKey struct{}

type translatorCtxKey struct{}

// I18nConfig configures the I18n middleware.
type I18nConfig struct {
	// URLParam is the chi route parameter checked first, e.g. {lang} in
	// /{lang}/dashboard. Empty disables route-parameter detection.
	URLParam string
	// QueryParam is the query-string parameter checked next, e.g. ?lang=fa.
	QueryParam string
	// CookieName is the cookie checked after the URL. Empty disables cookie
	// detection.
	CookieName string
}

// I18nOption configures I18nConfig.
type I18nOption func(*I18nConfig)

// WithI18nURLParam sets the chi route parameter carrying the language code.
func WithI18nURLParam(name string) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.URLParam = name
	}
}

// WithI18nQueryParam sets the query parameter carrying the language code.
func WithI18nQueryParam(name string) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.QueryParam = name
	}
}

// WithI18nCookie sets the cookie carrying the language code.
func WithI18nCookie(name string) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.CookieName = name
	}
}

// I18n returns middleware that resolves the request's language and stores it
// in the request context together with a request-scoped translation
// function. Detection order: chi URL parameter, query parameter, cookie,
// Accept-Language header. Unrecognized values fall through to the next
// source; when nothing matches, the store's default language is used.
//
// The translation function is pinned to the detected language and the
// catalogs as of middleware time, so a single request renders consistently
// even if another goroutine swaps catalogs mid-flight.
func I18n(store *i18n.Store, opts ...I18nOption) func(http.Handler) http.Handler {
	cfg := &I18nConfig{
		QueryParam: "lang",
		CookieName: "lang",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := detectLanguage(r, cfg, store.DefaultLanguage())

			ctx := context.WithValue(r.Context(), languageCtxKey{}, lang)
			ctx = context.WithValue(ctx, translatorCtxKey{}, store.For(lang))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func detectLanguage(r *http.Request, cfg *I18nConfig, fallback i18n.Language) i18n.Language {
	if cfg.URLParam != "" {
		if code := chi.URLParam(r, cfg.URLParam); i18n.Valid(code) {
			return i18n.Language(code)
		}
	}

	if cfg.QueryParam != "" {
		if code := r.URL.Query().Get(cfg.QueryParam); i18n.Valid(code) {
			return i18n.Language(code)
		}
	}

	if cfg.CookieName != "" {
		if cookie, err := r.Cookie(cfg.CookieName); err == nil && i18n.Valid(cookie.Value) {
			return i18n.Language(cookie.Value)
		}
	}

	if header := r.Header.Get("Accept-Language"); header != "" {
		// Fallback first so an unmatchable header resolves to the store's
		// default rather than the registry's.
		available := make([]i18n.Language, 0, len(i18n.Supported())+1)
		available = append(available, fallback)
		for _, lang := range i18n.Supported() {
			if lang != fallback {
				available = append(available, lang)
			}
		}
		return i18n.ParseAcceptLanguage(header, available)
	}

	return fallback
}

// Language extracts the resolved language from the request context.
// Returns the empty Language if the I18n middleware is not used.
func Language(r *http.Request) i18n.Language {
	if v, ok := r.Context().Value(languageCtxKey{}).(i18n.Language); ok {
		return v
	}
	return ""
}

// Translator extracts the request-scoped translation function from the
// request context. Returns nil if the I18n middleware is not used.
func Translator(r *http.Request) i18n.TranslateFunc {
	if v, ok := r.Context().Value(translatorCtxKey{}).(i18n.TranslateFunc); ok {
		return v
	}
	return nil
}

// LanguageExtractor returns a logger context extractor that reports the
// language resolved by the I18n middleware, so request-scoped log records
// carry the language they were served under.
func LanguageExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v, ok := ctx.Value(languageCtxKey{}).(i18n.Language); ok {
			return slog.String("lang", string(v)), true
		}
		return slog.Attr{}, false
	}
}
