package i18n

import (
	"context"
	"io"
	"log/slog"

	"github.com/devzarghami/translate/pkg/observable"
)

// PathResolver turns an opaque path identifier into a translation tree. It is
// the injected dynamic-loading capability used by Store.LoadPath; this
// package never touches the filesystem or network itself.
type PathResolver func(ctx context.Context, path string) (Tree, error)

// Store holds the three pieces of reactive translation state: the active
// language, the application-wide global catalog, and the page-scoped catalog.
// Each is individually observable; mutation and observer notification are
// serialized, so observers never see a torn view of the three.
//
// State is mutated only through SetLanguage, MergeGlobal, ReplacePage, and
// the Load family. All mutations are total: they accept any value of their
// declared type and never fail.
type Store struct {
	lang   *observable.Value[Language]
	global *observable.Value[Catalog]
	page   *observable.Value[Catalog]

	logger      *slog.Logger
	resolvePath PathResolver
	missing     func(Language, string)
	defaultLang Language
	devMode     bool
}

// Option configures a Store during construction.
type Option func(*Store)

// WithDefaultLanguage sets the default/fallback language and the initial
// active language. Defaults to Default.
func WithDefaultLanguage(lang Language) Option {
	return func(s *Store) {
		if lang != "" {
			s.defaultLang = lang
		}
	}
}

// WithLogger sets the diagnostics logger. Defaults to a discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithDevMode enables development diagnostics: success log lines on loads and
// page-catalog updates.
func WithDevMode(dev bool) Option {
	return func(s *Store) {
		s.devMode = dev
	}
}

// WithPathResolver injects the asynchronous mechanism LoadPath uses to turn a
// path identifier into a translation tree.
func WithPathResolver(resolve PathResolver) Option {
	return func(s *Store) {
		s.resolvePath = resolve
	}
}

// WithMissingKeyHandler sets a handler called with the language and key of
// every lookup that resolves in neither catalog.
func WithMissingKeyHandler(handler func(lang Language, key string)) Option {
	return func(s *Store) {
		s.missing = handler
	}
}

// New creates a Store with empty catalogs and the default language active.
func New(opts ...Option) *Store {
	s := &Store{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		defaultLang: Default,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.lang = observable.NewValue(s.defaultLang)
	s.global = observable.NewValue(make(Catalog))
	s.page = observable.NewValue(make(Catalog))

	return s
}

// Language returns the active language.
func (s *Store) Language() Language {
	return s.lang.Get()
}

// SetLanguage unconditionally replaces the active language and notifies
// observers. The value is not validated against the registry.
func (s *Store) SetLanguage(lang Language) {
	s.lang.Set(lang)
}

// Global returns the current global catalog. The returned catalog is a live
// snapshot and must be treated as immutable.
func (s *Store) Global() Catalog {
	return s.global.Get()
}

// Page returns the current page catalog. The returned catalog is a live
// snapshot and must be treated as immutable.
func (s *Store) Page() Catalog {
	return s.page.Get()
}

// MergeGlobal replaces only the entry for lang in the global catalog,
// preserving every other language's entries, and notifies observers.
func (s *Store) MergeGlobal(lang Language, tree Tree) {
	s.global.Update(func(c Catalog) Catalog {
		return c.withLanguage(lang, tree)
	})
}

// ReplacePage destructively replaces the entire page catalog and notifies
// observers. The previous page catalog is discarded.
func (s *Store) ReplacePage(c Catalog) {
	if c == nil {
		c = make(Catalog)
	}
	s.page.Set(c)

	if s.devMode {
		s.logger.Info("page translations updated", slog.Int("languages", len(c)))
	}
}

// DefaultLanguage returns the configured default/fallback language.
func (s *Store) DefaultLanguage() Language {
	return s.defaultLang
}

// OnLanguageChange subscribes to active-language changes. The returned
// function removes the subscription.
func (s *Store) OnLanguageChange(fn func(Language)) (unsubscribe func()) {
	return s.lang.Subscribe(fn)
}

// Watch registers a callback fired on any change to the active language, the
// global catalog, or the page catalog. The returned function removes all
// three registrations.
func (s *Store) Watch(fn func()) (stop func()) {
	stops := []func(){
		s.lang.Watch(fn),
		s.global.Watch(fn),
		s.page.Watch(fn),
	}
	return func() {
		for _, stop := range stops {
			stop()
		}
	}
}

// resolver builds a Resolver bound to the store's diagnostics configuration.
func (s *Store) resolver() Resolver {
	return Resolver{
		Logger:  s.logger,
		Missing: s.missing,
		Default: s.defaultLang,
	}
}
