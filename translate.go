package translate

import (
	"context"
	"sync/atomic"

	"github.com/devzarghami/translate/pkg/i18n"
	"github.com/devzarghami/translate/pkg/observable"
)

// Type aliases - public API
type (
	// Language is a supported language code.
	Language = i18n.Language

	// Tree is a nested translation tree with string leaves.
	Tree = i18n.Tree

	// Catalog maps languages to their translation trees.
	Catalog = i18n.Catalog

	// Key is a translation key: a dot-delimited Path or a per-language
	// Localized literal.
	Key = i18n.Key

	// Path is a dot-delimited translation key, e.g. "navbar.title".
	Path = i18n.Path

	// Localized is a per-language literal resolved without tree lookup.
	Localized = i18n.Localized

	// Vars holds interpolation variables for {{name}} placeholders.
	Vars = i18n.Vars

	// TranslateFunc resolves keys against one consistent snapshot of state.
	TranslateFunc = i18n.TranslateFunc

	// Store holds the reactive translation state.
	Store = i18n.Store

	// Option configures a Store during construction.
	Option = i18n.Option

	// Source produces a translation tree for one language.
	Source = i18n.Source

	// SourceFunc adapts a function to the Source interface.
	SourceFunc = i18n.SourceFunc

	// TreeSource is an already-materialized tree used as a Source.
	TreeSource = i18n.TreeSource

	// PathResolver turns an opaque path identifier into a translation tree.
	PathResolver = i18n.PathResolver

	// Refresher periodically re-fetches translation sources on a cron
	// schedule.
	Refresher = i18n.Refresher
)

// Supported language codes.
const (
	English    = i18n.English
	Persian    = i18n.Persian
	Spanish    = i18n.Spanish
	German     = i18n.German
	French     = i18n.French
	Portuguese = i18n.Portuguese
	Russian    = i18n.Russian
	Arabic     = i18n.Arabic
	Chinese    = i18n.Chinese
	Japanese   = i18n.Japanese
)

// Constructors and store options re-exported at the root.
var (
	New          = i18n.New
	NewRefresher = i18n.NewRefresher

	// ParseLanguage normalizes an arbitrary language tag to the closest
	// supported Language.
	ParseLanguage = i18n.Parse

	WithDefaultLanguage   = i18n.WithDefaultLanguage
	WithLogger            = i18n.WithLogger
	WithDevMode           = i18n.WithDevMode
	WithPathResolver      = i18n.WithPathResolver
	WithMissingKeyHandler = i18n.WithMissingKeyHandler
)

// Config holds translation settings populated from environment variables.
type Config struct {
	// Default/fallback language code.
	DefaultLanguage string `env:"TRANSLATE_DEFAULT_LANGUAGE" envDefault:"en"`
	// DevMode enables success diagnostics on loads and page updates.
	DevMode bool `env:"TRANSLATE_DEV_MODE"`
}

// NewFromConfig creates a Store from environment-driven configuration.
// Extra options are applied after the config and take precedence.
func NewFromConfig(cfg Config, opts ...Option) *Store {
	all := append([]Option{
		WithDefaultLanguage(i18n.Parse(cfg.DefaultLanguage)),
		WithDevMode(cfg.DevMode),
	}, opts...)
	return i18n.New(all...)
}

// defaultStore backs the package-level convenience API. Most applications
// hold a single process-wide translation state; libraries that need
// isolation create their own Store with i18n.New.
var defaultStore atomic.Pointer[i18n.Store]

func init() {
	defaultStore.Store(i18n.New())
}

// Configure replaces the package-level store with a freshly constructed one
// and returns it. Observers of the previous store keep observing the
// previous store.
func Configure(opts ...Option) *Store {
	s := i18n.New(opts...)
	defaultStore.Store(s)
	return s
}

// DefaultStore returns the package-level store.
func DefaultStore() *Store {
	return defaultStore.Load()
}

// T resolves a dot-delimited path key against the package-level store.
func T(key string, vars ...Vars) string {
	return DefaultStore().T(key, vars...)
}

// Resolve resolves any key variant against the package-level store.
func Resolve(key Key, vars ...Vars) string {
	return DefaultStore().Resolve(key, vars...)
}

// CurrentLanguage returns the active language of the package-level store.
func CurrentLanguage() Language {
	return DefaultStore().Language()
}

// SetLanguage sets the active language of the package-level store.
func SetLanguage(lang Language) {
	DefaultStore().SetLanguage(lang)
}

// Load fetches a translation tree, merges it into the global catalog, and
// activates lang. Errors are logged and swallowed; prior state is kept.
func Load(ctx context.Context, lang Language, src Source) {
	DefaultStore().Load(ctx, lang, src)
}

// LoadPath loads a tree through the store's configured path resolver.
func LoadPath(ctx context.Context, lang Language, path string) {
	DefaultStore().LoadPath(ctx, lang, path)
}

// LoadAll loads several languages concurrently.
func LoadAll(ctx context.Context, sources map[Language]Source) {
	DefaultStore().LoadAll(ctx, sources)
}

// SetPageTranslations destructively replaces the page-scoped catalog.
// Call it on route transitions with the new page's translations.
func SetPageTranslations(c Catalog) {
	DefaultStore().ReplacePage(c)
}

// MergeGlobal replaces one language's entry in the global catalog.
func MergeGlobal(lang Language, tree Tree) {
	DefaultStore().MergeGlobal(lang, tree)
}

// Translator returns an observable translation function bound to the
// package-level store.
func Translator() *observable.Computed[TranslateFunc] {
	return DefaultStore().Translator()
}
