package i18n

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Source produces a translation tree for one language. Implementations live
// in pkg/source (files, HTTP, S3, Postgres, Redis); TreeSource and SourceFunc
// cover pre-materialized data and ad-hoc fetchers.
type Source interface {
	Fetch(ctx context.Context) (Tree, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (Tree, error)

// Fetch implements Source.
func (f SourceFunc) Fetch(ctx context.Context) (Tree, error) {
	return f(ctx)
}

// TreeSource is an already-materialized translation tree used as a Source.
type TreeSource Tree

// Fetch implements Source.
func (t TreeSource) Fetch(context.Context) (Tree, error) {
	return Tree(t), nil
}

// maxConcurrentLoads bounds LoadAll fan-out.
const maxConcurrentLoads = 4

// Load fetches a translation tree from src, merges it into the global
// catalog under lang, and activates lang.
//
// Loading is best-effort by design: any fetch error is logged and swallowed,
// leaving the catalogs and the active language exactly as they were. A
// missing translation file degrades to "translation not found" at lookup
// time instead of aborting the caller. In dev mode a success diagnostic is
// emitted.
func (s *Store) Load(ctx context.Context, lang Language, src Source) {
	s.load(ctx, lang, src, true)
}

// LoadPath resolves an opaque path identifier through the injected
// PathResolver and merges the result, with the same best-effort semantics as
// Load.
func (s *Store) LoadPath(ctx context.Context, lang Language, path string) {
	if s.resolvePath == nil {
		s.logger.ErrorContext(ctx, "translation load failed",
			slog.String("lang", string(lang)),
			slog.String("path", path),
			slog.String("error", "no path resolver configured"),
		)
		return
	}

	s.Load(ctx, lang, SourceFunc(func(ctx context.Context) (Tree, error) {
		return s.resolvePath(ctx, path)
	}))
}

// LoadAll loads several languages concurrently. Merges for different
// languages land in independent catalog entries, so interleaving is safe;
// each load keeps Load's best-effort semantics. The last load to finish
// determines the active language.
func (s *Store) LoadAll(ctx context.Context, sources map[Language]Source) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)

	for lang, src := range sources {
		g.Go(func() error {
			s.Load(ctx, lang, src)
			return nil
		})
	}

	_ = g.Wait()
}

// Refresh re-fetches src and merges it under lang without touching the
// active language. Used by background refreshers and cache-invalidation
// watchers.
func (s *Store) Refresh(ctx context.Context, lang Language, src Source) {
	s.load(ctx, lang, src, false)
}

func (s *Store) load(ctx context.Context, lang Language, src Source, activate bool) {
	tree, err := src.Fetch(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "translation load failed",
			slog.String("lang", string(lang)),
			slog.Any("error", err),
		)
		return
	}
	if tree == nil {
		s.logger.ErrorContext(ctx, "translation load failed",
			slog.String("lang", string(lang)),
			slog.String("error", "source returned no data"),
		)
		return
	}

	s.MergeGlobal(lang, tree)
	if activate {
		s.SetLanguage(lang)
	}

	if s.devMode {
		s.logger.InfoContext(ctx, "translations loaded",
			slog.String("lang", string(lang)),
			slog.Int("entries", len(tree)),
		)
	}
}
