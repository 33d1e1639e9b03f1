package logger

import (
	"context"
	"errors"
	"log/slog"
)

// fanout duplicates log records across several handlers, letting one logger
// feed stdout and Sentry at the same time. Records are cloned per target so
// handlers cannot observe each other's attribute mutations.
type fanout struct {
	targets []slog.Handler
}

func newFanout(targets ...slog.Handler) slog.Handler {
	return &fanout{targets: targets}
}

func (f *fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.targets {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f *fanout) Handle(ctx context.Context, rec slog.Record) error {
	var errs []error
	for _, h := range f.targets {
		if !h.Enabled(ctx, rec.Level) {
			continue
		}
		if err := h.Handle(ctx, rec.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f *fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	return f.fork(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (f *fanout) WithGroup(name string) slog.Handler {
	return f.fork(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (f *fanout) fork(fn func(slog.Handler) slog.Handler) slog.Handler {
	next := make([]slog.Handler, len(f.targets))
	for i, h := range f.targets {
		next[i] = fn(h)
	}
	return &fanout{targets: next}
}
