package logger

import (
	"log/slog"
	"os"
)

// New creates a JSON-formatted logger with optional context extractors.
// This is the production logger handed to i18n.WithLogger so missing-key
// warnings and load failures reach structured output.
func New(extractors ...ContextExtractor) *slog.Logger {
	log := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(NewLogHandlerDecorator(log, extractors...))
}

// NewDev creates a text-formatted debug-level logger. Pair it with
// i18n.WithDevMode to see per-language load diagnostics during development.
func NewDev(extractors ...ContextExtractor) *slog.Logger {
	log := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(NewLogHandlerDecorator(log, extractors...))
}
