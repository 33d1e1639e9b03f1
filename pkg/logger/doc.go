// Package logger provides structured logging built on log/slog for the
// translation stack: JSON output for production, text output for
// development, optional Sentry forwarding, and per-request context
// extraction.
//
// # Basic usage
//
//	log := logger.New()
//	store := i18n.New(i18n.WithLogger(log))
//
// Every missing-key warning and load failure the store emits flows through
// this logger. During development, use the debug-level text logger together
// with the store's dev mode:
//
//	store := i18n.New(
//		i18n.WithLogger(logger.NewDev()),
//		i18n.WithDevMode(true),
//	)
//
// # Sentry integration
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//	})
//
// With an empty DSN the logger degrades to stdout only, so the same wiring
// works in local development.
//
// # Context extractors
//
// Extractors pull request-scoped values from context into every log record.
// The i18n middleware exposes one for the negotiated language:
//
//	log := logger.New(middlewares.LanguageExtractor())
//
// A missing-key warning emitted while serving a request then carries the
// language the page was rendered in.
package logger
