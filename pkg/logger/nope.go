package logger

import "log/slog"

// NewNope creates a logger that drops every record. Use this as a default
// when logging is not configured; it matches the store's silent default.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
