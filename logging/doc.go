// Package logging provides structured logging using Go's standard library log/slog.
// Logs are JSON by default, or logfmt-style text when configured, and the
// resulting *slog.Logger is shared through the Fx container.
package logging
