// Package logging provides a tiny abstraction over slog so the library can
// depend on a minimal interface (Logger) while letting applications plug in
// any structured logger. The CLI uses New to build a slog-backed logger with
// a configurable level and format; library defaults fall back to NoOpLogger.
package logging
