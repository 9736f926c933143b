// Package logger builds configured slog loggers with optional context
// attribute extraction, so request-scoped values (user, universe) are
// attached to every record without threading them through call sites.
package logger
