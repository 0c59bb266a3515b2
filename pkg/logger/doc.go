// Package logger provides structured logging with configurable log levels.
// It wraps the standard log/slog package, emitting JSON in prod and plain
// text elsewhere, with an environment attribute on every record.
package logger
