// Package logger provides a structured logging solution using the Zap logging library.
// It keeps a process-wide sugared logger behind an atomic level,
// offers context-aware helpers (plain, formatted and key-value variants)
// and lets callers attach a request-scoped logger to a context.
package logger
