// Package logger provides structured logging functionality for the
// application using Go's standard library log/slog package.
//
// Setup configures the process-wide JSON logger from configuration.
// Request-scoped loggers travel in the context: middleware attaches a
// logger carrying the trace ID with WithLogger, and lower layers
// retrieve it with FromContext or FromContextOrDefault.
package logger
