// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured
// logging with a configurable level and a JSON or text encoding.
package logger
