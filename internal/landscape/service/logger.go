package service

import (
	"context"
	"log"
)

// Logger prefixes service log lines with the request id placed in the
// context by the request-id middleware.
type Logger struct {
	requestID string
}

// NewLogger creates a logger bound to the request in ctx.
func NewLogger(ctx context.Context) *Logger {
	requestID := "unknown"
	if rid, ok := ctx.Value("request_id").(string); ok && rid != "" {
		requestID = rid
	}
	return &Logger{requestID: requestID}
}

// Error logs an operation failure.
func (l *Logger) Error(operation string, err error) {
	log.Printf("[error] request_id=%s operation=%s error=%v", l.requestID, operation, err)
}

// Infof logs a formatted info message.
func (l *Logger) Infof(operation, format string, args ...any) {
	log.Printf("[info] request_id=%s operation=%s "+format, append([]any{l.requestID, operation}, args...)...)
}

// Warnf logs a formatted warning.
func (l *Logger) Warnf(operation, format string, args ...any) {
	log.Printf("[warn] request_id=%s operation=%s "+format, append([]any{l.requestID, operation}, args...)...)
}
