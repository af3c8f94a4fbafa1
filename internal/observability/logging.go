// Package observability provides logging, metrics, and tracing.
package observability

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger to provide specialized logging methods.
type Logger struct {
	*slog.Logger
}

// GlobalLogger is the default logger instance for the application.
var GlobalLogger *Logger

func init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	GlobalLogger = &Logger{Logger: slog.New(handler)}
}

// LoggingConfig defines which types of automated logging are enabled.
type LoggingConfig struct {
	EnableAuditLogging bool
}

// Config holds the current logging configuration.
var Config = LoggingConfig{
	EnableAuditLogging: true,
}

// AuditLogger provides structured logging for moderation-relevant writes.
// Rows touched through it leave a trail that can be correlated with the
// request log via user and record IDs.
type AuditLogger struct {
	tableName string
	logger    *Logger
}

// NewAuditLogger creates a new AuditLogger for the given table.
func NewAuditLogger(tableName string) *AuditLogger {
	return &AuditLogger{
		tableName: tableName,
		logger:    GlobalLogger,
	}
}

// LogCreate logs an audited create operation.
func (l *AuditLogger) LogCreate(ctx context.Context, fields map[string]interface{}) {
	if !Config.EnableAuditLogging {
		return
	}
	attrs := []any{
		slog.String("table", l.tableName),
		slog.String("operation", "create"),
	}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.logger.InfoContext(ctx, "audit create", attrs...)
}

// LogUpdate logs an audited update operation.
func (l *AuditLogger) LogUpdate(ctx context.Context, fields map[string]interface{}) {
	if !Config.EnableAuditLogging {
		return
	}
	attrs := []any{
		slog.String("table", l.tableName),
		slog.String("operation", "update"),
	}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.logger.InfoContext(ctx, "audit update", attrs...)
}

// LogError logs a failed audited operation.
func (l *AuditLogger) LogError(ctx context.Context, err error, operation string) {
	if !Config.EnableAuditLogging {
		return
	}
	l.logger.ErrorContext(ctx, "audit error",
		slog.String("table", l.tableName),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}
