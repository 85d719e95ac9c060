package logging

import (
	"context"

	"go.uber.org/zap"
)

type requestIDKey struct{}

// WithRequestID stores the request id used to correlate log lines.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger provides operation-scoped logging for a single request.
type Logger struct {
	requestID string
	sugar     *zap.SugaredLogger
}

// FromContext creates a logger bound to the request id carried by ctx.
// It writes through zap's global logger, installed with zap.ReplaceGlobals.
func FromContext(ctx context.Context) *Logger {
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{
		requestID: requestID,
		sugar:     zap.S().With("request_id", requestID),
	}
}

// RequestID returns the request id the logger is bound to.
func (l *Logger) RequestID() string {
	return l.requestID
}

func (l *Logger) LogError(operation string, err error) {
	l.sugar.Errorw("operation failed", "operation", operation, "error", err)
}

func (l *Logger) LogErrorf(operation string, format string, args ...interface{}) {
	l.sugar.With("operation", operation).Errorf(format, args...)
}

func (l *Logger) LogInfo(operation string, message string) {
	l.sugar.Infow(message, "operation", operation)
}

func (l *Logger) LogInfof(operation string, format string, args ...interface{}) {
	l.sugar.With("operation", operation).Infof(format, args...)
}

func (l *Logger) LogWarn(operation string, message string) {
	l.sugar.Warnw(message, "operation", operation)
}

func (l *Logger) LogWarnf(operation string, format string, args ...interface{}) {
	l.sugar.With("operation", operation).Warnf(format, args...)
}
