package outbound

import "context"

type LoggerPort interface {
	Info(msg string)
	InfoWithFields(msg string, fields map[string]interface{})
	Error(err error, msg string)
	ErrorWithFields(err error, msg string, fields map[string]interface{})
	Debug(msg string)
	DebugWithFields(msg string, fields map[string]interface{})
	Warn(msg string)
	WarnWithFields(msg string, fields map[string]interface{})
	// With returns a logger that adds fields to every entry.
	With(fields map[string]interface{}) LoggerPort
}

type loggerContextKey struct{}

// ContextWithLogger attaches a request-scoped logger to ctx.
func ContextWithLogger(ctx context.Context, logger LoggerPort) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// LoggerFromContext returns the logger attached to ctx, or fallback.
func LoggerFromContext(ctx context.Context, fallback LoggerPort) LoggerPort {
	if logger, ok := ctx.Value(loggerContextKey{}).(LoggerPort); ok && logger != nil {
		return logger
	}
	return fallback
}
