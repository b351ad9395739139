package vislog

import "context"

type contextKey struct{}

// NewContext derives a context that carries l from ctx.
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the Logger ctx carries. It panics in case ctx carries
// no Logger.
func FromContext(ctx context.Context) *Logger {
	return ctx.Value(contextKey{}).(*Logger)
}

// FromContextOptional returns the Logger ctx carries if any, or nil.
func FromContextOptional(ctx context.Context) *Logger {
	l, _ := ctx.Value(contextKey{}).(*Logger)
	return l
}
