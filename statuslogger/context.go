package statuslogger

import (
	"context"
)

type contextKey struct{}

// NewContext derives a Context that carries sl from ctx.
func NewContext(ctx context.Context, sl StatusLine) context.Context {
	return context.WithValue(ctx, contextKey{}, sl)
}

// FromContext returns the StatusLine ctx carries. It panics in case ctx carries
// no StatusLine.
func FromContext(ctx context.Context) StatusLine {
	return ctx.Value(contextKey{}).(StatusLine)
}

// FromContextOptional returns the StatusLine ctx carries if any, or nil.
func FromContextOptional(ctx context.Context) StatusLine {
	sl, _ := ctx.Value(contextKey{}).(StatusLine)
	return sl
}

// Log into the StatusLine ctx carries. Panics if ctx doesn't contain a StatusLine.
func Log(ctx context.Context, s string) {
	FromContext(ctx).Log(s)
}

func Logf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Logf(format, args...)
}

func LogStatus(ctx context.Context, s Status, str string) {
	FromContext(ctx).LogStatus(s, str)
}

func LogfStatus(ctx context.Context, s Status, format string, args ...any) {
	FromContext(ctx).LogfStatus(s, format, args...)
}

// Failed marks the StatusLine ctx carries as failed with the first line of
// err. It does nothing if ctx carries no StatusLine.
func Failed(ctx context.Context, err error) {
	if sl := FromContextOptional(ctx); sl != nil {
		sl.Failed(err)
	}
}
