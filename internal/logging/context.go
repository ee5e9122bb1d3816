package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type contextKey struct{}

// WithLogger attaches logger to ctx. A nil ctx is treated as Background.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger attached to ctx, falling back to Default.
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if logger, _ := ctx.Value(contextKey{}).(*log.Logger); logger != nil {
			return logger
		}
	}
	return Default()
}

// ForFile returns the context logger with the path field set, for messages
// about one source file.
func ForFile(ctx context.Context, path string) *log.Logger {
	return FromContext(ctx).With(FieldPath, path)
}
