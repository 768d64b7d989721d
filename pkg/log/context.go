package log

import (
	"context"

	"github.com/rs/zerolog"
)

type loggerKey struct{}

// WithLogger attaches logger to ctx. GinMiddleware does this per request.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// Ctx returns the request-scoped logger, or the process logger when ctx
// carries none.
func Ctx(ctx context.Context) zerolog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(zerolog.Logger); ok {
		return l
	}
	return L()
}

// WithBatch returns a context whose logger stamps every event with the
// batch ID, along with that logger.
func WithBatch(ctx context.Context, batchID string) (context.Context, zerolog.Logger) {
	l := Ctx(ctx).With().Str(FieldBatchID, batchID).Logger()
	return WithLogger(ctx, l), l
}
