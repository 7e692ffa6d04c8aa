package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan tags ctx with a fresh run id, so every record logged under it can be grouped.
type NewSpan func(ctx context.Context) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context) (context.Context, Span) {
		var args []any
		if v := ctx.Value(SpanKey); v != nil {
			args = append(args, "parent", v.(Span))
		}
		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)
		logger.DebugContext(ctx, "new run", args...)
		return ctx, span
	}
}
