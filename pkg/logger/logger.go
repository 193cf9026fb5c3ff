package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/layoutdir/pkg/direction"
	"github.com/dmitrymomot/layoutdir/pkg/locale"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// New creates a JSON-formatted logger with optional context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(NewHandler(h, extractors...))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LocaleExtractor injects the request locale, when one is carried by
// the context (see locale.ToContext and middlewares.Direction).
func LocaleExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		loc, ok := locale.FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.String("locale", loc.String()), true
	}
}

// DirectionExtractor injects the resolved text direction, when one is
// carried by the context.
func DirectionExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		dir, ok := direction.FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.String("dir", dir.String()), true
	}
}
