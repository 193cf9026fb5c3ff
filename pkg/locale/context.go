package locale

import "context"

type contextKey struct{}

// ToContext returns a context carrying the active locale.
func ToContext(ctx context.Context, loc Locale) context.Context {
	return context.WithValue(ctx, contextKey{}, loc)
}

// FromContext extracts the locale stored by ToContext.
// The second return value reports whether a non-empty one was present.
func FromContext(ctx context.Context) (Locale, bool) {
	loc, ok := ctx.Value(contextKey{}).(Locale)
	if !ok || loc.IsZero() {
		return "", false
	}
	return loc, true
}
