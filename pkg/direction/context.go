package direction

import "context"

type contextKey struct{}

// ToContext returns a context carrying the resolved direction.
func ToContext(ctx context.Context, dir Direction) context.Context {
	return context.WithValue(ctx, contextKey{}, dir)
}

// FromContext extracts the direction stored by ToContext.
// The second return value reports whether one was present and valid.
func FromContext(ctx context.Context) (Direction, bool) {
	dir, ok := ctx.Value(contextKey{}).(Direction)
	if !ok || !dir.Valid() {
		return "", false
	}
	return dir, true
}
