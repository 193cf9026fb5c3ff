package middlewares

import (
	"context"

	"github.com/dmitrymomot/layoutdir/pkg/direction"
	"github.com/dmitrymomot/layoutdir/pkg/locale"
)

// GetLocale extracts the negotiated locale from the context.
// Returns "" if the Direction middleware is not used.
func GetLocale(ctx context.Context) locale.Locale {
	loc, ok := locale.FromContext(ctx)
	if !ok {
		return ""
	}
	return loc
}

// GetDirection extracts the resolved direction from the context.
// Returns LeftToRight if the Direction middleware is not used.
func GetDirection(ctx context.Context) direction.Direction {
	dir, ok := direction.FromContext(ctx)
	if !ok {
		return direction.LeftToRight
	}
	return dir
}
