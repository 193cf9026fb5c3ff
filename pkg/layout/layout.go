package layout

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/dmitrymomot/layoutdir/pkg/direction"
	"github.com/dmitrymomot/layoutdir/pkg/locale"
)

// Component is the interface for renderable markup fragments.
// Compatible with templ.Component.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// ComponentFunc adapts a function to the Component interface.
type ComponentFunc func(ctx context.Context, w io.Writer) error

// Render calls f(ctx, w).
func (f ComponentFunc) Render(ctx context.Context, w io.Writer) error {
	return f(ctx, w)
}

// Attrs computes the root element attributes for a locale: "lang" with
// the tag itself and "dir" with its resolved direction. A nil resolver
// uses the package default, which falls back to left-to-right when the
// locale cannot be resolved.
func Attrs(loc locale.Locale, resolver direction.Resolver) map[string]string {
	return map[string]string{
		"lang": loc.String(),
		"dir":  Dir(loc, resolver).String(),
	}
}

// Dir resolves the direction for the locale, defaulting to left-to-right
// on resolution failure. A nil resolver uses the package default.
func Dir(loc locale.Locale, resolver direction.Resolver) direction.Direction {
	if resolver == nil {
		return direction.Of(loc.String())
	}
	dir, err := resolver.Resolve(loc.String())
	if err != nil || !dir.Valid() {
		return direction.LeftToRight
	}
	return dir
}

// Root wraps body in an <html> element whose lang and dir attributes are
// fixed at construction time, so the first byte written already carries
// the correct direction and no intermediate value is ever observable.
func Root(loc locale.Locale, resolver direction.Resolver, body Component) Component {
	lang := html.EscapeString(loc.String())
	dir := Dir(loc, resolver)

	return ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<html lang="%s" dir="%s">`, lang, dir); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</html>")
		return err
	})
}
