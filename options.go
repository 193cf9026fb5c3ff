package layoutdir

import (
	"log/slog"

	"github.com/dmitrymomot/layoutdir/pkg/direction"
)

// Option configures a Binder.
type Option func(*Binder)

// WithResolver sets the direction resolver.
// Defaults to the standard chain with a left-to-right fallback.
// Pass a strict resolver (direction.New without WithDefault) to keep
// the root untouched on unresolvable locales.
func WithResolver(r direction.Resolver) Option {
	return func(b *Binder) {
		if r != nil {
			b.resolver = r
		}
	}
}

// WithLogger sets the logger for resolution failures.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(b *Binder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithLangAttribute controls whether the binder also maintains the
// root's lang attribute alongside dir. Enabled by default.
func WithLangAttribute(enabled bool) Option {
	return func(b *Binder) {
		b.setLang = enabled
	}
}
