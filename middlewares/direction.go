package middlewares

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/layoutdir/pkg/direction"
	"github.com/dmitrymomot/layoutdir/pkg/locale"
)

// Source extracts a locale candidate from the request.
// Returns the value and true if found, or ("", false) if not present.
type Source func(r *http.Request) (string, bool)

// FromQuery returns a source that reads from a query parameter.
func FromQuery(name string) Source {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		if v == "" {
			return "", false
		}
		return v, true
	}
}

// FromCookie returns a source that reads from a plain cookie.
func FromCookie(name string) Source {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// FromAcceptLanguage returns a source that reads the Accept-Language
// header. The raw header is handed to the negotiator as-is; quality
// values are honored there.
func FromAcceptLanguage() Source {
	return func(r *http.Request) (string, bool) {
		v := r.Header.Get("Accept-Language")
		if v == "" {
			return "", false
		}
		return v, true
	}
}

// DirectionConfig configures the Direction middleware.
type DirectionConfig struct {
	Supported  []locale.Locale
	Resolver   direction.Resolver
	Sources    []Source
	Logger     *slog.Logger
	sourcesSet bool
}

// DirectionOption configures DirectionConfig.
type DirectionOption func(*DirectionConfig)

// WithSupported sets the locales the application renders. The first one
// is the default when nothing matches. Defaults to ["en"].
func WithSupported(locales ...locale.Locale) DirectionOption {
	return func(cfg *DirectionConfig) {
		if len(locales) > 0 {
			cfg.Supported = locales
		}
	}
}

// WithDirectionResolver sets the resolver. Defaults to the standard
// chain with a left-to-right fallback.
func WithDirectionResolver(r direction.Resolver) DirectionOption {
	return func(cfg *DirectionConfig) {
		if r != nil {
			cfg.Resolver = r
		}
	}
}

// WithSources sets a custom locale source chain, tried in order of
// decreasing precedence.
func WithSources(sources ...Source) DirectionOption {
	return func(cfg *DirectionConfig) {
		cfg.Sources = sources
		cfg.sourcesSet = true
	}
}

// WithDirectionLogger sets the logger for resolution failures.
func WithDirectionLogger(l *slog.Logger) DirectionOption {
	return func(cfg *DirectionConfig) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// Direction returns middleware that negotiates the request locale,
// resolves its text direction, stores both in the request context, and
// sets the Content-Language response header. Handlers read them back
// with locale.FromContext and direction.FromContext (or the GetLocale /
// GetDirection helpers) to stamp the root element's lang and dir
// attributes during rendering.
func Direction(opts ...DirectionOption) func(http.Handler) http.Handler {
	cfg := &DirectionConfig{
		Supported: []locale.Locale{"en"},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// Default source chain: query → cookie → accept-language.
	if !cfg.sourcesSet {
		cfg.Sources = []Source{
			FromQuery("lang"),
			FromCookie("lang"),
			FromAcceptLanguage(),
		}
	}

	if cfg.Resolver == nil {
		resolver, err := direction.New(direction.WithDefault(direction.LeftToRight))
		if err != nil {
			// The default chain builds from static data; a failure here
			// is a programming error.
			panic(err)
		}
		cfg.Resolver = resolver
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var requested []string
			for _, src := range cfg.Sources {
				if v, ok := src(r); ok {
					requested = append(requested, v)
				}
			}

			loc := locale.Match(cfg.Supported, requested...)
			if loc.IsZero() {
				loc = cfg.Supported[0]
			}

			dir, err := cfg.Resolver.Resolve(loc.String())
			if err != nil || !dir.Valid() {
				cfg.Logger.WarnContext(r.Context(), "middlewares: direction resolution failed",
					slog.String("locale", loc.String()),
					slog.Any("error", err),
				)
				dir = direction.LeftToRight
			}

			w.Header().Set("Content-Language", loc.String())

			ctx := locale.ToContext(r.Context(), loc)
			ctx = direction.ToContext(ctx, dir)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
