package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/layoutdir/middlewares"
	"github.com/dmitrymomot/layoutdir/pkg/direction"
	"github.com/dmitrymomot/layoutdir/pkg/locale"
)

// serve runs a request through the middleware and captures what the
// handler saw in its context.
func serve(t *testing.T, mw func(http.Handler) http.Handler, r *http.Request) (locale.Locale, direction.Direction, *httptest.ResponseRecorder) {
	t.Helper()

	var gotLocale locale.Locale
	var gotDir direction.Direction
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLocale = middlewares.GetLocale(r.Context())
		gotDir = middlewares.GetDirection(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return gotLocale, gotDir, w
}

func TestDirectionMiddleware(t *testing.T) {
	t.Parallel()

	mw := middlewares.Direction(middlewares.WithSupported("en", "ar", "he"))

	t.Run("accept-language negotiation", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", "ar-EG,ar;q=0.9,en;q=0.5")

		loc, dir, w := serve(t, mw, r)
		require.Equal(t, locale.Locale("ar"), loc)
		require.Equal(t, direction.RightToLeft, dir)
		require.Equal(t, "ar", w.Header().Get("Content-Language"))
	})

	t.Run("query parameter wins over header", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/?lang=he", nil)
		r.Header.Set("Accept-Language", "en-US,en;q=0.9")

		loc, dir, _ := serve(t, mw, r)
		require.Equal(t, locale.Locale("he"), loc)
		require.Equal(t, direction.RightToLeft, dir)
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "lang", Value: "ar"})
		r.Header.Set("Accept-Language", "en")

		loc, _, _ := serve(t, mw, r)
		require.Equal(t, locale.Locale("ar"), loc)
	})

	t.Run("no signal falls back to first supported", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		loc, dir, w := serve(t, mw, r)
		require.Equal(t, locale.Locale("en"), loc)
		require.Equal(t, direction.LeftToRight, dir)
		require.Equal(t, "en", w.Header().Get("Content-Language"))
	})

	t.Run("unsupported locale falls back to first supported", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/?lang=ja", nil)

		loc, _, _ := serve(t, mw, r)
		require.Equal(t, locale.Locale("en"), loc)
	})
}

func TestDirectionMiddlewareCustomSources(t *testing.T) {
	t.Parallel()

	mw := middlewares.Direction(
		middlewares.WithSupported("en", "fa"),
		middlewares.WithSources(middlewares.FromQuery("locale")),
	)

	r := httptest.NewRequest(http.MethodGet, "/?locale=fa", nil)
	r.Header.Set("Accept-Language", "en") // ignored: not in the source chain

	loc, dir, _ := serve(t, mw, r)
	require.Equal(t, locale.Locale("fa"), loc)
	require.Equal(t, direction.RightToLeft, dir)
}

func TestDirectionMiddlewareCustomResolver(t *testing.T) {
	t.Parallel()

	everythingRTL := direction.ResolverFunc(func(string) (direction.Direction, error) {
		return direction.RightToLeft, nil
	})

	mw := middlewares.Direction(
		middlewares.WithSupported("en"),
		middlewares.WithDirectionResolver(everythingRTL),
	)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, dir, _ := serve(t, mw, r)
	require.Equal(t, direction.RightToLeft, dir)
}

func TestDirectionMiddlewareResolverFailureDefaultsLTR(t *testing.T) {
	t.Parallel()

	failing := direction.ResolverFunc(func(string) (direction.Direction, error) {
		return "", direction.ErrUnknownDirection
	})

	mw := middlewares.Direction(
		middlewares.WithSupported("ar"),
		middlewares.WithDirectionResolver(failing),
	)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	loc, dir, _ := serve(t, mw, r)
	require.Equal(t, locale.Locale("ar"), loc)
	require.Equal(t, direction.LeftToRight, dir)
}

func TestHelpersWithoutMiddleware(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Equal(t, locale.Locale(""), middlewares.GetLocale(r.Context()))
	require.Equal(t, direction.LeftToRight, middlewares.GetDirection(r.Context()))
}
