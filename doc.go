// Package layoutdir keeps a document's text direction in sync with its
// locale.
//
// The library does one thing — map a BCP-47 locale identifier to "ltr"
// or "rtl" — and offers it in the two places a web application needs it:
//
//   - At render time, via pkg/layout, so the root element's dir
//     attribute is correct before first paint and no layout shift
//     occurs.
//   - After render, via [Bind], which subscribes to a locale.Store and
//     imperatively updates a live [Root] whenever the locale changes.
//     This mode is simpler to retrofit but shows the default direction
//     until the first application runs.
//
// Resolution itself lives in pkg/direction: a script-database lookup
// with a table-based drop-in substitute, selected once at construction.
// HTTP applications plug in middlewares.Direction to negotiate the
// request locale and carry locale and direction through the context.
//
// # Reactive usage
//
//	store := locale.NewStore("en")
//	root := layoutdir.NewDocumentRoot()
//
//	binder, err := layoutdir.Bind(root, store)
//	if err != nil {
//		return err
//	}
//	defer binder.Unbind()
//
//	store.Set("ar") // root now has dir="rtl" lang="ar"
//
// # Render-time usage
//
//	page := layout.Root(loc, nil, body)
//	_ = page.Render(ctx, w) // <html lang="ar" dir="rtl">...</html>
package layoutdir
