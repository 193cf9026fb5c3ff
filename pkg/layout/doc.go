// Package layout renders locale-aware root element attributes.
//
// This is the pre-render consumption mode: the direction is resolved
// while the markup is being constructed, so the root element's dir
// attribute is correct on first paint and no layout shift can occur.
// For updating an already-rendered root, see the layoutdir.Binder.
package layout
