package layoutdir

import (
	"maps"
	"sync"
)

// DocumentRoot is an in-memory Root: a thread-safe attribute map that
// stands in for the rendered document's top-level element. Useful for
// server-held document state and tests; real integrations implement
// Root against their own document representation.
type DocumentRoot struct {
	mu    sync.RWMutex
	attrs map[string]string
}

// NewDocumentRoot creates an empty document root.
func NewDocumentRoot() *DocumentRoot {
	return &DocumentRoot{attrs: make(map[string]string)}
}

// SetAttribute sets an attribute value. Writing the current value again
// is a no-op.
func (r *DocumentRoot) SetAttribute(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attrs[name] = value
}

// Attribute returns the attribute value, or "" when unset.
func (r *DocumentRoot) Attribute(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.attrs[name]
}

// Attributes returns a copy of all attributes.
func (r *DocumentRoot) Attributes() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.attrs)
}
