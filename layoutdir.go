package layoutdir

import (
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/layoutdir/pkg/direction"
	"github.com/dmitrymomot/layoutdir/pkg/locale"
)

var (
	ErrNilRoot  = errors.New("layoutdir: root cannot be nil")
	ErrNilStore = errors.New("layoutdir: store cannot be nil")
)

// Root is the single top-level node of a rendered document. Its
// attributes apply document-wide. Implementations must tolerate
// repeated writes of the same value.
type Root interface {
	SetAttribute(name, value string)
}

// Binder applies locale-derived attributes to a live document root.
//
// This is the post-render reactive mode: Bind subscribes to the store
// and applies once immediately, then re-applies after every locale
// change. Anything painted before the first application carries
// whatever direction the root started with — the documented flash of
// this mode. Use pkg/layout to fix the direction at render time when
// that flash is unacceptable.
type Binder struct {
	root     Root
	store    *locale.Store
	resolver direction.Resolver
	logger   *slog.Logger
	setLang  bool

	mu          sync.Mutex
	lastDir     direction.Direction
	unsubscribe func()
}

// Bind wires the store's current locale to the root's dir (and lang)
// attributes and keeps them in sync until Unbind is called.
func Bind(root Root, store *locale.Store, opts ...Option) (*Binder, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	if store == nil {
		return nil, ErrNilStore
	}

	b := &Binder{
		root:    root,
		store:   store,
		setLang: true,
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.resolver == nil {
		resolver, err := direction.New(direction.WithDefault(direction.LeftToRight))
		if err != nil {
			return nil, err
		}
		b.resolver = resolver
	}
	if b.logger == nil {
		b.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	b.unsubscribe = store.Subscribe(b.apply)
	b.apply(store.Current())

	return b, nil
}

// Unbind releases the store subscription. The root keeps its last
// applied attributes. Safe to call more than once.
func (b *Binder) Unbind() {
	b.mu.Lock()
	unsubscribe := b.unsubscribe
	b.unsubscribe = nil
	b.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// apply resolves the locale and mutates the root attributes. The dir
// write is skipped when the resolved direction is unchanged; lang
// always follows the locale. On resolution failure the root is left
// untouched.
func (b *Binder) apply(loc locale.Locale) {
	dir, err := b.resolver.Resolve(loc.String())
	if err != nil || !dir.Valid() {
		b.logger.Warn("layoutdir: direction resolution failed, root left unchanged",
			slog.String("locale", loc.String()),
			slog.Any("error", err),
		)
		return
	}

	b.mu.Lock()
	changed := dir != b.lastDir
	b.lastDir = dir
	b.mu.Unlock()

	if changed {
		b.root.SetAttribute("dir", dir.String())
	}
	if b.setLang {
		b.root.SetAttribute("lang", loc.String())
	}
}
