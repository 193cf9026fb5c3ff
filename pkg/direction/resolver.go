package direction

import "sync"

// chain tries resolvers in order and returns the first answer.
type chain struct {
	resolvers    []Resolver
	def          Direction
	hasDef       bool
	resolversSet bool
}

// Option configures the resolver chain built by New.
type Option func(*chain)

// WithResolvers replaces the default chain with the given resolvers,
// tried in order.
func WithResolvers(resolvers ...Resolver) Option {
	return func(c *chain) {
		c.resolvers = resolvers
		c.resolversSet = true
	}
}

// WithDefault converts terminal resolution failures into the given
// direction instead of an error. Use WithDefault(LeftToRight) for the
// web-platform behavior where unrecognized values fall back to
// left-to-right.
func WithDefault(dir Direction) Option {
	return func(c *chain) {
		c.def = dir
		c.hasDef = true
	}
}

// New builds a resolver. Without options this is the script-based
// lookup falling back to the language table, so callers stay agnostic
// to which implementation supplied the answer. The selection happens
// once here, not per call.
func New(opts ...Option) (Resolver, error) {
	c := &chain{}
	for _, opt := range opts {
		opt(c)
	}

	if c.resolversSet && len(c.resolvers) == 0 {
		return nil, ErrNoResolvers
	}
	if len(c.resolvers) == 0 {
		table, err := NewTable()
		if err != nil {
			return nil, err
		}
		c.resolvers = []Resolver{NewTagResolver(), table}
	}

	if c.hasDef && !c.def.Valid() {
		return nil, ErrUnknownDirection
	}

	return c, nil
}

// Resolve tries each resolver in order, returning the first successful
// answer. When all fail it returns the configured default, or the last
// error when no default is set. New guarantees the chain is non-empty.
func (c *chain) Resolve(locale string) (Direction, error) {
	var err error
	for _, r := range c.resolvers {
		var dir Direction
		if dir, err = r.Resolve(locale); err == nil {
			return dir, nil
		}
	}

	if c.hasDef {
		return c.def, nil
	}
	return "", err
}

// defaultResolver is the shared defaulting chain behind Of.
var defaultResolver = sync.OnceValue(func() Resolver {
	r, err := New(WithDefault(LeftToRight))
	if err != nil {
		panic(err) // unreachable: the default chain cannot fail to build
	}
	return r
})

// Of resolves the locale with the default chain, returning LeftToRight
// for anything that cannot be resolved. Use New for the strict policy.
func Of(locale string) Direction {
	dir, err := defaultResolver().Resolve(locale)
	if err != nil {
		return LeftToRight
	}
	return dir
}
