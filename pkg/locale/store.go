package locale

import (
	"slices"
	"sync"
)

// Store holds the application's current locale and notifies subscribers
// when it changes. It is the reactive counterpart to a render-time
// parameter: one logical writer calls Set, any number of observers
// subscribe.
//
// Subscribers run synchronously on the Set caller's goroutine, outside
// the store's lock, in subscription order. A Set with the current value
// is a no-op, so each effective change notifies exactly once.
type Store struct {
	mu      sync.Mutex
	current Locale
	subs    map[int]func(Locale)
	nextID  int
}

// NewStore creates a store with the given initial locale.
// The initial value does not notify anyone.
func NewStore(initial Locale) *Store {
	return &Store{
		current: initial,
		subs:    make(map[int]func(Locale)),
	}
}

// Current returns the locale as of the last Set.
func (s *Store) Current() Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set updates the current locale and notifies subscribers.
// Setting the already-current value does nothing.
func (s *Store) Set(loc Locale) {
	s.mu.Lock()
	if loc == s.current {
		s.mu.Unlock()
		return
	}
	s.current = loc

	// Snapshot under the lock; notify outside it so subscribers may
	// call back into the store.
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(Locale), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(loc)
	}
}

// Subscribe registers fn to run after every locale change. It returns
// an unsubscribe function that is safe to call more than once.
// Subscribing does not invoke fn with the current value; callers that
// need an initial application read Current themselves.
func (s *Store) Subscribe(fn func(Locale)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
