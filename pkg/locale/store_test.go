package locale_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/layoutdir/pkg/locale"
)

func TestStoreCurrent(t *testing.T) {
	t.Parallel()

	store := locale.NewStore("en")
	require.Equal(t, locale.Locale("en"), store.Current())

	store.Set("ar")
	require.Equal(t, locale.Locale("ar"), store.Current())
}

func TestStoreNotifiesOncePerChange(t *testing.T) {
	t.Parallel()

	store := locale.NewStore("en")

	var got []locale.Locale
	store.Subscribe(func(loc locale.Locale) {
		got = append(got, loc)
	})

	store.Set("ar")
	store.Set("ar") // no-op, already current
	store.Set("he")
	store.Set("en")

	require.Equal(t, []locale.Locale{"ar", "he", "en"}, got)
}

func TestStoreSubscribeDoesNotReplay(t *testing.T) {
	t.Parallel()

	store := locale.NewStore("ar")

	called := false
	store.Subscribe(func(locale.Locale) { called = true })
	require.False(t, called, "subscribing must not invoke the callback with the current value")
}

func TestStoreUnsubscribe(t *testing.T) {
	t.Parallel()

	store := locale.NewStore("en")

	var count int
	unsubscribe := store.Subscribe(func(locale.Locale) { count++ })

	store.Set("ar")
	unsubscribe()
	unsubscribe() // safe to call twice
	store.Set("he")

	require.Equal(t, 1, count)
}

func TestStoreMultipleSubscribers(t *testing.T) {
	t.Parallel()

	store := locale.NewStore("en")

	var order []string
	store.Subscribe(func(locale.Locale) { order = append(order, "first") })
	store.Subscribe(func(locale.Locale) { order = append(order, "second") })

	store.Set("ar")
	require.Equal(t, []string{"first", "second"}, order)
}

func TestStoreNilSubscriber(t *testing.T) {
	t.Parallel()

	store := locale.NewStore("en")
	unsubscribe := store.Subscribe(nil)
	require.NotPanics(t, func() {
		store.Set("ar")
		unsubscribe()
	})
}

func TestStoreSubscriberMayReadStore(t *testing.T) {
	t.Parallel()

	store := locale.NewStore("en")

	var seen locale.Locale
	store.Subscribe(func(locale.Locale) {
		seen = store.Current() // must not deadlock
	})

	store.Set("ar")
	require.Equal(t, locale.Locale("ar"), seen)
}

func TestStoreConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := locale.NewStore("en")
	store.Subscribe(func(locale.Locale) {})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				store.Set("ar")
			} else {
				_ = store.Current()
			}
		}(i)
	}
	wg.Wait()
}
