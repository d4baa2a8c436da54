package i18n_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18n"
)

func TestStoreLoadAndLookup(t *testing.T) {
	t.Parallel()

	t.Run("exact match only", func(t *testing.T) {
		t.Parallel()
		store := i18n.NewStore()
		store.Load("en", "", map[string]string{"greeting": "Hello"})

		value, ok := store.Lookup("greeting", "en", "")
		require.True(t, ok)
		require.Equal(t, "Hello", value)

		_, ok = store.Lookup("greeting", "en", "other")
		require.False(t, ok, "no namespace fallback in the store")

		_, ok = store.Lookup("greeting", "de", "")
		require.False(t, ok, "no locale fallback in the store")

		_, ok = store.Lookup("missing", "en", "")
		require.False(t, ok)
	})

	t.Run("load replaces the whole pair", func(t *testing.T) {
		t.Parallel()
		store := i18n.NewStore()
		store.Load("en", "errors", map[string]string{"a": "1", "b": "2"})
		store.Load("en", "errors", map[string]string{"b": "3"})

		_, ok := store.Lookup("a", "en", "errors")
		require.False(t, ok, "previous content must not be merged")

		value, ok := store.Lookup("b", "en", "errors")
		require.True(t, ok)
		require.Equal(t, "3", value)
	})

	t.Run("load does not alias the caller's map", func(t *testing.T) {
		t.Parallel()
		entries := map[string]string{"a": "1"}
		store := i18n.NewStore()
		store.Load("en", "", entries)
		entries["a"] = "mutated"

		value, ok := store.Lookup("a", "en", "")
		require.True(t, ok)
		require.Equal(t, "1", value)
	})
}

func TestStoreLocales(t *testing.T) {
	t.Parallel()

	t.Run("first-load order without duplicates", func(t *testing.T) {
		t.Parallel()
		store := i18n.NewStore()
		store.Load("de", "", map[string]string{"a": "1"})
		store.Load("en", "", map[string]string{"a": "1"})
		store.Load("de", "errors", map[string]string{"a": "1"})
		store.Load("fr", "", nil)

		require.Equal(t, []string{"de", "en", "fr"}, store.Locales())
	})

	t.Run("empty store has no locales", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, i18n.NewStore().Locales())
	})
}

func TestStoreClear(t *testing.T) {
	t.Parallel()

	store := i18n.NewStore()
	store.Load("en", "", map[string]string{"greeting": "Hello"})
	store.Load("de", "errors", map[string]string{"not_found": "Nicht gefunden"})

	store.Clear()

	_, ok := store.Lookup("greeting", "en", "")
	require.False(t, ok)
	_, ok = store.Lookup("not_found", "de", "errors")
	require.False(t, ok)
	require.Empty(t, store.Locales())

	// Reload works after clear.
	store.Load("en", "", map[string]string{"greeting": "Hello again"})
	value, ok := store.Lookup("greeting", "en", "")
	require.True(t, ok)
	require.Equal(t, "Hello again", value)
}

func TestStoreConcurrentLoad(t *testing.T) {
	t.Parallel()

	store := i18n.NewStore()
	locales := []string{"en", "de", "fr", "pl", "ja"}
	namespaces := []string{"", "errors", "fields", "validation"}

	var wg sync.WaitGroup
	for _, locale := range locales {
		for _, namespace := range namespaces {
			locale, namespace := locale, namespace
			wg.Add(1)
			go func() {
				defer wg.Done()
				store.Load(locale, namespace, map[string]string{
					"key": fmt.Sprintf("%s/%s", locale, namespace),
				})
			}()
		}
	}
	wg.Wait()

	for _, locale := range locales {
		for _, namespace := range namespaces {
			value, ok := store.Lookup("key", locale, namespace)
			require.True(t, ok)
			require.Equal(t, fmt.Sprintf("%s/%s", locale, namespace), value)
		}
	}
	require.ElementsMatch(t, locales, store.Locales())
}
