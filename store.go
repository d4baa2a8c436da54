package i18n

import (
	"maps"
	"sync"
)

// Store holds raw translation strings keyed by (locale, namespace, key).
// It performs no I/O and no fallback logic: Lookup is exact-match only,
// fallback chains belong to the Provider.
//
// Load fully replaces the entry set of its (locale, namespace) pair, so
// concurrent loads targeting distinct pairs never interleave within a pair.
type Store struct {
	mu sync.RWMutex

	// entries maps "locale:namespace" to that pair's key/value set.
	entries map[string]map[string]string

	// locales preserves first-load order without duplicates.
	locales []string
	seen    map[string]bool
}

// NewStore creates an empty translation store.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]map[string]string),
		seen:    make(map[string]bool),
	}
}

// Load replaces all entries for the (locale, namespace) pair with the given
// set. It does not merge with previously loaded content for that pair.
// The locale is recorded as known even when entries is empty.
func (s *Store) Load(locale, namespace string, entries map[string]string) {
	copied := make(map[string]string, len(entries))
	maps.Copy(copied, entries)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[pairKey(locale, namespace)] = copied

	if !s.seen[locale] {
		s.seen[locale] = true
		s.locales = append(s.locales, locale)
	}
}

// Lookup returns the raw string for the exact (locale, namespace, key) triple.
func (s *Store) Lookup(key, locale, namespace string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pair, ok := s.entries[pairKey(locale, namespace)]
	if !ok {
		return "", false
	}
	value, ok := pair[key]
	return value, ok
}

// Clear drops all entries and the list of known locales.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]map[string]string)
	s.locales = nil
	s.seen = make(map[string]bool)
}

// Locales returns every locale that has had at least one Load call,
// in first-load order.
func (s *Store) Locales() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.locales))
	copy(out, s.locales)
	return out
}

func pairKey(locale, namespace string) string {
	return locale + ":" + namespace
}
