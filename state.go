package i18n

import "sync"

// LocaleState tracks the current and fallback locales and fans out a
// zero-argument change signal to subscribers whenever either value actually
// changes. Setting a locale to its current value fires nothing.
//
// Notification is synchronous. A subscriber that mutates the state again
// from inside its callback does not recurse: the extra change is coalesced
// into a single follow-up notification round after the current one finishes.
type LocaleState struct {
	mu       sync.Mutex
	current  Locale
	fallback Locale

	subs   []subscription
	nextID int

	notifying bool
	pending   bool
}

type subscription struct {
	id int
	fn func()
}

// NewLocaleState creates a LocaleState. Zero-value locales default to "en".
func NewLocaleState(current, fallback Locale) *LocaleState {
	if current.IsZero() {
		current = DefaultLocale()
	}
	if fallback.IsZero() {
		fallback = DefaultLocale()
	}
	return &LocaleState{current: current, fallback: fallback}
}

// Locale returns the current locale.
func (s *LocaleState) Locale() Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// FallbackLocale returns the fallback locale.
func (s *LocaleState) FallbackLocale() Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fallback
}

// SetLocale updates the current locale. It reports whether the value changed;
// subscribers are notified only on an actual change.
func (s *LocaleState) SetLocale(locale Locale) bool {
	s.mu.Lock()
	if s.current == locale {
		s.mu.Unlock()
		return false
	}
	s.current = locale
	s.mu.Unlock()

	s.notify()
	return true
}

// SetFallbackLocale updates the fallback locale with the same notification
// semantics as SetLocale.
func (s *LocaleState) SetFallbackLocale(locale Locale) bool {
	s.mu.Lock()
	if s.fallback == locale {
		s.mu.Unlock()
		return false
	}
	s.fallback = locale
	s.mu.Unlock()

	s.notify()
	return true
}

// Subscribe registers a change callback and returns its unsubscribe func.
// Callbacks run synchronously, in registration order.
func (s *LocaleState) Subscribe(fn func()) func() {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *LocaleState) notify() {
	s.mu.Lock()
	if s.notifying {
		// Re-entrant change from inside a callback: coalesce into the
		// follow-up round driven by the outer notify call.
		s.pending = true
		s.mu.Unlock()
		return
	}
	s.notifying = true

	for {
		s.pending = false
		fns := make([]func(), len(s.subs))
		for i, sub := range s.subs {
			fns[i] = sub.fn
		}
		s.mu.Unlock()

		for _, fn := range fns {
			fn()
		}

		s.mu.Lock()
		if !s.pending {
			break
		}
	}

	s.notifying = false
	s.mu.Unlock()
}
