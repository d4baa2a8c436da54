package i18n

import "sync"

// Default-instance registry. Intended only for the application's outermost
// composition point; everything else should hold an explicit *Provider.
var (
	defaultMu       sync.RWMutex
	defaultProvider *Provider
)

// SetDefault registers the process-wide default Provider used by the
// package-level convenience functions.
func SetDefault(p *Provider) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultProvider = p
}

// ResetDefault clears the default Provider registry.
func ResetDefault() {
	SetDefault(nil)
}

// Default returns the registered default Provider, or ErrNotInitialized when
// SetDefault has not been called.
func Default() (*Provider, error) {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	if defaultProvider == nil {
		return nil, ErrNotInitialized
	}
	return defaultProvider, nil
}

// T translates a key through the default Provider. Unlike Provider.Translate
// it can fail: the only error it returns is ErrNotInitialized.
func T(key string, opts ...TranslateOption) (string, error) {
	p, err := Default()
	if err != nil {
		return "", err
	}
	return p.Translate(key, opts...), nil
}

// Tn translates a key with pluralization through the default Provider.
func Tn(key string, count int, opts ...TranslateOption) (string, error) {
	p, err := Default()
	if err != nil {
		return "", err
	}
	return p.Pluralize(key, count, opts...), nil
}
