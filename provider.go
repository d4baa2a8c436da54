package i18n

import (
	"context"
	"fmt"
	"io/fs"
	"maps"
)

// FieldsNamespace is the default namespace used by Field.
const FieldsNamespace = "fields"

// Provider resolves translation keys to display strings. It orchestrates the
// Store lookup with namespace and locale fallback, pluralization, and
// parameter replacement.
//
// Resolution never fails: a key missing from every fallback tier resolves to
// the key itself, so UI rendering stays robust against incomplete data.
type Provider struct {
	store    *Store
	replacer *Replacer
	state    *LocaleState

	// Optional handler called when a key is not found in any fallback tier.
	// Useful for detecting untranslated keys during development.
	missingKeyHandler func(locale, namespace, key string)
}

// Option configures the Provider during construction.
type Option func(*Provider) error

// New creates a Provider with the given options.
// Unless overridden, it starts with an empty Store, no custom replacers,
// and both the active and fallback locale set to "en".
func New(opts ...Option) (*Provider, error) {
	p := &Provider{
		store:    NewStore(),
		replacer: NewReplacer(),
		state:    NewLocaleState(Locale{}, Locale{}),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return p, nil
}

// WithStore shares an externally constructed Store, e.g. one fed by a Loader.
// Must precede options that load translations.
func WithStore(store *Store) Option {
	return func(p *Provider) error {
		if store == nil {
			return ErrNilStore
		}
		p.store = store
		return nil
	}
}

// WithLocaleState shares an externally constructed LocaleState so that UI
// code observing locale changes and the Provider stay synchronized.
func WithLocaleState(state *LocaleState) Option {
	return func(p *Provider) error {
		if state == nil {
			p.state = NewLocaleState(Locale{}, Locale{})
			return nil
		}
		p.state = state
		return nil
	}
}

// WithActiveLocale sets the initially active locale.
func WithActiveLocale(code string) Option {
	return func(p *Provider) error {
		loc, err := ParseLocale(code)
		if err != nil {
			return err
		}
		p.state.SetLocale(loc)
		return nil
	}
}

// WithFallbackLocale sets the fallback locale consulted when the active
// locale has no translation for a key.
func WithFallbackLocale(code string) Option {
	return func(p *Provider) error {
		loc, err := ParseLocale(code)
		if err != nil {
			return err
		}
		p.state.SetFallbackLocale(loc)
		return nil
	}
}

// WithTranslations loads translations for a locale and namespace at
// construction time. The map can be nested; it is flattened to dot-notation
// keys internally. Use namespace "" for the global namespace.
func WithTranslations(locale, namespace string, translations map[string]any) Option {
	return func(p *Provider) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		p.store.Load(canonicalLocaleCode(locale), namespace, flattenEntries(translations, ""))
		return nil
	}
}

// WithTranslationsFS loads all translation files found in fsys at
// construction time. See Loader for the expected layout.
func WithTranslationsFS(fsys fs.FS) Option {
	return func(p *Provider) error {
		return NewLoader(p.store, fsys).Initialize(context.Background())
	}
}

// WithReplacerFunc registers a custom parameter replacer hook.
func WithReplacerFunc(fn ReplacerFunc) Option {
	return func(p *Provider) error {
		if fn == nil {
			return ErrNilReplacer
		}
		p.replacer.Add(fn)
		return nil
	}
}

// WithMissingKeyHandler sets a handler invoked whenever a key resolves to
// itself because no translation was found in any fallback tier.
func WithMissingKeyHandler(handler func(locale, namespace, key string)) Option {
	return func(p *Provider) error {
		p.missingKeyHandler = handler
		return nil
	}
}

// translateCall carries the per-call overrides of a resolution request.
type translateCall struct {
	locale    string
	namespace string
	params    M
}

// TranslateOption overrides the locale, namespace, or parameters of a single
// translation call.
type TranslateOption func(*translateCall)

// WithLocale resolves the call against the given locale instead of the
// currently active one.
func WithLocale(code string) TranslateOption {
	return func(c *translateCall) {
		if code != "" {
			c.locale = canonicalLocaleCode(code)
		}
	}
}

// WithNamespace resolves the call against the given namespace instead of the
// global one.
func WithNamespace(namespace string) TranslateOption {
	return func(c *translateCall) {
		c.namespace = namespace
	}
}

// WithParams supplies parameters for placeholder substitution. Repeated use
// merges the maps, later values winning.
func WithParams(params M) TranslateOption {
	return func(c *translateCall) {
		if len(params) == 0 {
			return
		}
		if c.params == nil {
			c.params = make(M, len(params))
		}
		maps.Copy(c.params, params)
	}
}

// Translate resolves key to its translated string. The lookup tries the
// effective (locale, namespace) pair, then the locale's global namespace,
// then both again for the fallback locale. If nothing is found the key
// itself is returned. Parameters, when given, are substituted into the
// result.
func (p *Provider) Translate(key string, opts ...TranslateOption) string {
	call := p.newCall(opts...)

	raw, ok := p.lookupChain(key, call.locale, call.namespace)
	if !ok {
		p.reportMissing(call.locale, call.namespace, key)
		raw = key
	}

	if len(call.params) > 0 {
		raw = p.replacer.Substitute(raw, call.params)
	}
	return raw
}

// Pluralize resolves key like Translate, selects the plural form of the raw
// message for count, and substitutes parameters with count injected as the
// :count parameter. An explicit "count" parameter is overridden by count.
func (p *Provider) Pluralize(key string, count int, opts ...TranslateOption) string {
	call := p.newCall(opts...)

	raw, ok := p.lookupChain(key, call.locale, call.namespace)
	if !ok {
		p.reportMissing(call.locale, call.namespace, key)
		raw = key
	}

	raw = PluralForm(raw, count)

	params := make(M, len(call.params)+1)
	maps.Copy(params, call.params)
	params["count"] = count

	return p.replacer.Substitute(raw, params)
}

// Field translates key in the "fields" namespace unless WithNamespace
// overrides it. Sugar for form-label lookups.
func (p *Provider) Field(key string, opts ...TranslateOption) string {
	return p.Translate(key, append([]TranslateOption{WithNamespace(FieldsNamespace)}, opts...)...)
}

// Exists reports whether key has a raw translation in any fallback tier.
// Unlike Translate it never falls back to the key itself.
func (p *Provider) Exists(key string, opts ...TranslateOption) bool {
	call := p.newCall(opts...)
	_, ok := p.lookupChain(key, call.locale, call.namespace)
	return ok
}

// Get returns the raw, unsubstituted translation for key using the same
// lookup chain as Exists.
func (p *Provider) Get(key string, opts ...TranslateOption) (string, bool) {
	call := p.newCall(opts...)
	return p.lookupChain(key, call.locale, call.namespace)
}

// SetLocale changes the active locale. An unparseable code keeps the
// previous locale and returns the parse error.
func (p *Provider) SetLocale(code string) error {
	loc, err := ParseLocale(code)
	if err != nil {
		return err
	}
	p.state.SetLocale(loc)
	return nil
}

// SetFallbackLocale changes the fallback locale with the same validation as
// SetLocale.
func (p *Provider) SetFallbackLocale(code string) error {
	loc, err := ParseLocale(code)
	if err != nil {
		return err
	}
	p.state.SetFallbackLocale(loc)
	return nil
}

// Locale returns the active locale.
func (p *Provider) Locale() Locale {
	return p.state.Locale()
}

// FallbackLocale returns the fallback locale.
func (p *Provider) FallbackLocale() Locale {
	return p.state.FallbackLocale()
}

// AvailableLocales returns the locales known to the Store in first-load
// order, or ["en"] when nothing has been loaded yet so callers never observe
// an empty list.
func (p *Provider) AvailableLocales() []string {
	if locales := p.store.Locales(); len(locales) > 0 {
		return locales
	}
	return []string{DefaultLang}
}

// AddReplacer registers a custom parameter replacer hook at runtime.
func (p *Provider) AddReplacer(fn ReplacerFunc) {
	p.replacer.Add(fn)
}

// Subscribe registers a callback fired after every actual locale or
// fallback-locale change. Returns the unsubscribe func.
func (p *Provider) Subscribe(fn func()) func() {
	return p.state.Subscribe(fn)
}

// Store returns the Provider's translation store, e.g. to wire a Loader.
func (p *Provider) Store() *Store {
	return p.store
}

// State returns the Provider's locale state.
func (p *Provider) State() *LocaleState {
	return p.state
}

func (p *Provider) newCall(opts ...TranslateOption) translateCall {
	call := translateCall{}
	for _, opt := range opts {
		opt(&call)
	}
	if call.locale == "" {
		call.locale = p.state.Locale().String()
	}
	return call
}

// lookupChain implements namespace-then-locale fallback:
// (locale, ns) -> (locale, "") -> (fallback, ns) -> (fallback, ""),
// short-circuiting on the first hit.
func (p *Provider) lookupChain(key, locale, namespace string) (string, bool) {
	if raw, ok := p.store.Lookup(key, locale, namespace); ok {
		return raw, true
	}
	if namespace != "" {
		if raw, ok := p.store.Lookup(key, locale, ""); ok {
			return raw, true
		}
	}

	if fallback := p.state.FallbackLocale().String(); fallback != locale {
		if raw, ok := p.store.Lookup(key, fallback, namespace); ok {
			return raw, true
		}
		if namespace != "" {
			if raw, ok := p.store.Lookup(key, fallback, ""); ok {
				return raw, true
			}
		}
	}

	return "", false
}

func (p *Provider) reportMissing(locale, namespace, key string) {
	if p.missingKeyHandler != nil {
		p.missingKeyHandler(locale, namespace, key)
	}
}
