package i18n

import (
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Translator binds a Provider to a fixed locale and namespace, removing the
// need to pass per-call options, and adds locale-aware value formatting on
// top of golang.org/x/text.
type Translator struct {
	provider  *Provider
	locale    Locale
	namespace string
	printer   *message.Printer

	dateLayout     string
	timeLayout     string
	dateTimeLayout string
}

// TranslatorOption configures a Translator during construction.
type TranslatorOption func(*Translator)

// WithDateLayout sets the Go time layout used by FormatDate.
func WithDateLayout(layout string) TranslatorOption {
	return func(t *Translator) {
		if layout != "" {
			t.dateLayout = layout
		}
	}
}

// WithTimeLayout sets the Go time layout used by FormatTime.
func WithTimeLayout(layout string) TranslatorOption {
	return func(t *Translator) {
		if layout != "" {
			t.timeLayout = layout
		}
	}
}

// WithDateTimeLayout sets the Go time layout used by FormatDateTime.
func WithDateTimeLayout(layout string) TranslatorOption {
	return func(t *Translator) {
		if layout != "" {
			t.dateTimeLayout = layout
		}
	}
}

// NewTranslator creates a Translator bound to the given locale and
// namespace. A zero locale binds to the provider's currently active locale.
func NewTranslator(provider *Provider, locale Locale, namespace string, opts ...TranslatorOption) *Translator {
	if provider == nil {
		panic("i18n: provider is not provided")
	}
	if locale.IsZero() {
		locale = provider.Locale()
	}

	t := &Translator{
		provider:       provider,
		locale:         locale,
		namespace:      namespace,
		printer:        message.NewPrinter(locale.Tag()),
		dateLayout:     "Jan 2, 2006",
		timeLayout:     "15:04",
		dateTimeLayout: "Jan 2, 2006 15:04",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// T translates a key in the translator's locale and namespace.
func (t *Translator) T(key string, params ...M) string {
	return t.provider.Translate(key, t.callOptions(params)...)
}

// Tn translates a key with pluralization for the given count.
func (t *Translator) Tn(key string, count int, params ...M) string {
	return t.provider.Pluralize(key, count, t.callOptions(params)...)
}

// Field translates a form-field label from the "fields" namespace,
// regardless of the translator's bound namespace.
func (t *Translator) Field(key string) string {
	return t.provider.Field(key, WithLocale(t.locale.String()))
}

// Exists reports whether the key resolves in the translator's context.
func (t *Translator) Exists(key string) bool {
	return t.provider.Exists(key, t.callOptions(nil)...)
}

// FormatNumber formats a number with locale-specific separators.
func (t *Translator) FormatNumber(n float64) string {
	return t.printer.Sprint(number.Decimal(n))
}

// FormatPercent formats a decimal fraction as a percentage (0.5 renders as
// 50%).
func (t *Translator) FormatPercent(n float64) string {
	return t.printer.Sprint(number.Percent(n))
}

// FormatCurrency formats an amount in the given ISO 4217 currency.
// An unknown currency code degrades to plain number formatting.
func (t *Translator) FormatCurrency(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return t.FormatNumber(amount)
	}
	return t.printer.Sprint(currency.Symbol(unit.Amount(amount)))
}

// FormatDate formats a date with the translator's date layout.
func (t *Translator) FormatDate(date time.Time) string {
	return date.Format(t.dateLayout)
}

// FormatTime formats a time with the translator's time layout.
func (t *Translator) FormatTime(tm time.Time) string {
	return tm.Format(t.timeLayout)
}

// FormatDateTime formats a datetime with the translator's datetime layout.
func (t *Translator) FormatDateTime(datetime time.Time) string {
	return datetime.Format(t.dateTimeLayout)
}

// Locale returns the translator's bound locale.
func (t *Translator) Locale() Locale {
	return t.locale
}

// Namespace returns the translator's bound namespace.
func (t *Translator) Namespace() string {
	return t.namespace
}

// Direction returns the layout direction of the translator's locale.
func (t *Translator) Direction() Direction {
	return t.locale.Direction()
}

func (t *Translator) callOptions(params []M) []TranslateOption {
	opts := []TranslateOption{
		WithLocale(t.locale.String()),
		WithNamespace(t.namespace),
	}
	for _, p := range params {
		opts = append(opts, WithParams(p))
	}
	return opts
}
