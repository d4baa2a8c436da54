package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLang is the locale code used when no locale has been configured.
const DefaultLang = "en"

// Locale identifies a language with an optional region.
// It is a plain value type: two locales are equal iff their subtags are equal.
type Locale struct {
	// Language is the lowercase ISO 639 language code (e.g. "en", "pt").
	Language string
	// Region is the uppercase ISO 3166-1 country code (e.g. "US", "BR").
	// Empty when the locale carries no region.
	Region string
}

// Direction is the text/layout direction implied by a locale.
type Direction int

const (
	// LTR is left-to-right layout direction.
	LTR Direction = iota
	// RTL is right-to-left layout direction.
	RTL
)

// rtlLanguages lists language codes written right-to-left.
var rtlLanguages = map[string]bool{
	"ar":  true,
	"ckb": true,
	"dv":  true,
	"fa":  true,
	"he":  true,
	"iw":  true,
	"ps":  true,
	"sd":  true,
	"ug":  true,
	"ur":  true,
	"yi":  true,
}

// DefaultLocale returns the baseline locale ("en").
func DefaultLocale() Locale {
	return Locale{Language: DefaultLang}
}

// ParseLocale parses a locale code into a Locale value.
// It accepts both BCP 47 ("en-US") and underscore ("en_US") separators.
// The region is kept only when explicitly present in the input.
func ParseLocale(code string) (Locale, error) {
	code = strings.TrimSpace(strings.ReplaceAll(code, "_", "-"))
	if code == "" {
		return Locale{}, ErrEmptyLocale
	}

	tag, err := language.Parse(code)
	if err != nil {
		return Locale{}, fmt.Errorf("%w: %q", ErrInvalidLocale, code)
	}

	base, _ := tag.Base()
	loc := Locale{Language: base.String()}

	// tag.Region infers a likely region for region-less tags; only an exact
	// confidence means the region was present in the input.
	if region, conf := tag.Region(); conf == language.Exact {
		loc.Region = region.String()
	}

	return loc, nil
}

// MustParseLocale is like ParseLocale but panics on invalid input.
// Intended for locale literals at the application's composition point.
func MustParseLocale(code string) Locale {
	loc, err := ParseLocale(code)
	if err != nil {
		panic(err)
	}
	return loc
}

// String returns the canonical locale code: "language" or "language-REGION".
func (l Locale) String() string {
	if l.Region == "" {
		return l.Language
	}
	return l.Language + "-" + l.Region
}

// IsZero reports whether the locale is the zero value.
func (l Locale) IsZero() bool {
	return l.Language == "" && l.Region == ""
}

// Direction returns the layout direction for the locale's language.
func (l Locale) Direction() Direction {
	if rtlLanguages[l.Language] {
		return RTL
	}
	return LTR
}

// Tag converts the locale to a language.Tag for use with golang.org/x/text.
// Falls back to language.English when the locale does not round-trip.
func (l Locale) Tag() language.Tag {
	tag, err := language.Parse(l.String())
	if err != nil {
		return language.English
	}
	return tag
}

// canonicalLocaleCode normalizes a raw locale code for store lookups.
// Unparseable codes are returned as-is so lookups still work by exact match.
func canonicalLocaleCode(code string) string {
	loc, err := ParseLocale(code)
	if err != nil {
		return code
	}
	return loc.String()
}
