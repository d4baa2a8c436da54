package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18n"
)

func TestParseLocale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     string
		expected i18n.Locale
	}{
		{
			name:     "language only",
			code:     "en",
			expected: i18n.Locale{Language: "en"},
		},
		{
			name:     "language and region",
			code:     "en-US",
			expected: i18n.Locale{Language: "en", Region: "US"},
		},
		{
			name:     "underscore separator",
			code:     "pt_BR",
			expected: i18n.Locale{Language: "pt", Region: "BR"},
		},
		{
			name:     "lowercase region is normalized",
			code:     "de-de",
			expected: i18n.Locale{Language: "de", Region: "DE"},
		},
		{
			name:     "surrounding whitespace",
			code:     "  fr ",
			expected: i18n.Locale{Language: "fr"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			loc, err := i18n.ParseLocale(tt.code)
			require.NoError(t, err)
			require.Equal(t, tt.expected, loc)
		})
	}

	t.Run("empty code", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.ParseLocale("")
		require.ErrorIs(t, err, i18n.ErrEmptyLocale)
	})

	t.Run("invalid code", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.ParseLocale("not a locale!!")
		require.ErrorIs(t, err, i18n.ErrInvalidLocale)
	})
}

func TestLocaleString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "en", i18n.Locale{Language: "en"}.String())
	require.Equal(t, "en-US", i18n.Locale{Language: "en", Region: "US"}.String())
}

func TestLocaleEquality(t *testing.T) {
	t.Parallel()

	require.Equal(t, i18n.MustParseLocale("en_US"), i18n.MustParseLocale("en-US"))
	require.NotEqual(t, i18n.MustParseLocale("en"), i18n.MustParseLocale("en-US"))
}

func TestLocaleDirection(t *testing.T) {
	t.Parallel()

	require.Equal(t, i18n.LTR, i18n.MustParseLocale("en").Direction())
	require.Equal(t, i18n.LTR, i18n.MustParseLocale("de-DE").Direction())
	require.Equal(t, i18n.RTL, i18n.MustParseLocale("ar").Direction())
	require.Equal(t, i18n.RTL, i18n.MustParseLocale("he").Direction())
	require.Equal(t, i18n.RTL, i18n.MustParseLocale("fa-IR").Direction())
}

func TestMustParseLocale(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		i18n.MustParseLocale("")
	})
}

func TestDefaultLocale(t *testing.T) {
	t.Parallel()

	require.Equal(t, "en", i18n.DefaultLocale().String())
}
