package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18n"
)

func TestMatchAcceptLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		available []string
		expected  string
	}{
		{
			name:      "empty available list",
			header:    "en",
			available: nil,
			expected:  "",
		},
		{
			name:      "empty header defaults to first available",
			header:    "",
			available: []string{"pl", "en"},
			expected:  "pl",
		},
		{
			name:      "exact match",
			header:    "de",
			available: []string{"en", "de"},
			expected:  "de",
		},
		{
			name:      "quality values pick the best supported",
			header:    "en-US,en;q=0.9,pl;q=0.8",
			available: []string{"pl", "en", "de"},
			expected:  "en",
		},
		{
			name:      "regional variant matches base language",
			header:    "de-AT",
			available: []string{"en", "de"},
			expected:  "de",
		},
		{
			name:      "base language matches regional variant",
			header:    "pt",
			available: []string{"en", "pt-BR"},
			expected:  "pt-BR",
		},
		{
			name:      "underscore codes in available list",
			header:    "pt-BR",
			available: []string{"en", "pt_BR"},
			expected:  "pt_BR",
		},
		{
			name:      "no match falls back to first available",
			header:    "ja",
			available: []string{"de", "fr"},
			expected:  "de",
		},
		{
			name:      "malformed header falls back to first available",
			header:    ";;;",
			available: []string{"en", "de"},
			expected:  "en",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, i18n.MatchAcceptLanguage(tt.header, tt.available))
		})
	}
}
