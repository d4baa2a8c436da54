package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18n"
)

func TestPluralForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		count    int
		expected string
	}{
		{
			name:     "no pipe returns message unchanged",
			raw:      "just a message",
			count:    5,
			expected: "just a message",
		},
		{
			name:     "two segments singular",
			raw:      "item|items",
			count:    1,
			expected: "item",
		},
		{
			name:     "two segments plural",
			raw:      "item|items",
			count:    2,
			expected: "items",
		},
		{
			name:     "two segments zero uses plural",
			raw:      "item|items",
			count:    0,
			expected: "items",
		},
		{
			name:     "two segments negative uses plural",
			raw:      "item|items",
			count:    -1,
			expected: "items",
		},
		{
			name:     "three segments zero",
			raw:      "no items|one item|:count items",
			count:    0,
			expected: "no items",
		},
		{
			name:     "three segments one",
			raw:      "no items|one item|:count items",
			count:    1,
			expected: "one item",
		},
		{
			name:     "three segments other",
			raw:      "no items|one item|:count items",
			count:    5,
			expected: ":count items",
		},
		{
			name:     "three segments negative uses other",
			raw:      "no items|one item|:count items",
			count:    -3,
			expected: ":count items",
		},
		{
			name:     "segments are trimmed",
			raw:      " no items | one item | :count items ",
			count:    1,
			expected: "one item",
		},
		{
			name:     "extra segments are ignored",
			raw:      "zero|one|other|few|many",
			count:    7,
			expected: "other",
		},
		{
			name:     "empty trailing segment",
			raw:      "item|",
			count:    3,
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, i18n.PluralForm(tt.raw, tt.count))
		})
	}
}
