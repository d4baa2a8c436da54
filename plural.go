package i18n

import "strings"

// PluralForm selects the plural segment of a raw message for the given count.
//
// Messages declare plural forms as pipe-separated segments:
//
//	"item|items"                      two forms: singular, plural
//	"no items|one item|:count items"  three forms: zero, one, other
//
// A message without a pipe is returned unchanged. With two segments the
// first is used when count == 1 and the second otherwise. With three or
// more segments the first is used for 0, the second for 1, and the third
// for everything else, negative counts included. Segments past the third
// are ignored.
//
// The selected segment is returned without parameter substitution.
func PluralForm(raw string, count int) string {
	if !strings.Contains(raw, "|") {
		return raw
	}

	segments := strings.Split(raw, "|")
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}

	if len(segments) == 2 {
		if count == 1 {
			return segments[0]
		}
		return segments[1]
	}

	switch count {
	case 0:
		return segments[0]
	case 1:
		return segments[1]
	default:
		return segments[2]
	}
}
