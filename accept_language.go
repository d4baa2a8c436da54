package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// MatchAcceptLanguage picks the best supported locale for an HTTP
// Accept-Language header. Quality values are honored and a base language
// matches its regional variants ("en" matches "en-US" and vice versa).
// When nothing matches, or the header is empty or malformed, the first
// available locale is returned; an empty available list yields "".
func MatchAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}

	tags := make([]language.Tag, 0, len(available))
	codes := make([]string, 0, len(available))
	for _, code := range available {
		tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, code)
	}
	if len(tags) == 0 {
		return available[0]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return available[0]
	}

	_, index, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return available[0]
	}
	return codes[index]
}
