package i18n

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// M is a parameter map passed to translation calls.
type M map[string]any

// ReplacerFunc customizes how a single parameter is rendered.
// It receives the parameter name, its value, and the full parameter map.
// Returning the sentinel ":"+name defers to the default string conversion.
type ReplacerFunc func(name string, value any, params M) string

// Replacer substitutes :name placeholders in templates and carries the list
// of registered custom replacer hooks.
type Replacer struct {
	mu  sync.RWMutex
	fns []ReplacerFunc
}

// NewReplacer creates a Replacer with no custom hooks.
func NewReplacer() *Replacer {
	return &Replacer{}
}

// Add appends a custom replacer hook. Hooks run in registration order and,
// for the same parameter, the last non-sentinel result wins. There is no
// removal: hooks accumulate for the lifetime of the Replacer.
func (r *Replacer) Add(fn ReplacerFunc) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fns = append(r.fns, fn)
}

// Substitute replaces every :name placeholder in template with the rendered
// value of the corresponding parameter. Placeholders without a parameter stay
// literal; parameters without a placeholder are ignored.
//
// Because :name has no closing delimiter, substitution works longest name
// first (ties alphabetical) so ":items" never clobbers ":itemsTotal".
//
// Example:
//
//	template: "Hello :name, you have :count messages."
//	params:   M{"name": "John", "count": 5}
//	returns:  "Hello John, you have 5 messages."
func (r *Replacer) Substitute(template string, params M) string {
	if len(params) == 0 || !strings.Contains(template, ":") {
		return template
	}

	r.mu.RLock()
	fns := r.fns
	r.mu.RUnlock()

	custom := make(map[string]string, len(params))
	for _, fn := range fns {
		for name, value := range params {
			if out := fn(name, value, params); out != ":"+name {
				custom[name] = out
			}
		}
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	result := template
	for _, name := range names {
		replacement, ok := custom[name]
		if !ok {
			replacement = formatValue(params[name])
		}
		result = strings.ReplaceAll(result, ":"+name, replacement)
	}

	return result
}

// formatValue converts a parameter value to its display string.
func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case int8:
		return strconv.FormatInt(int64(value), 10)
	case int16:
		return strconv.FormatInt(int64(value), 10)
	case int32:
		return strconv.FormatInt(int64(value), 10)
	case int64:
		return strconv.FormatInt(value, 10)
	case uint:
		return strconv.FormatUint(uint64(value), 10)
	case uint8:
		return strconv.FormatUint(uint64(value), 10)
	case uint16:
		return strconv.FormatUint(uint64(value), 10)
	case uint32:
		return strconv.FormatUint(uint64(value), 10)
	case uint64:
		return strconv.FormatUint(value, 10)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
