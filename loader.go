package i18n

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Loader reads translation files from an fs.FS and feeds them into a Store.
//
// Expected layout: one directory per locale, one file per namespace:
//
//	en/en.json        global namespace ("")
//	en/validation.json
//	de/de.yaml
//	de/validation.yaml
//
// The file whose basename equals its locale directory maps to the global
// namespace; any other basename becomes the namespace. JSON, YAML, and YML
// extensions are recognized.
//
// Malformed or unreadable files are logged and skipped: the Store simply
// never receives their entries and lookups degrade to the usual
// missing-translation behavior.
type Loader struct {
	store *Store
	fsys  fs.FS
	log   *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLoaderLogger sets the logger used to report skipped files.
// Logging is disabled by default.
func WithLoaderLogger(log *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// NewLoader creates a Loader over fsys that loads into store.
func NewLoader(store *Store, fsys fs.FS, opts ...LoaderOption) *Loader {
	l := &Loader{
		store: store,
		fsys:  fsys,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Initialize discovers all locale directories and loads them concurrently.
// Each locale is an independent load task; distinct (locale, namespace)
// pairs never interleave within the Store.
func (l *Loader) Initialize(ctx context.Context) error {
	dirs, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return fmt.Errorf("reading translation root: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		code := dir.Name()
		g.Go(func() error {
			return l.LoadLocale(ctx, code)
		})
	}
	return g.Wait()
}

// LoadLocale loads every namespace file of a single locale directory.
// A missing or unreadable directory is logged and treated as "no entries".
func (l *Loader) LoadLocale(ctx context.Context, code string) error {
	files, err := fs.ReadDir(l.fsys, code)
	if err != nil {
		l.log.WarnContext(ctx, "skipping locale directory", "locale", code, "error", err)
		return nil
	}

	locale := canonicalLocaleCode(code)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if file.IsDir() {
			continue
		}

		name := file.Name()
		ext := strings.ToLower(path.Ext(name))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		namespace := strings.TrimSuffix(name, path.Ext(name))
		if namespace == code {
			namespace = ""
		}

		entries, err := l.parseFile(path.Join(code, name), ext)
		if err != nil {
			l.log.WarnContext(ctx, "skipping translation file",
				"locale", code, "file", name, "error", err)
			continue
		}

		l.store.Load(locale, namespace, entries)
	}

	return nil
}

func (l *Loader) parseFile(filePath, ext string) (map[string]string, error) {
	data, err := fs.ReadFile(l.fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", filePath, err)
	}

	var raw map[string]any
	if ext == ".json" {
		err = json.Unmarshal(data, &raw)
	} else {
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", filePath, err)
	}

	return flattenEntries(raw, ""), nil
}

// flattenEntries flattens nested translation maps to dot-notation keys and
// stringifies scalar values.
func flattenEntries(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string, len(data))

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenEntries(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}
