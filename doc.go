// Package i18n is a localization core for Go applications: it resolves
// translation keys to display strings with namespace and locale fallback,
// parameter interpolation, and pluralization, and tracks the active locale
// so dependent code can react to locale changes.
//
// Resolution never fails. A key missing from every fallback tier resolves to
// the key itself, a missing namespace behaves like missing translations, and
// an invalid locale code leaves the previous locale in place. This keeps UI
// rendering robust against incomplete localization data.
//
// # Basic Usage
//
// Create a Provider with translations and resolve keys:
//
//	provider, err := i18n.New(
//		i18n.WithFallbackLocale("en"),
//		i18n.WithTranslations("en", "", map[string]any{
//			"greeting": "Hello :name!",
//		}),
//		i18n.WithTranslations("de", "", map[string]any{
//			"greeting": "Hallo :name!",
//		}),
//	)
//
//	msg := provider.Translate("greeting", i18n.WithParams(i18n.M{"name": "John"}))
//	// Output: "Hello John!"
//
//	_ = provider.SetLocale("de")
//	msg = provider.Translate("greeting", i18n.WithParams(i18n.M{"name": "Johann"}))
//	// Output: "Hallo Johann!"
//
// # Namespaces and Fallback
//
// Keys live in namespaces; "" is the global namespace. A lookup tries the
// effective (locale, namespace) pair, the locale's global namespace, then
// both again for the fallback locale:
//
//	provider.Translate("email", i18n.WithNamespace("fields"))
//	provider.Field("email") // same thing
//
// # Pluralization
//
// Messages declare plural forms as pipe-separated segments, selected by
// count and substituted with :count injected automatically:
//
//	"no messages|one message|:count messages"
//
//	provider.Pluralize("inbox.count", 0) // "no messages"
//	provider.Pluralize("inbox.count", 1) // "one message"
//	provider.Pluralize("inbox.count", 5) // "5 messages"
//
// # File-Based Translations
//
// Load translation files from any fs.FS, one directory per locale and one
// file per namespace ({locale}/{namespace}.json|.yaml); the file named after
// its locale directory holds the global namespace:
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	subFS, _ := fs.Sub(translationsFS, "translations")
//	provider, err := i18n.New(i18n.WithTranslationsFS(subFS))
//
// For runtime loading, wire a Loader to a shared Store and call Initialize
// or LoadLocale; locales load concurrently.
//
// # Reacting to Locale Changes
//
// Subscribe to locale changes to re-render text or flip layout direction:
//
//	cancel := provider.Subscribe(func() {
//		render(provider.Locale().Direction())
//	})
//	defer cancel()
//
// # Translator
//
// The Translator type fixes the locale and namespace and adds locale-aware
// number, percent, currency, and date formatting:
//
//	tr := i18n.NewTranslator(provider, i18n.MustParseLocale("de-DE"), "checkout")
//	title := tr.T("title")
//	total := tr.FormatCurrency(19.99, "EUR")
package i18n
