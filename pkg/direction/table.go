package direction

import (
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// rtlLanguages lists primary language subtags written right-to-left.
// Matches the data used by the common JS rtl-detect polyfill.
var rtlLanguages = []string{
	"ae",  // Avestan
	"ar",  // Arabic
	"arc", // Aramaic
	"bcc", // Southern Balochi
	"bqi", // Bakhtiari
	"ckb", // Central Kurdish (Sorani)
	"dv",  // Dhivehi
	"fa",  // Persian
	"glk", // Gilaki
	"he",  // Hebrew
	"iw",  // Hebrew (legacy code)
	"khw", // Khowar
	"ks",  // Kashmiri
	"mzn", // Mazanderani
	"nqo", // N'Ko
	"pnb", // Western Punjabi
	"ps",  // Pashto
	"sd",  // Sindhi
	"ug",  // Uyghur
	"ur",  // Urdu
	"yi",  // Yiddish
}

// ltrLanguages lists common primary language subtags known to be
// left-to-right. The table is deliberately not exhaustive; unknown
// languages are a defined error so callers can choose their own policy.
var ltrLanguages = []string{
	"af", "am", "az", "be", "bg", "bn", "bs", "ca", "cs", "cy",
	"da", "de", "el", "en", "eo", "es", "et", "eu", "fi", "fil",
	"fr", "ga", "gl", "gu", "hi", "hr", "hu", "hy", "id", "is",
	"it", "ja", "ka", "kk", "km", "kn", "ko", "ky", "lo", "lt",
	"lv", "mk", "ml", "mn", "mr", "ms", "my", "ne", "nl", "no",
	"pa", "pl", "pt", "ro", "ru", "si", "sk", "sl", "sq", "sr",
	"sv", "sw", "ta", "te", "th", "tr", "uk", "uz", "vi", "zh",
}

// Table is a pure lookup resolver backed by a language-to-direction map.
// It is the drop-in substitute for environments where the script-based
// lookup is unavailable, and the terminal fallback in the default chain.
// Immutable after creation, safe for concurrent use.
type Table struct {
	entries map[string]Direction
}

// TableOption configures a Table during construction.
type TableOption func(*Table) error

// NewTable creates a table resolver seeded with the built-in language
// data, then applies the given options in order.
func NewTable(opts ...TableOption) (*Table, error) {
	t := &Table{entries: make(map[string]Direction, len(rtlLanguages)+len(ltrLanguages))}
	for _, lang := range ltrLanguages {
		t.entries[lang] = LeftToRight
	}
	for _, lang := range rtlLanguages {
		t.entries[lang] = RightToLeft
	}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, fmt.Errorf("failed to apply table option: %w", err)
		}
	}

	return t, nil
}

// MustTable is like NewTable but panics on error. Intended for
// package-level defaults and tests.
func MustTable(opts ...TableOption) *Table {
	t, err := NewTable(opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// WithEntries adds or overrides direction entries. Keys are primary
// language subtags ("ar", "ckb"); values must be valid directions.
func WithEntries(entries map[string]Direction) TableOption {
	return func(t *Table) error {
		for lang, dir := range entries {
			if lang == "" {
				return ErrEmptyLocale
			}
			if !dir.Valid() {
				return fmt.Errorf("direction: invalid direction %q for language %q", dir, lang)
			}
			t.entries[strings.ToLower(lang)] = dir
		}
		return nil
	}
}

// WithYAML loads direction overrides from YAML files in an fs.FS.
// Every .yaml/.yml file is a flat mapping of language subtag to
// "ltr" or "rtl":
//
//	ar: rtl
//	dv: rtl
//	tlh: ltr
func WithYAML(fsys fs.FS) TableOption {
	return func(t *Table) error {
		return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}

			ext := strings.ToLower(path.Ext(filePath))
			if ext != ".yaml" && ext != ".yml" {
				return nil
			}

			data, err := fs.ReadFile(fsys, filePath)
			if err != nil {
				return fmt.Errorf("reading %q: %w", filePath, err)
			}

			var entries map[string]Direction
			if err := yaml.Unmarshal(data, &entries); err != nil {
				return fmt.Errorf("direction: parsing %q: %w", filePath, err)
			}

			return WithEntries(entries)(t)
		})
	}
}

// Resolve looks up the locale's primary language subtag.
// Returns ErrUnknownDirection when the language is not in the table.
func (t *Table) Resolve(locale string) (Direction, error) {
	lang, err := primarySubtag(locale)
	if err != nil {
		return "", err
	}

	if dir, ok := t.entries[lang]; ok {
		return dir, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, locale)
}

// Languages returns a copy of the table's language-to-direction entries.
func (t *Table) Languages() map[string]Direction {
	return maps.Clone(t.entries)
}

// primarySubtag extracts and validates the primary language subtag from
// a locale identifier, accepting both "-" and "_" separators.
func primarySubtag(locale string) (string, error) {
	if locale == "" {
		return "", ErrEmptyLocale
	}

	lang := locale
	if i := strings.IndexAny(locale, "-_"); i >= 0 {
		lang = locale[:i]
	}

	// BCP-47 primary subtags are 2-8 ASCII letters.
	if len(lang) < 2 || len(lang) > 8 {
		return "", fmt.Errorf("%w: %q", ErrMalformedLocale, locale)
	}
	for i := 0; i < len(lang); i++ {
		c := lang[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return "", fmt.Errorf("%w: %q", ErrMalformedLocale, locale)
		}
	}

	return strings.ToLower(lang), nil
}
