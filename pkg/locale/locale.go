package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is a BCP-47 language tag such as "en", "en-US" or "ar-EG".
// It is an opaque value type: the library never mutates it, only reads
// its subtags.
type Locale string

// String returns the tag as supplied.
func (l Locale) String() string {
	return string(l)
}

// IsZero reports whether the locale is empty.
func (l Locale) IsZero() bool {
	return l == ""
}

// Language returns the primary language subtag, lowercased
// (e.g. "en" for "en-US"). Accepts both "-" and "_" separators.
func (l Locale) Language() string {
	s := string(l)
	if i := strings.IndexAny(s, "-_"); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(s)
}

// Region returns the region subtag, uppercased (e.g. "US" for "en-US"),
// or "" when the tag carries none.
func (l Locale) Region() string {
	tag, err := language.Parse(string(l))
	if err != nil {
		return ""
	}
	// Only report a region the tag spells out; x/text would otherwise
	// infer a likely one with low confidence.
	region, conf := tag.Region()
	if conf != language.Exact || !region.IsCountry() {
		return ""
	}
	return region.String()
}

// Normalize returns the canonical form of the tag ("EN_us" → "en-US").
// Tags that do not parse are returned unchanged.
func (l Locale) Normalize() Locale {
	tag, err := language.Parse(string(l))
	if err != nil {
		return l
	}
	return Locale(tag.String())
}
