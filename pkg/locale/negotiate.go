package locale

import "golang.org/x/text/language"

// Match picks the best supported locale for the requested preferences.
// The first supported locale is the default and wins when nothing
// matches. Each requested string may be a single tag or a full
// Accept-Language header ("en-US,en;q=0.9,ar;q=0.8"); earlier strings
// take precedence over later ones.
//
// Returns "" only when supported is empty or contains no parseable tag.
func Match(supported []Locale, requested ...string) Locale {
	if len(supported) == 0 {
		return ""
	}

	tags := make([]language.Tag, 0, len(supported))
	indexes := make([]int, 0, len(supported))
	for i, loc := range supported {
		tag, err := language.Parse(string(loc))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		indexes = append(indexes, i)
	}
	if len(tags) == 0 {
		return ""
	}

	matcher := language.NewMatcher(tags)
	_, idx := language.MatchStrings(matcher, requested...)
	return supported[indexes[idx]]
}
