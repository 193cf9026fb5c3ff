package direction

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// rtlScripts is the set of ISO 15924 script codes written right-to-left,
// per the CLDR script metadata. Keys are canonical title-case codes as
// returned by language.Script.String.
var rtlScripts = map[string]struct{}{
	"Adlm": {}, // Adlam
	"Arab": {}, // Arabic
	"Aran": {}, // Arabic (Nastaliq)
	"Armi": {}, // Imperial Aramaic
	"Avst": {}, // Avestan
	"Chrs": {}, // Chorasmian
	"Cprt": {}, // Cypriot
	"Elym": {}, // Elymaic
	"Hatr": {}, // Hatran
	"Hebr": {}, // Hebrew
	"Hung": {}, // Old Hungarian
	"Khar": {}, // Kharoshthi
	"Lydi": {}, // Lydian
	"Mand": {}, // Mandaic
	"Mani": {}, // Manichaean
	"Mend": {}, // Mende Kikakui
	"Merc": {}, // Meroitic Cursive
	"Mero": {}, // Meroitic Hieroglyphs
	"Narb": {}, // Old North Arabian
	"Nbat": {}, // Nabataean
	"Nkoo": {}, // N'Ko
	"Orkh": {}, // Old Turkic
	"Palm": {}, // Palmyrene
	"Phli": {}, // Inscriptional Pahlavi
	"Phlp": {}, // Psalter Pahlavi
	"Phnx": {}, // Phoenician
	"Prti": {}, // Inscriptional Parthian
	"Rohg": {}, // Hanifi Rohingya
	"Samr": {}, // Samaritan
	"Sarb": {}, // Old South Arabian
	"Sogd": {}, // Sogdian
	"Sogo": {}, // Old Sogdian
	"Syrc": {}, // Syriac
	"Thaa": {}, // Thaana
	"Yezi": {}, // Yezidi
}

// unknownScript is the code x/text reports when no likely script can be
// derived for a tag.
const unknownScript = "Zzzz"

// TagResolver resolves text direction from the locale's script, using
// the CLDR likely-subtags data shipped with golang.org/x/text. This is
// the native lookup: it handles any well-formed BCP-47 tag, including
// explicit script subtags ("az-Arab") and region variants ("ar-EG").
type TagResolver struct{}

// NewTagResolver creates a script-based resolver.
func NewTagResolver() *TagResolver {
	return &TagResolver{}
}

// Resolve parses the locale, derives its likely script, and classifies it.
// Returns ErrMalformedLocale when the identifier does not parse as a
// language tag, and ErrUnknownDirection when the tag is well-formed but
// no script can be derived for it.
func (*TagResolver) Resolve(locale string) (Direction, error) {
	if locale == "" {
		return "", ErrEmptyLocale
	}

	tag, err := language.Parse(locale)
	if err != nil {
		// Well-formed but unknown subtags are a data gap, not a syntax error.
		var verr language.ValueError
		if errors.As(err, &verr) {
			return "", fmt.Errorf("%w: %q", ErrUnknownDirection, locale)
		}
		return "", fmt.Errorf("%w: %q: %s", ErrMalformedLocale, locale, err)
	}

	script, conf := tag.Script()
	if conf == language.No || script.String() == unknownScript {
		return "", fmt.Errorf("%w: %q", ErrUnknownDirection, locale)
	}

	if _, rtl := rtlScripts[script.String()]; rtl {
		return RightToLeft, nil
	}
	return LeftToRight, nil
}
