// Package direction resolves the text direction (left-to-right or
// right-to-left) of a locale identifier.
//
// The mapping is a pure function of its input: a BCP-47 language tag in,
// exactly one of [LeftToRight] or [RightToLeft] out. Two interchangeable
// implementations back the same [Resolver] interface:
//
//   - [TagResolver] derives the locale's likely script from the CLDR
//     data shipped with golang.org/x/text and classifies the script.
//     It understands explicit script subtags ("az-Arab") and region
//     variants ("ar-EG").
//   - [Table] is a plain language-subtag lookup, usable where the
//     script database is unavailable or undesirable, and extensible
//     with custom entries or YAML override files.
//
// [New] selects the implementation once at construction time — by
// default a chain of the script lookup falling back to the table — so
// call sites never branch on capability.
//
// # Usage
//
//	resolver, err := direction.New()
//	if err != nil {
//		return err
//	}
//
//	dir, err := resolver.Resolve("ar-EG")
//	// dir == direction.RightToLeft
//
// # Error policy
//
// Malformed identifiers ([ErrMalformedLocale]) and identifiers with no
// directionality data ([ErrUnknownDirection]) are defined error
// conditions, not silent defaults. Applications that prefer the web
// platform's fallback behavior opt into it explicitly:
//
//	resolver, err := direction.New(direction.WithDefault(direction.LeftToRight))
//
// or use the [Of] convenience, which always answers:
//
//	dir := direction.Of("he") // RightToLeft
//	dir = direction.Of("??") // LeftToRight
package direction
