package direction

import "errors"

// Direction is the reading direction of a script.
type Direction string

const (
	// LeftToRight is the direction of Latin, Cyrillic, CJK and most other scripts.
	LeftToRight Direction = "ltr"
	// RightToLeft is the direction of Arabic, Hebrew and related scripts.
	RightToLeft Direction = "rtl"
)

var (
	ErrEmptyLocale      = errors.New("direction: locale cannot be empty")
	ErrMalformedLocale  = errors.New("direction: malformed locale identifier")
	ErrUnknownDirection = errors.New("direction: no directionality data for locale")
	ErrNoResolvers      = errors.New("direction: at least one resolver is required")
)

// String returns the attribute value form ("ltr" or "rtl").
func (d Direction) String() string {
	return string(d)
}

// IsRTL reports whether the direction is right-to-left.
func (d Direction) IsRTL() bool {
	return d == RightToLeft
}

// Valid reports whether d is one of the two defined directions.
// The zero value is not valid.
func (d Direction) Valid() bool {
	return d == LeftToRight || d == RightToLeft
}

// Resolver maps a locale identifier to its text direction.
// Implementations must be pure: the same input always yields the same
// result with no observable side effects, and calls must be safe for
// concurrent use.
type Resolver interface {
	Resolve(locale string) (Direction, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(locale string) (Direction, error)

// Resolve calls f(locale).
func (f ResolverFunc) Resolve(locale string) (Direction, error) {
	return f(locale)
}
