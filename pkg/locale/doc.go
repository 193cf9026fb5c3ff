// Package locale carries the application's active locale: a value type
// for BCP-47 tags, Accept-Language negotiation against a supported set,
// context propagation for request-scoped use, and a subscribable Store
// for the post-render reactive path.
//
// The package deliberately does not decide how a locale gets chosen —
// routing, user profiles and persistence belong to the application. It
// only represents, negotiates and distributes the value.
package locale
