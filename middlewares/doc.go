// Package middlewares provides net/http middleware that negotiates the
// request locale and resolves its text direction, making both available
// to handlers through the request context.
package middlewares
