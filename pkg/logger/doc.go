// Package logger extends log/slog with context-based attribute
// injection, so request-scoped values like the negotiated locale and
// resolved text direction appear on every log line without manual
// plumbing.
//
//	log := logger.New(logger.LocaleExtractor(), logger.DirectionExtractor())
//	log.InfoContext(ctx, "rendered layout")
//	// {"msg":"rendered layout","locale":"ar","dir":"rtl",...}
package logger
