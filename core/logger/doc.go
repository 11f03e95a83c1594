// Package logger builds the zap loggers used across the service.
//
// New picks the development config for the debug level and the production config
// otherwise, then applies the configured level and encoding (json or console).
// Debug level is also what surfaces the pool hit/miss/discard events and the
// per-pass reconciliation summaries.
//
// WithRayID scopes a logger to the current request; WithSession scopes it to one
// reconciliation session.
//
//	log, _ := logger.New(&logger.Config{Level: "debug", Format: "console"})
//	logger.WithSession(log, id).Info("Session created")
package logger
