package util

import "go.uber.org/zap"

// NewLogger returns a sugared logger tuned for the given environment:
// JSON output in production, the console encoder everywhere else.
// Flushing via Sync is left to the caller.
func NewLogger(env string) *zap.SugaredLogger {
	if env == "production" {
		return zap.Must(zap.NewProduction()).Sugar()
	}
	return zap.Must(zap.NewDevelopment()).Sugar()
}
