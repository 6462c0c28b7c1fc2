// Package logger builds the zap loggers used by the server and the CLI.
//
// Level and encoding come from Config (LOG_LEVEL, LOG_FORMAT). Request
// handlers derive a per-request logger with WithRayID so every entry of one
// request carries the same ray_id.
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	l := logger.WithRayID(log, c)
//	l.Warn("Comparison rejected", zap.Strings("keys", keys))
package logger
