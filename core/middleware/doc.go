// Package middleware groups the Fiber middleware shared by every feature.
//
// Subpackages:
//
//	auth   rejects requests without the configured API key (X-API-Key header
//	       or api_key query parameter).
//	rayid  tags each request with a ray ID, echoed in the X-Ray-ID response
//	       header and attached to log lines through logger.WithRayID.
//
// cmd/start installs rayid first so auth failures are traceable too.
package middleware
