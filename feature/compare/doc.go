// Package compare exposes the token reconciliation engine over HTTP.
//
// A comparison classifies every design-tool variable and every design token
// as synced, needs-sync, variable-only or token-only. Inputs can be posted
// directly or referenced by name: the latest stored snapshot (snapshots
// feature) against a stored token document (tokens feature).
//
// Results are cached by a content hash of the complete input, so repeated
// comparisons of unchanged inputs are served from the cache and concurrent
// identical requests compute once.
//
// # HTTP Endpoints
//
//   - POST /compare : body {snapshot, document | tokens, mode}.
//   - GET /compare/:snapshot?document=&mode= : compares stored inputs.
//
// Both accept ?status= to return only items with one status. The summary
// always covers the full result.
package compare
