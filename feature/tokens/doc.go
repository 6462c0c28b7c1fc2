// Package tokens serves flattened views of design-token documents.
//
// Documents come from three places: the request body, the object storage
// bucket (under the configured document prefix, as .json, .yaml or .yml), or a
// git repository at any revision.
//
// # HTTP Endpoints
//
//   - POST /tokens/flatten : flattens the posted JSON or YAML document.
//   - GET /tokens : lists stored document names.
//   - GET /tokens/repo?ref=&path= : flattens a document read from git.
//   - GET /tokens/:name : flattens a stored document.
//
// Every endpoint accepts ?kind= to keep only tokens of one kind and
// ?grouped=true to return tokens grouped by their parent path.
package tokens
