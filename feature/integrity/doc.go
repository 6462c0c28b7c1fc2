// Package integrity provides health checks for the stores behind the token
// bridge.
//
// # Checks Provided
//
//   - Structure: the document prefix exists in the storage bucket.
//   - Documents: every stored token document parses, with its token count and
//     any unknown token kinds.
//   - Schema: the snapshot table matches the columns and types declared on
//     its gorm model.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/documents : Runs document check.
//   - GET /integrity/schema : Runs schema check.
package integrity
