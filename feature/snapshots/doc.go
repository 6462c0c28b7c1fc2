// Package snapshots keeps the history of design-tool variable snapshots.
//
// Each upload of a snapshot is stored as a row in the variable_snapshots table
// together with a content checksum. Uploading a snapshot identical to the
// latest one for the same name does not create a new row, so the history only
// records real changes. The compare feature reads the latest snapshot from
// here.
//
// # HTTP Endpoints
//
//   - POST /snapshots/:name : stores a snapshot (body: snapshot JSON).
//   - GET /snapshots/:name : lists the history, newest first (?limit=).
//   - GET /snapshots/:name/latest : returns the latest snapshot.
//   - GET /snapshots/:name/:ref : returns one stored snapshot.
//
// The feature is disabled when no database connection is available.
package snapshots
