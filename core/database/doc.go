// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// based on the application's configuration. The database stores the history
// of design-tool variable snapshots.
//
// # Connect
//
// Connect opens the configured driver, applies pool settings and verifies the
// connection with a bounded ping. SQLite (including ":memory:") is used for
// tests and single-node deployments.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for both dialects. The
// integrity feature uses it to verify that the snapshot table matches the
// GORM model it is written with.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "variable_snapshots")
package database
