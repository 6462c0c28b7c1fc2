// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure for server settings.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key guarding every route,
// and the request body limit applied to uploaded token documents and snapshots.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by cmd/start to configure the Fiber application.
package server
