// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure for the records API: listen port, API key and the
// optional allow-list of tables that may be served over HTTP.
//
// # Usage
//
// This package is embedded by core/config and consulted by the records feature
// before a table is resolved.
package server
