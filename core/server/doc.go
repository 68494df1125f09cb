// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines
// the configuration structure for the listen port, the API key protecting
// the endpoints and the optional metrics and documentation routes.
//
// # Usage
//
// This package is embedded by core/config and read by the start command.
package server
