// Package server holds the HTTP server configuration.
//
// The main application entry point builds the Fiber app; this package only defines
// the settings it reads: listen port, API key and request body limit.
//
// # Usage
//
// This package is embedded by core/config and read by the start command.
package server
