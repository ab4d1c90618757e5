// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application from this configuration:
// listen port, request read timeout and the optional API key enforced by the
// auth middleware.
package server
