// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure and the environment rules derived from it, such as
// whether sample data is seeded (everything except production).
//
// # Configuration
//
// The Config struct defines the HTTP port (default 8000), the optional API key
// and the deployment environment.
package server
