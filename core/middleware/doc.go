// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Auth: Implements optional API key validation.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - ErrorHandler: The terminal error handler. It turns any error surfaced by a
//     route into a JSON envelope ({"error": "..."}) with a matching status code,
//     defaulting to 500, plus a catch-all NotFound handler mounted after all routes.
package middleware
