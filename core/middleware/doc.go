// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - RayID: Assigns a unique Request ID (RayID) to every incoming request and
//     stores it in the context so log lines of one request can be correlated.
//     It never writes response headers, leaving the delegated page responses
//     exactly as the renderer produced them.
//
// These middleware components are registered globally by the dispatcher in
// core/server.
package middleware
