// Package server holds the HTTP dispatcher and its configuration.
//
// The Dispatcher binds the single HTTP port of the process and runs every
// request through a fixed pipeline:
//
//  1. recover: panics become errors
//  2. rayid: a request id for log correlation
//  3. request log (debug level)
//  4. features, in the order they were registered with the loader
//     (the api feature, then the catch-all pages feature)
//  5. error handler: logs the error message at error level and answers
//     "error handled" without changing the status code
//
// # Lifecycle
//
//	d := server.New(cfg.Server, log, mgr)
//	if err := d.Prepare(ctx); err != nil { ... } // prepares features, then registers routes
//	if err := d.Serve(ctx); err != nil { ... }   // bind failure is returned at once
//
// Serve logs "> Ready on http://localhost:<port>" once the port is bound and
// shuts the server down when ctx is done.
package server
