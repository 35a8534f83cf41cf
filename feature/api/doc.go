// Package api holds the placeholder API feature.
//
// Every request under /api, whatever its method, path suffix or payload, is
// answered with status 200 and the body {"hola":false}. The feature must be
// registered before the pages feature so API paths never reach the renderer.
package api
