// Package pages holds the catch-all feature that hands requests to the page
// renderer.
//
// The feature depends only on the Delegate interface. Requests reach the
// delegate with the same Fiber context, and the delegate alone decides the
// status, headers and body. Errors it returns flow to the dispatcher's error
// handler.
//
// Register this feature last: its route matches every path.
package pages
