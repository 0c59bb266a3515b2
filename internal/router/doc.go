// Package router dispatches requests over an ordered list of route
// descriptors. A route is a (method, path pattern, predicates) tuple bound
// to a handler.
//
// Dispatch evaluates the path shape first, independent of method, then the
// method, then any route-specific predicates such as an auth header. The
// first route to pass every stage wins and no later route is considered.
// When nothing fully matches, the most specific rejection recorded along the
// way is rendered, so a request whose path matched some route reports a
// method mismatch rather than a bare not-found, and an invalid path
// parameter is never masked as an auth failure.
package router
