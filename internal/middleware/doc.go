// Package middleware wraps the router with cross-cutting request concerns:
// a per-request id, structured access logging, and metric events. None of it
// touches the dispatch or validation path.
package middleware
