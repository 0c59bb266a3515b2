// Package rejection defines the typed failure signals produced while routing
// and validating a request, and the single terminal step that renders them.
// Handlers never format routing or validation failures themselves; they carry
// a *Rejection back to the dispatcher, which picks the most specific one seen
// along the dispatch path and writes the uniform error body.
package rejection
