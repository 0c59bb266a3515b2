// Package store owns the in-memory todo collection. All reads and writes go
// through a single mutex, so concurrent requests observe some serialization
// of their operations and ids stay unique between mutations.
//
// The collection is volatile: it starts empty and is discarded on shutdown.
package store
