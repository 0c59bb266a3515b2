// Package handler implements the HTTP endpoints of the todo service.
// It coordinates parameter extraction, store operations, and success
// rendering; routing and validation failures are handed back to the
// dispatcher, while domain outcomes (conflict, unknown id) are rendered here.
package handler
