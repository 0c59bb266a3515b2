// Package extract turns raw request data (path segments, query strings,
// request bodies) into typed, constraint-checked values. Each extractor
// yields either a value or a *rejection.Rejection naming why the input was
// unacceptable; it never writes a response itself.
package extract
