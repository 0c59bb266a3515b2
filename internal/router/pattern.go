package router

import (
	"strings"

	"github.com/angeloszaimis/todo-service/internal/extract"
	"github.com/angeloszaimis/todo-service/internal/rejection"
)

// Params holds the typed values captured from path segments, keyed by
// capture name.
type Params map[string]any

func (p Params) Uint(name string) uint64 {
	v, _ := p[name].(uint64)
	return v
}

func (p Params) String(name string) string {
	v, _ := p[name].(string)
	return v
}

// Segment matches one path segment. A nil rejection with ok=false is a
// structural mismatch (the pattern simply does not apply); a non-nil
// rejection means the shape matched but the value was unacceptable.
type Segment interface {
	match(raw string, p Params) (ok bool, rej *rejection.Rejection)
}

// Pattern is the ordered sequence of segments a path must satisfy. The
// zero-segment pattern matches only the root path.
type Pattern []Segment

// Lit matches a segment byte-for-byte.
func Lit(value string) Segment {
	return literal(value)
}

type literal string

func (l literal) match(raw string, _ Params) (bool, *rejection.Rejection) {
	return raw == string(l), nil
}

// UintParam captures a segment as an unsigned 64-bit integer. A segment
// that is not a valid unsigned integer is reported as a malformed
// parameter, not a path mismatch.
func UintParam(name string) Segment {
	return uintParam(name)
}

type uintParam string

func (c uintParam) match(raw string, p Params) (bool, *rejection.Rejection) {
	n, rej := extract.Uint(raw)
	if rej != nil {
		return false, rej
	}
	p[string(c)] = n
	return true, nil
}

// StringParam captures a segment verbatim.
func StringParam(name string) Segment {
	return stringParam(name)
}

type stringParam string

func (c stringParam) match(raw string, p Params) (bool, *rejection.Rejection) {
	if raw == "" {
		return false, nil
	}
	p[string(c)] = raw
	return true, nil
}

// SecondsParam captures a segment as an unsigned integer within [0, max].
// A non-numeric or out-of-range segment demotes to a plain path mismatch:
// the route behaves as if it had never matched, so the terminal failure is
// the generic not-found, and no delay ever runs for an invalid value.
func SecondsParam(name string, max uint64) Segment {
	return secondsParam{name: name, max: max}
}

type secondsParam struct {
	name string
	max  uint64
}

func (c secondsParam) match(raw string, p Params) (bool, *rejection.Rejection) {
	n, rej := extract.BoundedSeconds(raw, c.max)
	if rej != nil {
		return false, nil
	}
	p[c.name] = n
	return true, nil
}

// match checks path against the pattern, filling p with captured values.
func (pat Pattern) match(path []string, p Params) (bool, *rejection.Rejection) {
	if len(path) != len(pat) {
		return false, nil
	}
	for i, seg := range pat {
		ok, rej := seg.match(path[i], p)
		if !ok {
			return false, rej
		}
	}
	return true, nil
}

// splitPath breaks a URL path into its non-empty segments; "/" yields none.
func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
