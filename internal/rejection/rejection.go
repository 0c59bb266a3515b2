package rejection

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type Kind int

const (
	// RouteNotFound is the least specific rejection: no route's path matched.
	RouteNotFound Kind = iota
	// MethodNotAllowed means a path matched but no route with that path
	// accepts the request method.
	MethodNotAllowed
	MalformedQuery
	MalformedParameter
	OutOfRange
	MalformedBody
	PayloadTooLarge
	Unauthorized
	// Internal covers anything unclassified. It is always logged.
	Internal
)

// Rejection carries a failure kind plus an optional cause. The cause is for
// operator logs only and is never written to the client.
type Rejection struct {
	Kind  Kind
	cause error
}

func New(kind Kind) *Rejection {
	return &Rejection{Kind: kind}
}

func Wrap(kind Kind, cause error) *Rejection {
	return &Rejection{Kind: kind, cause: cause}
}

func (r *Rejection) Error() string {
	if r.cause != nil {
		return r.Kind.Message() + ": " + r.cause.Error()
	}
	return r.Kind.Message()
}

func (r *Rejection) Unwrap() error {
	return r.cause
}

// Status maps a failure kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case RouteNotFound:
		return http.StatusNotFound
	case MethodNotAllowed:
		return http.StatusMethodNotAllowed
	case MalformedQuery, MalformedParameter, OutOfRange, MalformedBody, PayloadTooLarge:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message is the short machine-readable string clients branch on.
func (k Kind) Message() string {
	switch k {
	case RouteNotFound:
		return "NOT_FOUND"
	case MethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case MalformedQuery:
		return "MALFORMED_QUERY"
	case MalformedParameter:
		return "MALFORMED_PARAMETER"
	case OutOfRange:
		return "OUT_OF_RANGE"
	case MalformedBody:
		return "MALFORMED_BODY"
	case PayloadTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case Unauthorized:
		return "UNAUTHORIZED"
	default:
		return "UNHANDLED_REJECTION"
	}
}

// specificity orders kinds for dispatch: when several candidate routes fail
// for different reasons, the rejection closest to a full match wins. A bare
// path mismatch ranks lowest, a failure inside an otherwise fully matched
// route ranks highest.
func (k Kind) specificity() int {
	switch k {
	case RouteNotFound:
		return 0
	case MethodNotAllowed:
		return 1
	case MalformedQuery, MalformedParameter, OutOfRange:
		return 2
	case MalformedBody, PayloadTooLarge:
		return 3
	case Unauthorized:
		return 4
	default:
		return 5
	}
}

// MoreSpecific returns whichever of a and b ranks higher; either may be nil.
// On equal rank the earlier one is kept, so the first route in declaration
// order decides ties.
func MoreSpecific(a, b *Rejection) *Rejection {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.Kind.specificity() > a.Kind.specificity() {
		return b
	}
	return a
}

// Body is the uniform error response structure.
type Body struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Render writes the terminal error response for rej. A nil rej renders as
// RouteNotFound. Internal rejections are logged with their cause; the client
// only ever sees the code and message pair.
func Render(w http.ResponseWriter, log *slog.Logger, rej *Rejection) {
	if rej == nil {
		rej = New(RouteNotFound)
	}

	if rej.Kind.Status() == http.StatusInternalServerError && log != nil {
		log.Error("unhandled rejection", slog.Any("err", rej))
	}

	status := rej.Kind.Status()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Body{
		Code:    status,
		Message: rej.Kind.Message(),
	})
}
