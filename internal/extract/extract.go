package extract

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/angeloszaimis/todo-service/internal/rejection"
)

// DefaultMaxBodyBytes caps accepted request bodies at 16 KiB.
const DefaultMaxBodyBytes = 16 << 10

// Uint parses a path segment as an unsigned 64-bit integer.
func Uint(raw string) (uint64, *rejection.Rejection) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, rejection.Wrap(rejection.MalformedParameter, err)
	}
	return n, nil
}

// BoundedSeconds parses a path segment as an unsigned integer no larger than
// max. Values past the bound are rejected, never clamped.
func BoundedSeconds(raw string, max uint64) (uint64, *rejection.Rejection) {
	n, rej := Uint(raw)
	if rej != nil {
		return 0, rejection.Wrap(rejection.MalformedParameter, rej)
	}
	if n > max {
		return 0, rejection.Wrap(rejection.OutOfRange,
			errors.New("seconds must be at most "+strconv.FormatUint(max, 10)))
	}
	return n, nil
}

// ListOptions are the decoded pagination parameters for listing todos.
// A Limit of UnlimitedLimit means no bound.
type ListOptions struct {
	Offset int
	Limit  int
}

// UnlimitedLimit is the Limit value meaning "take everything".
const UnlimitedLimit = -1

// ParseListOptions decodes offset and limit from the query string. Absent
// fields default to no effect; anything that is not a non-negative integer
// is a MalformedQuery rejection.
func ParseListOptions(q url.Values) (ListOptions, *rejection.Rejection) {
	opts := ListOptions{Offset: 0, Limit: UnlimitedLimit}

	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 31)
		if err != nil {
			return ListOptions{}, rejection.Wrap(rejection.MalformedQuery, err)
		}
		opts.Offset = int(n)
	}

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 31)
		if err != nil {
			return ListOptions{}, rejection.Wrap(rejection.MalformedQuery, err)
		}
		opts.Limit = int(n)
	}

	return opts, nil
}

// JSONBody decodes the request body into dst. The body must be declared as
// JSON, fit within maxBytes, decode into dst's shape, and pass dst's own
// validation when it implements validation.Validatable. Failures map to
// PayloadTooLarge for oversized bodies and MalformedBody for everything else.
func JSONBody(r *http.Request, maxBytes int64, dst any) *rejection.Rejection {
	if rej := requireJSONContentType(r); rej != nil {
		return rej
	}

	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes+1))
	if err != nil {
		return rejection.Wrap(rejection.MalformedBody, err)
	}
	if int64(len(body)) > maxBytes {
		return rejection.New(rejection.PayloadTooLarge)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return rejection.Wrap(rejection.MalformedBody, err)
	}

	if v, ok := dst.(validation.Validatable); ok {
		if err := v.Validate(); err != nil {
			return rejection.Wrap(rejection.MalformedBody, err)
		}
	}

	return nil
}

func requireJSONContentType(r *http.Request) *rejection.Rejection {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return rejection.Wrap(rejection.MalformedBody, errors.New("missing content-type"))
	}

	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return rejection.Wrap(rejection.MalformedBody, err)
	}
	if mediaType != "application/json" {
		return rejection.Wrap(rejection.MalformedBody, errors.New("content-type must be application/json"))
	}

	return nil
}
