package router

import (
	"crypto/subtle"
	"net/http"

	"github.com/angeloszaimis/todo-service/internal/rejection"
)

// Predicate is an extra route condition checked only after path and method
// have matched.
type Predicate func(r *http.Request) *rejection.Rejection

// HeaderExact requires a header to equal the expected literal byte-for-byte.
// Absence or mismatch rejects as unauthorized. The comparison is constant
// time since the expected value may be a credential.
func HeaderExact(name, want string) Predicate {
	return func(r *http.Request) *rejection.Rejection {
		got := r.Header.Get(name)
		if len(got) != len(want) || subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1 {
			return rejection.New(rejection.Unauthorized)
		}
		return nil
	}
}
